// Copyright 2025.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package services

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/Adembc/netuse/internal/core/domain"
)

// connectionLinePattern finds "<drive>: <UNC path>" anywhere in a line of
// net use output. The path shape matches what NetworkPath accepts, so every
// parsed record could be fed back into the builder.
var connectionLinePattern = regexp.MustCompile(`\b([A-Z]:)\s+(\\\\[^\s\\]+(?:\\[^\s\\]+)*)`)

// ParseConnections reads net use output and returns one connection per
// matching line, in output order. Headers, separators, status messages and
// blank lines are skipped.
//
// Text before the drive letter is kept as Status when it is a single word
// (OK, Disconnected, Unavailable); text after the path is kept as Network.
func ParseConnections(r io.Reader) ([]domain.Connection, error) {
	connections := make([]domain.Connection, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		m := connectionLinePattern.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}

		conn := domain.NewConnection(line[m[2]:m[3]], line[m[4]:m[5]])
		if prefix := strings.TrimSpace(line[:m[0]]); prefix != "" && !strings.ContainsAny(prefix, " \t") {
			conn.Status = prefix
		}
		conn.Network = strings.TrimSpace(line[m[1]:])
		connections = append(connections, conn)
	}

	return connections, scanner.Err()
}
