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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
)

const (
	exitFailure = 1
	// EX_USAGE from sysexits.h, outside the range net use exits with.
	exitInvalidArgument = 64
)

func printConnections(w io.Writer, conns []domain.Connection) {
	if len(conns) == 0 {
		_, _ = fmt.Fprintln(w, "There are no entries in the list.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Status", "Local", "Remote", "Network"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	for _, c := range conns {
		table.Append([]string{c.Status, c.DriveLetter, c.Path, c.Network})
	}
	table.Render()
}

func printConnection(w io.Writer, c domain.Connection) {
	_, _ = fmt.Fprintf(w, "Local name   %s\nRemote name  %s\n", c.DriveLetter, c.Path)
	if c.Status != "" {
		_, _ = fmt.Fprintf(w, "Status       %s\n", c.Status)
	}
	if c.Network != "" {
		_, _ = fmt.Fprintf(w, "Network      %s\n", c.Network)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError writes err and any hints attached to it.
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// exitCode maps err to the process exit status: 64 for invalid input, the
// status of a failed net use run, 1 for anything else.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, domain.ErrInvalidArgument) {
		return exitInvalidArgument
	}
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitStatus > 0 {
		return cmdErr.ExitStatus
	}
	return exitFailure
}
