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

package domain

import (
	"time"

	"al.essio.dev/pkg/shellescape"
)

const redactedToken = "[REDACTED]"

// Command is an argument list for the external tool. Tokens listed in
// sensitive are hidden from String and Redacted.
type Command struct {
	Args      []string
	sensitive []int
}

// NewCommand copies args and records which positions hold secrets.
func NewCommand(args []string, sensitive ...int) Command {
	cp := make([]string, len(args))
	copy(cp, args)
	return Command{Args: cp, sensitive: append([]int(nil), sensitive...)}
}

// Program returns the executable name, or "" for an empty command.
func (c Command) Program() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Redacted returns the arguments with secret tokens replaced.
func (c Command) Redacted() []string {
	out := make([]string, len(c.Args))
	copy(out, c.Args)
	for _, i := range c.sensitive {
		if i >= 0 && i < len(out) {
			out[i] = redactedToken
		}
	}
	return out
}

// String renders the redacted command as a shell-quoted line.
func (c Command) String() string {
	return shellescape.QuoteCommand(c.Redacted())
}

// CommandResult is what the runner captured from one invocation.
// A non-zero ExitStatus is a result, not an error.
type CommandResult struct {
	Stdout     string
	Stderr     string
	ExitStatus int
	Duration   time.Duration
}

// Success reports whether the process exited with status zero.
func (r *CommandResult) Success() bool {
	return r.ExitStatus == 0
}
