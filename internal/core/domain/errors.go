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
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument marks values rejected before any process is started.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCommandFailed marks a net use invocation that exited non-zero.
	ErrCommandFailed = errors.New("command failed")

	// ErrNotFound indicates no mapping exists for a drive letter.
	ErrNotFound = errors.New("connection not found")

	// ErrProbeFailed indicates the share could not be reached over SMB.
	ErrProbeFailed = errors.New("share probe failed")

	// ErrKeyring indicates the OS credential store could not be used.
	ErrKeyring = errors.New("keyring unavailable")
)

// NewInvalidArgument returns an error marked as ErrInvalidArgument with an
// optional user-facing hint.
func NewInvalidArgument(msg, hint string) error {
	err := errors.Mark(errors.New(msg), ErrInvalidArgument)
	if hint != "" {
		err = errors.WithHint(err, hint)
	}
	return err
}

// CommandError records a net use run that exited with a non-zero status.
// Args is the redacted argument list.
type CommandError struct {
	Args       []string
	ExitStatus int
	Stderr     string
}

func (e *CommandError) Error() string {
	name := "command"
	if len(e.Args) > 0 {
		name = strings.Join(e.Args[:min(2, len(e.Args))], " ")
	}
	msg := fmt.Sprintf("%s exited with status %d", name, e.ExitStatus)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}
