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
	"fmt"
	"regexp"
	"strings"

	"github.com/Adembc/netuse/internal/core/domain"
)

const subcommand = "use"

var (
	driveLetterPattern = regexp.MustCompile(`^[A-Z]:$`)
	networkPathPattern = regexp.MustCompile(`^\\\\[^\s\\]+(\\[^\s\\]+)*$`)
)

// NetUseCommand builds the argument list for one net use invocation.
// It is a value: every step returns a new command and leaves the receiver
// untouched. The first validation failure is kept and turns the remaining
// steps into no-ops, so a chain can be checked once with Build or Err.
type NetUseCommand struct {
	args   []string
	secret int
	err    error
}

// NewNetUseCommand returns the bare "net use" command.
func NewNetUseCommand() NetUseCommand {
	return NetUseCommand{args: []string{domain.DefaultProgram, subcommand}, secret: -1}
}

// WithProgram replaces the executable name.
func (c NetUseCommand) WithProgram(program string) NetUseCommand {
	if program == "" || c.err != nil {
		return c
	}
	args := c.clone(0)
	args[0] = program
	c.args = args
	return c
}

// DriveLetter appends a drive such as "C:".
func (c NetUseCommand) DriveLetter(value string) NetUseCommand {
	if !driveLetterPattern.MatchString(value) {
		return c.fail(domain.NewInvalidArgument(fmt.Sprintf("invalid drive letter %q", value),
			"drive letters are one upper-case letter followed by a colon, e.g. Z:"))
	}
	return c.with(value)
}

// NetworkPath appends a UNC path such as \\server\share.
func (c NetUseCommand) NetworkPath(value string) NetUseCommand {
	if !networkPathPattern.MatchString(value) {
		return c.fail(domain.NewInvalidArgument(fmt.Sprintf("invalid network path %q", value),
			`network paths look like \\server\share with no spaces`))
	}
	return c.with(value)
}

func (c NetUseCommand) Persistent(persistent bool) NetUseCommand {
	if persistent {
		return c.with("/persistent:yes")
	}
	return c.with("/persistent:no")
}

func (c NetUseCommand) SaveCred() NetUseCommand {
	return c.with("/savecred")
}

func (c NetUseCommand) Smartcard() NetUseCommand {
	return c.with("/smartcard")
}

// Force appends /yes, which answers the confirmation prompt of /delete.
func (c NetUseCommand) Force() NetUseCommand {
	return c.with("/yes")
}

func (c NetUseCommand) Delete() NetUseCommand {
	return c.with("/delete")
}

// User appends the credential: the password as a positional token, then
// /user:[DOMAIN\]name, /savecred and /smartcard as the credential asks.
// It must follow NetworkPath because net use reads the password positionally.
func (c NetUseCommand) User(cred *domain.Credential) NetUseCommand {
	if cred == nil || c.err != nil {
		return c
	}
	if strings.HasPrefix(cred.Password, "/") || cred.Password == "*" {
		// net use reads these as a switch or as a request to prompt
		return c.fail(domain.NewInvalidArgument("password cannot start with \"/\" or be \"*\"",
			"use --password-stdin with a keyring entry, or change the password"))
	}
	if cred.Password != "" {
		c = c.with(cred.Password)
		c.secret = len(c.args) - 1
	}
	c = c.with("/user:" + cred.Account())
	if cred.SaveCredentials {
		c = c.SaveCred()
	}
	if cred.UseSmartcard {
		c = c.Smartcard()
	}
	return c
}

// Err returns the first validation error, if any.
func (c NetUseCommand) Err() error {
	return c.err
}

// Args returns a copy of the tokens appended so far.
func (c NetUseCommand) Args() []string {
	return c.clone(0)
}

// Build returns the tokens in insertion order, or the first validation error.
func (c NetUseCommand) Build() ([]string, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.Args(), nil
}

// Command returns the tokens with the password position marked secret.
func (c NetUseCommand) Command() domain.Command {
	if c.secret < 0 {
		return domain.NewCommand(c.args)
	}
	return domain.NewCommand(c.args, c.secret)
}

func (c NetUseCommand) with(tokens ...string) NetUseCommand {
	if c.err != nil {
		return c
	}
	c.args = append(c.clone(len(tokens)), tokens...)
	return c
}

func (c NetUseCommand) fail(err error) NetUseCommand {
	if c.err == nil {
		c.err = err
	}
	return c
}

func (c NetUseCommand) clone(extra int) []string {
	args := make([]string, len(c.args), len(c.args)+extra)
	copy(args, c.args)
	return args
}
