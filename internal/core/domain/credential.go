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
	"regexp"
	"strings"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z1-9]+$`)
	domainPattern   = regexp.MustCompile(`^[A-Za-z]+(\.[A-Za-z]+)?$`)
)

// Credential is the account a mapping is made with.
type Credential struct {
	Username        string
	Domain          string
	Password        string
	SaveCredentials bool
	UseSmartcard    bool
}

// NewCredential validates and normalizes a username, domain and password.
// A username in "user@domain" form overrides the domain argument.
func NewCredential(username, domain, password string, saveCredentials, useSmartcard bool) (*Credential, error) {
	if username == "" {
		return nil, NewInvalidArgument("missing required parameter username",
			"pass a user name such as alice or alice@corp")
	}

	if user, dom, ok := strings.Cut(username, "@"); ok {
		username, domain = user, dom
	}

	if !usernamePattern.MatchString(username) {
		return nil, NewInvalidArgument(fmt.Sprintf("invalid username %q", username),
			"user names may contain letters and the digits 1-9")
	}
	if domain != "" && !domainPattern.MatchString(domain) {
		return nil, NewInvalidArgument(fmt.Sprintf("invalid domain %q", domain),
			"domains are letters with at most one dotted suffix, e.g. corp.local")
	}

	return &Credential{
		Username:        username,
		Domain:          domain,
		Password:        password,
		SaveCredentials: saveCredentials,
		UseSmartcard:    useSmartcard,
	}, nil
}

// Account returns the name net use expects after /user:.
func (c *Credential) Account() string {
	if c.Domain == "" {
		return c.Username
	}
	return c.Domain + `\` + c.Username
}

// WithPassword returns a copy of the credential carrying password.
func (c *Credential) WithPassword(password string) *Credential {
	cp := *c
	cp.Password = password
	return &cp
}
