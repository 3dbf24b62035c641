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

package keyring

import (
	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/cockroachdb/errors"
	"github.com/zalando/go-keyring"
)

// Service is the keyring service name passwords are stored under.
const Service = "netuse"

// SystemStore keeps share passwords in the OS keyring (Windows Credential
// Manager, macOS Keychain, Secret Service).
type SystemStore struct {
	service string
}

func NewSystemStore() *SystemStore {
	return &SystemStore{service: Service}
}

// Password returns the stored password for the account, or "" if none is stored.
func (s *SystemStore) Password(domainName, username string) (string, error) {
	password, err := keyring.Get(s.service, account(domainName, username))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", errors.Mark(errors.Wrap(err, "read password from keyring"), domain.ErrKeyring)
	}
	return password, nil
}

func (s *SystemStore) SetPassword(domainName, username, password string) error {
	if password == "" {
		return domain.NewInvalidArgument("refusing to store an empty password", "")
	}
	if err := keyring.Set(s.service, account(domainName, username), password); err != nil {
		return errors.Mark(errors.Wrap(err, "store password in keyring"), domain.ErrKeyring)
	}
	return nil
}

// DeletePassword removes the stored password. A missing entry is not an error.
func (s *SystemStore) DeletePassword(domainName, username string) error {
	if err := keyring.Delete(s.service, account(domainName, username)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return errors.Mark(errors.Wrap(err, "delete password from keyring"), domain.ErrKeyring)
	}
	return nil
}

func account(domainName, username string) string {
	if domainName == "" {
		return username
	}
	return domainName + `\` + username
}
