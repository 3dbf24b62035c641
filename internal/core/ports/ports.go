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

package ports

import (
	"context"

	"github.com/Adembc/netuse/internal/core/domain"
)

// ConnectionService manages the machine's mapped network drives.
type ConnectionService interface {
	List(ctx context.Context) ([]domain.Connection, error)
	Find(ctx context.Context, driveLetter string) (domain.Connection, error)
	Connect(ctx context.Context, driveLetter, path string, cred *domain.Credential, opts domain.ConnectOptions) (domain.Connection, error)
	Delete(ctx context.Context, conn domain.Connection, force bool) (domain.Connection, error)
	Apply(ctx context.Context, mappings []domain.Mapping) ([]domain.Connection, error)
	Resolve(ctx context.Context, driveLetter, path string, cred *domain.Credential) ([]domain.Connection, *domain.Connection, error)
}

// CommandRunner executes an external command and captures its output.
// A non-zero exit status is reported in the result, not as an error.
type CommandRunner interface {
	Run(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error)
}

// CredentialStore keeps passwords for domain accounts.
// Password returns "" and no error when nothing is stored.
type CredentialStore interface {
	Password(domain, username string) (string, error)
	SetPassword(domain, username, password string) error
	DeletePassword(domain, username string) error
}

// ShareProber checks that a UNC share accepts the credential.
type ShareProber interface {
	Probe(ctx context.Context, path string, cred *domain.Credential) error
}

// ConfigRepository loads and stores the application configuration.
type ConfigRepository interface {
	Load() (domain.Config, error)
	Save(config domain.Config) error
	Mappings(names ...string) ([]domain.Mapping, error)
	SaveMapping(mapping domain.Mapping) error
}
