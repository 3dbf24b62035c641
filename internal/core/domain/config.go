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

import "time"

const (
	DefaultProgram = "net"
	DefaultTimeout = 30 * time.Second
)

// Config represents the application configuration
type Config struct {
	// Command is the executable invoked with the "use" subcommand.
	Command string `yaml:"command"`

	// Timeout bounds every invocation. Zero disables the limit.
	Timeout time.Duration `yaml:"timeout"`

	// StrictExitStatus makes connect and delete fail when net use exits
	// non-zero. When false they return the requested record regardless.
	StrictExitStatus bool `yaml:"strict_exit_status"`

	// ProbeBeforeConnect tree-connects to the share over SMB before mapping it.
	ProbeBeforeConnect bool `yaml:"probe_before_connect"`

	// UseKeyring fills missing passwords from the OS credential store.
	UseKeyring bool `yaml:"use_keyring"`

	// Mappings are named drive mappings applied by "netuse apply".
	Mappings []Mapping `yaml:"mappings,omitempty"`
}

// Mapping is a drive mapping kept in the configuration file.
type Mapping struct {
	Name       string `yaml:"name"`
	Drive      string `yaml:"drive"`
	Path       string `yaml:"path"`
	User       string `yaml:"user,omitempty"`
	Domain     string `yaml:"domain,omitempty"`
	Persistent *bool  `yaml:"persistent,omitempty"`
	SaveCred   bool   `yaml:"savecred,omitempty"`
	Smartcard  bool   `yaml:"smartcard,omitempty"`
}

// Credential builds the mapping's credential, or nil when no user is set.
func (m Mapping) Credential() (*Credential, error) {
	if m.User == "" {
		return nil, nil
	}
	return NewCredential(m.User, m.Domain, "", m.SaveCred, m.Smartcard)
}

// Options returns the per-call switches the mapping asks for.
func (m Mapping) Options() ConnectOptions {
	return ConnectOptions{Persistent: m.Persistent, SaveCred: m.SaveCred, Smartcard: m.Smartcard}
}

// ConnectOptions are per-call switches for a new mapping.
type ConnectOptions struct {
	// Persistent adds /persistent:yes or /persistent:no when set.
	Persistent *bool
	// Probe checks the share before mapping even if the config does not ask for it.
	Probe bool
	// SaveCred and Smartcard apply when no credential carries them.
	SaveCred  bool
	Smartcard bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Command:          DefaultProgram,
		Timeout:          DefaultTimeout,
		StrictExitStatus: true,
		UseKeyring:       true,
	}
}
