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

import "fmt"

// Connection is one drive letter bound to a UNC path.
type Connection struct {
	DriveLetter string `json:"drive_letter"`
	Path        string `json:"path"`

	// Status and Network are filled only when parsed from the listing and
	// take no part in equality.
	Status  string `json:"status,omitempty"`
	Network string `json:"network,omitempty"`
}

// NewConnection returns a connection for an already validated drive letter and path.
func NewConnection(driveLetter, path string) Connection {
	return Connection{DriveLetter: driveLetter, Path: path}
}

// Equal reports whether both connections name the same drive and path.
func (c Connection) Equal(other Connection) bool {
	return c.DriveLetter == other.DriveLetter && c.Path == other.Path
}

func (c Connection) String() string {
	return fmt.Sprintf("%s %s", c.DriveLetter, c.Path)
}
