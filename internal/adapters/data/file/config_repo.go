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

package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ConfigRepo keeps the configuration in a YAML file.
type ConfigRepo struct {
	logger   *zap.SugaredLogger
	filePath string
	mu       sync.Mutex
}

func NewConfigRepo(logger *zap.SugaredLogger, filePath string) *ConfigRepo {
	return &ConfigRepo{logger: logger, filePath: filePath}
}

// Load reads the configuration. A missing file is created with defaults.
func (r *ConfigRepo) Load() (domain.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *ConfigRepo) load() (domain.Config, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		config := domain.DefaultConfig()
		if saveErr := r.save(config); saveErr != nil {
			// An unwritable directory should not stop the tool from running.
			r.logger.Warnw("could not write default config", "path", r.filePath, "error", saveErr)
		}
		return config, nil
	}

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return domain.DefaultConfig(), errors.Wrapf(err, "read config %s", r.filePath)
	}

	// Keys missing from the file keep their default values.
	config := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return domain.DefaultConfig(), errors.WithHint(
			errors.Wrapf(err, "parse config %s", r.filePath),
			"fix the YAML syntax or delete the file to regenerate defaults",
		)
	}
	if config.Command == "" {
		config.Command = domain.DefaultProgram
	}
	if err := validateMappings(config.Mappings); err != nil {
		return config, errors.Wrapf(err, "config %s", r.filePath)
	}

	r.logger.Debugw("config loaded", "path", r.filePath, "mappings", len(config.Mappings))
	return config, nil
}

func (r *ConfigRepo) Save(config domain.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(config)
}

func (r *ConfigRepo) save(config domain.Config) error {
	if err := os.MkdirAll(filepath.Dir(r.filePath), 0o700); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}

	// Write to a sibling file first so a crash never leaves a truncated config.
	tmp := r.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrapf(err, "write config %s", tmp)
	}
	if err := os.Rename(tmp, r.filePath); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "replace config %s", r.filePath)
	}
	return nil
}

// Mappings returns the named mappings in the order asked for, or all of
// them when no name is given.
func (r *ConfigRepo) Mappings(names ...string) ([]domain.Mapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	config, err := r.load()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return config.Mappings, nil
	}

	byName := make(map[string]domain.Mapping, len(config.Mappings))
	for _, m := range config.Mappings {
		byName[m.Name] = m
	}

	out := make([]domain.Mapping, 0, len(names))
	for _, name := range names {
		m, ok := byName[name]
		if !ok {
			return nil, errors.Mark(
				errors.WithHint(errors.Newf("no mapping named %q", name), "run 'netuse apply' without arguments to apply every saved mapping"),
				domain.ErrNotFound,
			)
		}
		out = append(out, m)
	}
	return out, nil
}

// SaveMapping adds the mapping, replacing one with the same name.
func (r *ConfigRepo) SaveMapping(mapping domain.Mapping) error {
	if err := validateMappings([]domain.Mapping{mapping}); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	config, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range config.Mappings {
		if config.Mappings[i].Name == mapping.Name {
			config.Mappings[i] = mapping
			replaced = true
			break
		}
	}
	if !replaced {
		config.Mappings = append(config.Mappings, mapping)
	}

	if err := r.save(config); err != nil {
		return err
	}
	r.logger.Infow("mapping saved", "name", mapping.Name, "drive", mapping.Drive, "path", mapping.Path, "replaced", replaced)
	return nil
}

func validateMappings(mappings []domain.Mapping) error {
	seen := make(map[string]bool, len(mappings))
	for i, m := range mappings {
		if m.Name == "" {
			return domain.NewInvalidArgument(fmt.Sprintf("mapping #%d has no name", i+1), "")
		}
		if seen[m.Name] {
			return domain.NewInvalidArgument(fmt.Sprintf("mapping %q is defined twice", m.Name), "")
		}
		seen[m.Name] = true
		if m.Drive == "" || m.Path == "" {
			return domain.NewInvalidArgument(fmt.Sprintf("mapping %q needs both drive and path", m.Name), "")
		}
	}
	return nil
}
