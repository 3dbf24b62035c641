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
	"context"
	"strings"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/Adembc/netuse/internal/core/ports"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type connectionService struct {
	logger      *zap.SugaredLogger
	runner      ports.CommandRunner
	credentials ports.CredentialStore
	prober      ports.ShareProber
	config      domain.Config
}

// Option configures optional collaborators of the connection service.
type Option func(*connectionService)

// WithCredentialStore enables password lookup for credentials without one.
func WithCredentialStore(store ports.CredentialStore) Option {
	return func(s *connectionService) { s.credentials = store }
}

// WithShareProber enables SMB checks before a share is mapped.
func WithShareProber(prober ports.ShareProber) Option {
	return func(s *connectionService) { s.prober = prober }
}

// NewConnectionService creates a new instance of connectionService.
func NewConnectionService(logger *zap.SugaredLogger, runner ports.CommandRunner, config domain.Config, opts ...Option) *connectionService {
	s := &connectionService{
		logger: logger,
		runner: runner,
		config: config,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *connectionService) newCommand() NetUseCommand {
	return NewNetUseCommand().WithProgram(s.config.Command)
}

// List returns the current mappings in the order net use prints them.
func (s *connectionService) List(ctx context.Context) ([]domain.Connection, error) {
	cmd := s.newCommand()
	res, err := s.run(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		err := s.commandFailed(cmd, res)
		s.logger.Errorw("failed to list connections", "error", err)
		return nil, err
	}

	connections, err := ParseConnections(strings.NewReader(res.Stdout))
	if err != nil {
		return nil, errors.Wrap(err, "parse net use output")
	}
	s.logger.Debugw("listed connections", "count", len(connections))
	return connections, nil
}

// Find returns the mapping bound to driveLetter.
func (s *connectionService) Find(ctx context.Context, driveLetter string) (domain.Connection, error) {
	if err := NewNetUseCommand().DriveLetter(driveLetter).Err(); err != nil {
		return domain.Connection{}, err
	}
	connections, err := s.List(ctx)
	if err != nil {
		return domain.Connection{}, err
	}
	for _, conn := range connections {
		if conn.DriveLetter == driveLetter {
			return conn, nil
		}
	}
	return domain.Connection{}, errors.Wrapf(domain.ErrNotFound, "drive %s", driveLetter)
}

// Connect maps path to driveLetter and returns the new record.
func (s *connectionService) Connect(ctx context.Context, driveLetter, path string, cred *domain.Credential, opts domain.ConnectOptions) (domain.Connection, error) {
	cmd := s.newCommand().DriveLetter(driveLetter).NetworkPath(path)
	if err := cmd.Err(); err != nil {
		s.logger.Warnw("validation failed on connect", "error", err, "drive", driveLetter, "path", path)
		return domain.Connection{}, err
	}

	cred, err := s.fillPassword(cred)
	if err != nil {
		return domain.Connection{}, err
	}

	if s.prober != nil && (opts.Probe || s.config.ProbeBeforeConnect) {
		if err := s.prober.Probe(ctx, path, cred); err != nil {
			s.logger.Errorw("share probe failed", "path", path, "error", err)
			return domain.Connection{}, err
		}
	}

	cmd = cmd.User(cred)
	if opts.SaveCred && (cred == nil || !cred.SaveCredentials) {
		cmd = cmd.SaveCred()
	}
	if opts.Smartcard && (cred == nil || !cred.UseSmartcard) {
		cmd = cmd.Smartcard()
	}
	if opts.Persistent != nil {
		cmd = cmd.Persistent(*opts.Persistent)
	}

	res, err := s.run(ctx, cmd)
	if err != nil {
		return domain.Connection{}, err
	}
	if !res.Success() {
		if err := s.exitStatusError(cmd, res); err != nil {
			s.logger.Errorw("failed to connect", "drive", driveLetter, "path", path, "error", err)
			return domain.Connection{}, err
		}
	}

	s.logger.Infow("connected", "drive", driveLetter, "path", path)
	return domain.NewConnection(driveLetter, path), nil
}

// Delete removes the mapping and returns conn as a receipt.
func (s *connectionService) Delete(ctx context.Context, conn domain.Connection, force bool) (domain.Connection, error) {
	cmd := s.newCommand().DriveLetter(conn.DriveLetter).Delete()
	if force {
		cmd = cmd.Force()
	}
	if err := cmd.Err(); err != nil {
		s.logger.Warnw("validation failed on delete", "error", err, "drive", conn.DriveLetter)
		return conn, err
	}

	res, err := s.run(ctx, cmd)
	if err != nil {
		return conn, err
	}
	if !res.Success() {
		if err := s.exitStatusError(cmd, res); err != nil {
			s.logger.Errorw("failed to delete connection", "connection", conn.String(), "error", err)
			return conn, err
		}
	}

	s.logger.Infow("deleted", "connection", conn.String(), "force", force)
	return conn, nil
}

// Apply connects every mapping in order. A mapping whose drive is already
// bound to the same path is left alone; one bound elsewhere is an error.
// Failures do not stop later mappings and are returned joined.
func (s *connectionService) Apply(ctx context.Context, mappings []domain.Mapping) ([]domain.Connection, error) {
	existing, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	bound := make(map[string]domain.Connection, len(existing))
	for _, conn := range existing {
		bound[conn.DriveLetter] = conn
	}

	var (
		applied []domain.Connection
		errs    []error
	)
	for _, m := range mappings {
		if conn, ok := bound[m.Drive]; ok {
			if strings.EqualFold(conn.Path, m.Path) {
				s.logger.Infow("mapping already present", "name", m.Name, "connection", conn.String())
				applied = append(applied, conn)
				continue
			}
			errs = append(errs, errors.Newf("mapping %s: drive %s is already mapped to %s", m.Name, m.Drive, conn.Path))
			continue
		}

		cred, err := m.Credential()
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "mapping %s", m.Name))
			continue
		}
		conn, err := s.Connect(ctx, m.Drive, m.Path, cred, m.Options())
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "mapping %s", m.Name))
			continue
		}
		bound[conn.DriveLetter] = conn
		applied = append(applied, conn)
	}

	return applied, errors.Join(errs...)
}

// Resolve lists the mappings when neither drive nor path is given and
// connects otherwise.
func (s *connectionService) Resolve(ctx context.Context, driveLetter, path string, cred *domain.Credential) ([]domain.Connection, *domain.Connection, error) {
	if driveLetter == "" && path == "" {
		connections, err := s.List(ctx)
		return connections, nil, err
	}
	conn, err := s.Connect(ctx, driveLetter, path, cred, domain.ConnectOptions{})
	if err != nil {
		return nil, nil, err
	}
	return nil, &conn, nil
}

func (s *connectionService) run(ctx context.Context, cmd NetUseCommand) (*domain.CommandResult, error) {
	if err := cmd.Err(); err != nil {
		s.logger.Warnw("validation failed", "error", err)
		return nil, err
	}
	command := cmd.Command()
	s.logger.Debugw("running command", "command", command.String())

	res, err := s.runner.Run(ctx, command)
	if err != nil {
		s.logger.Errorw("command could not be run", "command", command.String(), "error", err)
		return nil, errors.Wrapf(err, "run %s", command.Program())
	}
	s.logger.Debugw("command finished", "command", command.String(), "exit_status", res.ExitStatus, "duration", res.Duration)
	return res, nil
}

func (s *connectionService) commandFailed(cmd NetUseCommand, res *domain.CommandResult) error {
	return &domain.CommandError{
		Args:       cmd.Command().Redacted(),
		ExitStatus: res.ExitStatus,
		Stderr:     res.Stderr,
	}
}

// exitStatusError returns the failure for a non-zero exit, or nil when the
// configuration keeps the optimistic behaviour.
func (s *connectionService) exitStatusError(cmd NetUseCommand, res *domain.CommandResult) error {
	err := s.commandFailed(cmd, res)
	if s.config.StrictExitStatus {
		return err
	}
	s.logger.Warnw("ignoring non-zero exit status", "error", err)
	return nil
}

// fillPassword looks up a stored password when the credential names a user
// but carries none.
func (s *connectionService) fillPassword(cred *domain.Credential) (*domain.Credential, error) {
	if cred == nil || cred.Password != "" || s.credentials == nil || !s.config.UseKeyring {
		return cred, nil
	}
	password, err := s.credentials.Password(cred.Domain, cred.Username)
	if err != nil {
		s.logger.Warnw("credential store lookup failed", "account", cred.Account(), "error", err)
		return nil, err
	}
	if password == "" {
		return cred, nil
	}
	s.logger.Debugw("using stored password", "account", cred.Account())
	return cred.WithPassword(password), nil
}
