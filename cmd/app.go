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

package main

import (
	"context"
	"io"
	"os"

	"github.com/Adembc/netuse/internal/adapters/config"
	"github.com/Adembc/netuse/internal/adapters/data/file"
	"github.com/Adembc/netuse/internal/adapters/flags"
	"github.com/Adembc/netuse/internal/adapters/keyring"
	"github.com/Adembc/netuse/internal/adapters/logger"
	"github.com/Adembc/netuse/internal/adapters/runner"
	"github.com/Adembc/netuse/internal/adapters/smb"
	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/Adembc/netuse/internal/core/ports"
	"github.com/Adembc/netuse/internal/core/services"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	configFileName = "netuse.yaml"
	logFileName    = "netuse.log"
)

// app holds the wiring shared by every subcommand. Fields left nil are
// built from the configuration in setup.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	root  *cobra.Command
	flags ports.FlagsProvider

	log        *zap.SugaredLogger
	config     domain.Config
	configRepo ports.ConfigRepository
	runner     ports.CommandRunner
	store      ports.CredentialStore
	prober     ports.ShareProber
	service    ports.ConnectionService

	// readSecret reads a password from an interactive terminal, or returns
	// ok=false when in is not one.
	readSecret func() (secret string, ok bool, err error)
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	a := &app{in: in, out: out, errOut: errOut}
	a.readSecret = a.readTerminalSecret
	a.root = a.newRootCommand()
	a.flags = flags.NewCobraFlags(a.root)
	return a
}

func (a *app) execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	a.root.SetIn(a.in)
	a.root.SetOut(a.out)
	a.root.SetErr(a.errOut)
	return a.root.ExecuteContext(ctx)
}

func (a *app) setup(*cobra.Command, []string) error {
	provider, err := config.NewOSConfig(a.flags.GetFlag(flags.FlagConfigDir))
	if err != nil {
		return errors.Wrap(err, "resolve config directory")
	}

	if a.log == nil {
		log, err := logger.New(provider.LogPath(logFileName), a.flags.IsDebug())
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		a.log = log
	}

	if a.configRepo == nil {
		a.configRepo = file.NewConfigRepo(a.log, provider.ConfigPath(configFileName))
	}
	cfg, err := a.configRepo.Load()
	if err != nil {
		return err
	}
	a.config = cfg

	if a.runner == nil {
		if a.flags.IsDryRun() {
			a.runner = runner.NewDryRunner(a.log, a.out)
		} else {
			a.runner = runner.NewExecRunner(a.log, cfg.Timeout)
		}
	}
	if a.store == nil {
		a.store = keyring.NewSystemStore()
	}
	if a.prober == nil {
		a.prober = smb.NewProber(a.log, smb.DefaultTimeout)
	}

	a.service = services.NewConnectionService(a.log, a.runner, cfg,
		services.WithCredentialStore(a.store),
		services.WithShareProber(a.prober),
	)
	a.log.Debugw("netuse started", "version", version, "commit", gitCommit, "dry_run", a.flags.IsDryRun())
	return nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func (a *app) readTerminalSecret() (string, bool, error) {
	f, ok := a.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", false, nil
	}
	_, _ = io.WriteString(a.errOut, "Password: ")
	b, err := term.ReadPassword(int(f.Fd()))
	_, _ = io.WriteString(a.errOut, "\n")
	if err != nil {
		return "", true, errors.Wrap(err, "read password")
	}
	return string(b), true, nil
}
