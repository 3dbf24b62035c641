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

// Package netuse maps, lists and removes Windows network drives by driving
// the "net use" command.
//
// A zero-configuration call lists the current mappings:
//
//	res, err := netuse.NetUse(ctx, "", "", nil)
//
// and a drive letter with a UNC path creates one:
//
//	cred, _ := netuse.NewCredential("alice@corp", "", password, false, false)
//	res, err := netuse.NetUse(ctx, "P:", `\\fs01\projects`, cred)
package netuse

import (
	"context"
	"time"

	"github.com/Adembc/netuse/internal/adapters/keyring"
	"github.com/Adembc/netuse/internal/adapters/runner"
	"github.com/Adembc/netuse/internal/adapters/smb"
	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/Adembc/netuse/internal/core/ports"
	"github.com/Adembc/netuse/internal/core/services"
	"go.uber.org/zap"
)

type (
	Connection     = domain.Connection
	Credential     = domain.Credential
	ConnectOptions = domain.ConnectOptions
	Config         = domain.Config
	Mapping        = domain.Mapping
	Command        = domain.Command
	CommandResult  = domain.CommandResult
	CommandError   = domain.CommandError

	// Runner executes a command line. Implementations report a non-zero
	// exit status in the result rather than as an error.
	Runner          = ports.CommandRunner
	CredentialStore = ports.CredentialStore
	ShareProber     = ports.ShareProber
)

var (
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrCommandFailed   = domain.ErrCommandFailed
	ErrNotFound        = domain.ErrNotFound
	ErrProbeFailed     = domain.ErrProbeFailed
	ErrKeyring         = domain.ErrKeyring
)

// NewCredential validates a credential. A username of the form
// "user@domain" takes precedence over the domain argument.
func NewCredential(username, domainName, password string, saveCredentials, useSmartcard bool) (*Credential, error) {
	return domain.NewCredential(username, domainName, password, saveCredentials, useSmartcard)
}

// DefaultConfig returns the settings New uses when WithConfig is not given.
func DefaultConfig() Config {
	return domain.DefaultConfig()
}

// Result is what NetUse returns: the listing when no drive or path was
// given, otherwise the created connection.
type Result struct {
	Connections []Connection
	Created     *Connection
}

type options struct {
	logger *zap.SugaredLogger
	config Config
	runner Runner
	store  CredentialStore
	prober ShareProber

	smbProbe        bool
	smbProbeTimeout time.Duration
}

type Option func(*options)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = logger }
}

func WithConfig(config Config) Option {
	return func(o *options) { o.config = config }
}

// WithRunner replaces the os/exec runner, e.g. with a fake in tests.
func WithRunner(r Runner) Option {
	return func(o *options) { o.runner = r }
}

// WithCredentialStore fills missing passwords from store.
func WithCredentialStore(store CredentialStore) Option {
	return func(o *options) { o.store = store }
}

// WithKeyring fills missing passwords from the OS keyring.
func WithKeyring() Option {
	return func(o *options) { o.store = keyring.NewSystemStore() }
}

// WithShareProber checks shares with p before mapping them when the
// configuration or the call asks for it.
func WithShareProber(p ShareProber) Option {
	return func(o *options) {
		o.prober = p
		o.smbProbe = false
	}
}

// WithSMBProbe checks shares over SMB, bounding each probe by timeout.
// A non-positive timeout uses the prober's default.
func WithSMBProbe(timeout time.Duration) Option {
	return func(o *options) {
		o.smbProbe = true
		o.smbProbeTimeout = timeout
	}
}

// Client runs net use operations with one configuration.
type Client struct {
	service ports.ConnectionService
}

func New(opts ...Option) *Client {
	o := &options{
		logger: zap.NewNop().Sugar(),
		config: domain.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.runner == nil {
		o.runner = runner.NewExecRunner(o.logger, o.config.Timeout)
	}
	if o.smbProbe {
		o.prober = smb.NewProber(o.logger, o.smbProbeTimeout)
	}

	var svcOpts []services.Option
	if o.store != nil {
		svcOpts = append(svcOpts, services.WithCredentialStore(o.store))
	}
	if o.prober != nil {
		svcOpts = append(svcOpts, services.WithShareProber(o.prober))
	}
	return &Client{service: services.NewConnectionService(o.logger, o.runner, o.config, svcOpts...)}
}

// NetUse lists the mappings when driveLetter and path are both empty and
// maps path to driveLetter otherwise.
func (c *Client) NetUse(ctx context.Context, driveLetter, path string, cred *Credential) (Result, error) {
	conns, created, err := c.service.Resolve(ctx, driveLetter, path, cred)
	if err != nil {
		return Result{}, err
	}
	return Result{Connections: conns, Created: created}, nil
}

func (c *Client) List(ctx context.Context) ([]Connection, error) {
	return c.service.List(ctx)
}

// Find returns the mapping of driveLetter or an error marked ErrNotFound.
func (c *Client) Find(ctx context.Context, driveLetter string) (Connection, error) {
	return c.service.Find(ctx, driveLetter)
}

// Connect maps path to driveLetter. cred may be nil to use the current
// logon session.
func (c *Client) Connect(ctx context.Context, driveLetter, path string, cred *Credential, opts ConnectOptions) (Connection, error) {
	return c.service.Connect(ctx, driveLetter, path, cred, opts)
}

// Delete removes conn and returns it unchanged. force closes open files.
func (c *Client) Delete(ctx context.Context, conn Connection, force bool) (Connection, error) {
	return c.service.Delete(ctx, conn, force)
}

// Apply maps every mapping that is not already in place.
func (c *Client) Apply(ctx context.Context, mappings []Mapping) ([]Connection, error) {
	return c.service.Apply(ctx, mappings)
}

// NetUse runs the operation with a default Client.
func NetUse(ctx context.Context, driveLetter, path string, cred *Credential) (Result, error) {
	return New().NetUse(ctx, driveLetter, path, cred)
}
