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

package smb

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/cockroachdb/errors"
	"github.com/hirochachacha/go-smb2"
	"go.uber.org/zap"
)

const (
	DefaultPort    = 445
	DefaultTimeout = 10 * time.Second
	guestUser      = "Guest"
)

// Prober checks that a share accepts a credential by opening an SMB
// session and tree-connecting to it. Nothing on the share is read.
type Prober struct {
	logger  *zap.SugaredLogger
	port    int
	timeout time.Duration
	dial    func(ctx context.Context, network, address string) (net.Conn, error)
}

func NewProber(logger *zap.SugaredLogger, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	dialer := &net.Dialer{Timeout: timeout}
	return &Prober{
		logger:  logger,
		port:    DefaultPort,
		timeout: timeout,
		dial:    dialer.DialContext,
	}
}

// Probe connects to the server of path and mounts its share. A nil
// credential probes as guest.
func (p *Prober) Probe(ctx context.Context, path string, cred *domain.Credential) error {
	server, share, err := splitUNC(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	addr := net.JoinHostPort(server, fmt.Sprintf("%d", p.port))
	conn, err := p.dial(ctx, "tcp", addr)
	if err != nil {
		return p.failed(path, errors.Wrapf(err, "connect to %s", addr))
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	d := &smb2.Dialer{Initiator: initiator(cred)}
	session, err := d.Dial(conn)
	if err != nil {
		return p.failed(path, errors.Wrap(err, "SMB session setup failed"))
	}
	defer func() { _ = session.Logoff() }()

	fs, err := session.Mount(share)
	if err != nil {
		return p.failed(path, errors.Wrapf(err, "failed to mount share %s", share))
	}
	_ = fs.Umount()

	p.logger.Debugw("share probe succeeded", "path", path)
	return nil
}

func (p *Prober) failed(path string, err error) error {
	p.logger.Warnw("share probe failed", "path", path, "error", err)
	return errors.Mark(errors.Wrapf(err, "probe %s", path), domain.ErrProbeFailed)
}

func initiator(cred *domain.Credential) *smb2.NTLMInitiator {
	if cred == nil {
		return &smb2.NTLMInitiator{User: guestUser}
	}
	return &smb2.NTLMInitiator{
		User:     cred.Username,
		Password: cred.Password,
		Domain:   cred.Domain,
	}
}

// splitUNC returns the server and share of \\server\share[\sub...].
func splitUNC(path string) (server, share string, err error) {
	rest, ok := strings.CutPrefix(path, `\\`)
	if !ok {
		return "", "", domain.NewInvalidArgument(fmt.Sprintf("invalid network path %q", path), `expected \\server\share`)
	}
	parts := strings.Split(rest, `\`)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", domain.NewInvalidArgument(fmt.Sprintf("network path %q names no share", path), `expected \\server\share`)
	}
	return parts[0], parts[1], nil
}
