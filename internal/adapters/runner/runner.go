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

package runner

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ExecRunner runs commands directly with os/exec. No shell is involved, so
// every token reaches the program as one argument.
type ExecRunner struct {
	logger     *zap.SugaredLogger
	timeout    time.Duration
	newCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewExecRunner returns a runner that stops a child after timeout.
// A zero timeout leaves only the caller's context in charge.
func NewExecRunner(logger *zap.SugaredLogger, timeout time.Duration) *ExecRunner {
	return &ExecRunner{
		logger:     logger,
		timeout:    timeout,
		newCommand: exec.CommandContext,
	}
}

// Run executes cmd and captures stdout and stderr. The process exit status
// is returned in the result; only start failures, cancellation and
// timeouts are errors.
func (r *ExecRunner) Run(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error) {
	if len(cmd.Args) == 0 {
		return nil, errors.New("empty command")
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// #nosec G204 -- arguments are validated by the command builder and passed without a shell
	c := r.newCommand(ctx, cmd.Args[0], cmd.Args[1:]...)
	if c == nil {
		return nil, errors.Newf("failed to create command %s", cmd.Program())
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	res := &domain.CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err == nil {
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		r.logger.Warnw("command interrupted", "command", cmd.String(), "duration", res.Duration, "error", ctxErr)
		return res, errors.Wrapf(ctxErr, "%s interrupted after %s", cmd.Program(), res.Duration.Round(time.Millisecond))
	}

	// the program ran and failed: that is its exit status, not our error
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitStatus = exitErr.ExitCode()
		return res, nil
	}

	return res, errors.Wrapf(err, "start %s", cmd.Program())
}
