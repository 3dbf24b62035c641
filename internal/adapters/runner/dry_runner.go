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
	"context"
	"fmt"
	"io"

	"github.com/Adembc/netuse/internal/core/domain"
	"go.uber.org/zap"
)

// DryRunner prints the redacted command line instead of running it and
// reports success with empty output.
type DryRunner struct {
	logger *zap.SugaredLogger
	out    io.Writer
}

func NewDryRunner(logger *zap.SugaredLogger, out io.Writer) *DryRunner {
	return &DryRunner{logger: logger, out: out}
}

func (r *DryRunner) Run(_ context.Context, cmd domain.Command) (*domain.CommandResult, error) {
	r.logger.Infow("dry run", "command", cmd.String())
	if _, err := fmt.Fprintln(r.out, cmd.String()); err != nil {
		return nil, err
	}
	return &domain.CommandResult{}, nil
}
