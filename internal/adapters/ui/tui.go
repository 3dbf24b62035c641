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

package ui

import (
	"context"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/Adembc/netuse/internal/core/ports"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

type App interface {
	Run() error
}

type tui struct {
	ctx     context.Context
	logger  *zap.SugaredLogger
	service ports.ConnectionService
	version string

	app       *tview.Application
	root      *tview.Flex
	left      *tview.Flex
	header    *tview.TextView
	hintBar   *tview.TextView
	searchBar *tview.InputField
	list      *ConnectionList
	details   *ConnectionDetails
	statusBar *tview.TextView

	searchVisible bool
	connections   []domain.Connection
}

func NewTUI(ctx context.Context, logger *zap.SugaredLogger, service ports.ConnectionService, version string) App {
	return &tui{
		ctx:     ctx,
		logger:  logger,
		service: service,
		version: version,
		app:     tview.NewApplication(),
	}
}

func (t *tui) Run() error {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Errorw("panic recovered", "error", r)
		}
	}()

	t.buildComponents().buildLayout().bindEvents()
	t.refreshConnectionList()

	t.app.SetRoot(t.root, true)
	t.logger.Infow("starting UI application", "version", t.version)
	if err := t.app.Run(); err != nil {
		t.logger.Errorw("application run error", "error", err)
		return err
	}
	return nil
}

func (t *tui) buildComponents() *tui {
	t.header = tview.NewTextView().
		SetDynamicColors(true).
		SetText("[::b]netuse[-:-:-] [#8A8A8A]" + t.version + "[-]")

	t.hintBar = tview.NewTextView().
		SetDynamicColors(true).
		SetText("[#8A8A8A]Press [white]/[-] to filter, [white]?[-] for help[-]")

	t.searchBar = tview.NewInputField().
		SetLabel(" Filter: ").
		SetFieldBackgroundColor(tcell.Color236)
	t.searchBar.SetBorder(true)

	t.list = NewConnectionList()
	t.details = NewConnectionDetails()

	t.statusBar = tview.NewTextView().SetDynamicColors(true)
	t.statusBar.SetText(DefaultStatusText())
	return t
}

func (t *tui) buildLayout() *tui {
	t.left = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.hintBar, 1, 0, false).
		AddItem(t.list, 0, 1, true)

	content := tview.NewFlex().
		AddItem(t.left, 0, 3, true).
		AddItem(t.details, 0, 2, false)

	t.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.header, 1, 0, false).
		AddItem(content, 0, 1, true).
		AddItem(t.statusBar, 1, 0, false)
	return t
}

func (t *tui) bindEvents() *tui {
	t.list.OnSelectionChange(t.handleConnectionSelectionChange)

	t.searchBar.SetChangedFunc(t.handleSearchInput)
	t.searchBar.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			t.searchBar.SetText("")
			t.handleSearchInput("")
		}
		t.hideSearchBar()
	})

	t.app.SetInputCapture(t.handleGlobalKeys)
	return t
}

// DefaultStatusText is shown in the status bar when no message is pending.
func DefaultStatusText() string {
	return "[white]a[-] map  [white]d[-] disconnect  [white]D[-] force  [white]c[-] copy path  [white]r[-] refresh  [white]q[-] quit"
}
