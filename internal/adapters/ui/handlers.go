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
	"fmt"
	"strings"
	"time"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// =============================================================================
// Event Handlers (handle user input/events)
// =============================================================================

func (t *tui) handleGlobalKeys(event *tcell.EventKey) *tcell.EventKey {
	// Don't handle global keys when the filter, a form or a modal has focus
	if t.app.GetFocus() != t.list {
		return event
	}

	switch event.Rune() {
	case 'q':
		t.handleQuit()
		return nil
	case '/':
		t.handleSearchToggle()
		return nil
	case 'a':
		t.handleConnectionAdd()
		return nil
	case 'd':
		t.handleConnectionDelete(false)
		return nil
	case 'D':
		t.handleConnectionDelete(true)
		return nil
	case 'c':
		t.handleCopyPath()
		return nil
	case 'r':
		t.handleRefresh()
		return nil
	case '?':
		t.handleHelpShow()
		return nil
	}

	return event
}

func (t *tui) handleQuit() {
	t.app.Stop()
}

func (t *tui) handleRefresh() {
	t.refreshConnectionList()
	t.showStatusTemp(fmt.Sprintf("%d mapped drive(s)", len(t.connections)))
}

func (t *tui) handleCopyPath() {
	if conn, ok := t.list.GetSelectedConnection(); ok {
		if err := clipboard.WriteAll(conn.Path); err == nil {
			t.showStatusTemp("Copied: " + conn.Path)
		} else {
			t.showStatusTemp("Failed to copy to clipboard")
		}
	}
}

func (t *tui) handleSearchInput(query string) {
	filtered := filterConnections(t.connections, query)
	t.list.UpdateConnections(filtered)
	if len(filtered) == 0 {
		t.details.ShowEmpty()
	}
}

func (t *tui) handleSearchToggle() {
	t.showSearchBar()
}

func (t *tui) handleConnectionSelectionChange(conn domain.Connection) {
	t.details.UpdateConnection(conn)
}

func (t *tui) handleConnectionAdd() {
	t.showConnectForm()
}

func (t *tui) handleConnectionSave(drive, path, user, password string, persistent bool) {
	var cred *domain.Credential
	if user != "" {
		c, err := domain.NewCredential(user, "", password, false, false)
		if err != nil {
			t.showErrorModal("Invalid credential", err)
			return
		}
		cred = c
	}

	var opts domain.ConnectOptions
	if persistent {
		opts.Persistent = &persistent
	}

	conn, err := t.service.Connect(t.ctx, drive, path, cred, opts)
	if err != nil {
		t.showErrorModal("Map failed", err)
		return
	}

	t.refreshConnectionList()
	t.returnToMain()
	t.showStatusTemp(fmt.Sprintf("Mapped %s to %s", conn.DriveLetter, conn.Path))
}

func (t *tui) handleConnectionDelete(force bool) {
	if conn, ok := t.list.GetSelectedConnection(); ok {
		t.showDeleteConfirmModal(conn, force)
	}
}

func (t *tui) handleFormCancel() {
	t.returnToMain()
}

func (t *tui) handleHelpShow() {
	t.showHelpModal()
}

func (t *tui) handleModalClose() {
	t.returnToMain()
}

// =============================================================================
// UI Display Functions (show UI elements/modals)
// =============================================================================

func (t *tui) showSearchBar() {
	t.left.Clear()
	t.left.AddItem(t.searchBar, 3, 0, true)
	t.left.AddItem(t.list, 0, 1, false)
	t.app.SetFocus(t.searchBar)
	t.searchVisible = true
}

func (t *tui) showConnectForm() {
	form := tview.NewForm()
	form.SetBorder(true).
		SetTitle(" Map network drive ").
		SetTitleAlign(tview.AlignLeft)

	form.AddInputField("Drive:", "", 4, nil, nil)
	form.AddInputField("Path:", `\\`, 50, nil, nil)
	form.AddInputField("User (user@domain):", "", 30, nil, nil)
	form.AddPasswordField("Password:", "", 30, '*', nil)
	form.AddCheckbox("Persistent:", false, nil)

	form.AddButton("Map", func() {
		field := func(i int) string {
			return strings.TrimSpace(form.GetFormItem(i).(*tview.InputField).GetText())
		}
		password := form.GetFormItem(3).(*tview.InputField).GetText()
		persistent := form.GetFormItem(4).(*tview.Checkbox).IsChecked()
		t.handleConnectionSave(strings.ToUpper(field(0)), field(1), field(2), password, persistent)
	})
	form.AddButton("Cancel", t.handleFormCancel)
	form.SetCancelFunc(t.handleFormCancel)

	t.app.SetRoot(form, true)
	t.app.SetFocus(form)
}

func (t *tui) showDeleteConfirmModal(conn domain.Connection, force bool) {
	msg := fmt.Sprintf("Disconnect %s (%s)?", conn.DriveLetter, conn.Path)
	if force {
		msg += "\n\nOpen files on the share will be closed."
	}

	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"Cancel", "Confirm"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonIndex != 1 {
				t.handleModalClose()
				return
			}
			if _, err := t.service.Delete(t.ctx, conn, force); err != nil {
				t.showErrorModal("Disconnect failed", err)
				return
			}
			t.refreshConnectionList()
			t.handleModalClose()
			t.showStatusTemp("Disconnected " + conn.DriveLetter)
		})

	t.app.SetRoot(modal, true)
}

func (t *tui) showErrorModal(title string, err error) {
	t.logger.Warnw(strings.ToLower(title), "error", err)
	text := fmt.Sprintf("%s: %v", title, err)
	for _, hint := range errors.GetAllHints(err) {
		text += "\n\n" + hint
	}

	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) { t.handleModalClose() })
	t.app.SetRoot(modal, true)
}

func (t *tui) showHelpModal() {
	text := "Keyboard shortcuts:\n\n" +
		"  ↑/↓            Navigate\n" +
		"  a              Map a network drive\n" +
		"  d              Disconnect drive\n" +
		"  D              Disconnect, closing open files\n" +
		"  c              Copy remote path\n" +
		"  r              Refresh list\n" +
		"  /              Filter\n" +
		"  q              Quit\n" +
		"  ?              Help\n"

	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			t.handleModalClose()
		})

	t.app.SetRoot(modal, true)
}

// =============================================================================
// UI State Management (hide UI elements)
// =============================================================================

func (t *tui) hideSearchBar() {
	t.left.Clear()
	t.left.AddItem(t.hintBar, 1, 0, false)
	t.left.AddItem(t.list, 0, 1, true)
	t.app.SetFocus(t.list)
	t.searchVisible = false
}

// =============================================================================
// Internal Operations (perform actual work)
// =============================================================================

func (t *tui) refreshConnectionList() {
	conns, err := t.service.List(t.ctx)
	if err != nil {
		t.logger.Errorw("failed to list connections", "error", err)
		t.showStatusTemp("List failed: " + err.Error())
		return
	}
	t.connections = conns

	query := ""
	if t.searchVisible {
		query = t.searchBar.GetText()
	}
	filtered := filterConnections(conns, query)
	t.list.UpdateConnections(filtered)
	if conn, ok := t.list.GetSelectedConnection(); ok {
		t.details.UpdateConnection(conn)
	} else {
		t.details.ShowEmpty()
	}
}

func (t *tui) returnToMain() {
	t.app.SetRoot(t.root, true)
	t.app.SetFocus(t.list)
}

// showStatusTemp displays a temporary message in the status bar and then restores the default text.
func (t *tui) showStatusTemp(msg string) {
	if t.statusBar == nil {
		return
	}
	t.statusBar.SetText("[#A0FFA0]" + tview.Escape(msg) + "[-]")
	time.AfterFunc(2*time.Second, func() {
		if t.app != nil {
			t.app.QueueUpdateDraw(func() {
				if t.statusBar != nil {
					t.statusBar.SetText(DefaultStatusText())
				}
			})
		}
	})
}
