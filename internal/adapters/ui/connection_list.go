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
	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var listColumns = []string{"Status", "Local", "Remote", "Network"}

// ConnectionList is a selectable table of mapped drives with a fixed header row.
type ConnectionList struct {
	*tview.Table
	connections []domain.Connection
	onChange    func(domain.Connection)
}

func NewConnectionList() *ConnectionList {
	list := &ConnectionList{Table: tview.NewTable()}
	list.build()
	return list
}

func (cl *ConnectionList) build() {
	cl.Table.SetSelectable(true, false).
		SetFixed(1, 0).
		SetBorder(true).
		SetTitle(" Connections ").
		SetBorderColor(tcell.Color238).
		SetTitleColor(tcell.Color250)

	cl.Table.SetSelectionChangedFunc(func(row, _ int) {
		if conn, ok := cl.connectionAt(row); ok && cl.onChange != nil {
			cl.onChange(conn)
		}
	})
}

func (cl *ConnectionList) OnSelectionChange(fn func(domain.Connection)) *ConnectionList {
	cl.onChange = fn
	return cl
}

// UpdateConnections redraws the table, keeping the selected drive when it
// is still present.
func (cl *ConnectionList) UpdateConnections(conns []domain.Connection) {
	previous, hadSelection := cl.GetSelectedConnection()

	cl.Table.Clear()
	cl.connections = conns
	for col, title := range listColumns {
		cl.Table.SetCell(0, col, tview.NewTableCell(title).
			SetTextColor(tcell.Color250).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	selected := 1
	for i, conn := range conns {
		row := i + 1
		cells := formatConnectionRow(conn)
		for col, text := range cells {
			cell := tview.NewTableCell(text)
			if col == 0 {
				cell.SetTextColor(statusColor(conn.Status))
			}
			if col == 2 {
				cell.SetExpansion(1)
			}
			cl.Table.SetCell(row, col, cell)
		}
		if hadSelection && conn.DriveLetter == previous.DriveLetter {
			selected = row
		}
	}

	if len(conns) > 0 {
		cl.Table.Select(selected, 0)
	}
}

func (cl *ConnectionList) GetSelectedConnection() (domain.Connection, bool) {
	row, _ := cl.Table.GetSelection()
	return cl.connectionAt(row)
}

func (cl *ConnectionList) connectionAt(row int) (domain.Connection, bool) {
	i := row - 1
	if i < 0 || i >= len(cl.connections) {
		return domain.Connection{}, false
	}
	return cl.connections[i], true
}
