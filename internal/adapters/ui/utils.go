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

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const statusWidth = 12

// cellPad pads a string with spaces so its display width is at least `width` cells.
func cellPad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func statusColor(status string) tcell.Color {
	switch strings.ToLower(status) {
	case "ok":
		return tcell.ColorGreen
	case "":
		return tcell.Color250
	case "disconnected", "unavailable":
		return tcell.ColorRed
	default:
		return tcell.ColorYellow
	}
}

func formatConnectionRow(c domain.Connection) []string {
	status := c.Status
	if status == "" {
		status = "-"
	}
	return []string{
		cellPad(status, statusWidth),
		c.DriveLetter,
		tview.Escape(c.Path),
		tview.Escape(c.Network),
	}
}

// filterConnections keeps the connections whose drive, path or network
// contains every whitespace-separated term of query, ignoring case.
func filterConnections(conns []domain.Connection, query string) []domain.Connection {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return conns
	}

	out := make([]domain.Connection, 0, len(conns))
	for _, c := range conns {
		haystack := strings.ToLower(strings.Join([]string{c.Status, c.DriveLetter, c.Path, c.Network}, " "))
		match := true
		for _, term := range terms {
			if !strings.Contains(haystack, term) {
				match = false
				break
			}
		}
		if match {
			out = append(out, c)
		}
	}
	return out
}

func formatDetails(c domain.Connection) string {
	orDash := func(s string) string {
		if s == "" {
			return "-"
		}
		return tview.Escape(s)
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("[::b]%s[-:-:-]\n\n", c.DriveLetter))
	text.WriteString(fmt.Sprintf("Remote:  [white]%s[-]\n", tview.Escape(c.Path)))
	text.WriteString(fmt.Sprintf("Status:  [white]%s[-]\n", orDash(c.Status)))
	text.WriteString(fmt.Sprintf("Network: [white]%s[-]\n\n", orDash(c.Network)))

	text.WriteString("[::b]Commands:[-:-:-]\n")
	text.WriteString("  c: Copy remote path\n  d: Disconnect\n  D: Disconnect, closing open files\n  r: Refresh list")
	return text.String()
}
