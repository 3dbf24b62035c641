package ui

import (
	"testing"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

var sample = []domain.Connection{
	{DriveLetter: "H:", Path: `\\fs01\home$`, Status: "OK", Network: "Microsoft Windows Network"},
	{DriveLetter: "P:", Path: `\\fs01\projects`, Status: "Unavailable", Network: "Microsoft Windows Network"},
	{DriveLetter: "Z:", Path: `\\nas\media`, Status: "", Network: "Web Client Network"},
}

func TestCellPad(t *testing.T) {
	assert.Equal(t, "OK   ", cellPad("OK", 5))
	assert.Equal(t, "toolong", cellPad("toolong", 3))
	assert.Equal(t, 4, runewidth.StringWidth(cellPad("日本", 4)))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, tcell.ColorGreen, statusColor("OK"))
	assert.Equal(t, tcell.ColorRed, statusColor("Unavailable"))
	assert.Equal(t, tcell.ColorRed, statusColor("Disconnected"))
	assert.Equal(t, tcell.ColorYellow, statusColor("Reconnecting"))
	assert.Equal(t, tcell.Color250, statusColor(""))
}

func TestFilterConnections(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query keeps all", query: "  ", want: []string{"H:", "P:", "Z:"}},
		{name: "by server", query: "fs01", want: []string{"H:", "P:"}},
		{name: "case insensitive", query: "PROJECTS", want: []string{"P:"}},
		{name: "all terms must match", query: "fs01 unavailable", want: []string{"P:"}},
		{name: "by network", query: "web client", want: []string{"Z:"}},
		{name: "no match", query: "printer", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterConnections(sample, tt.query)
			drives := make([]string, 0, len(got))
			for _, c := range got {
				drives = append(drives, c.DriveLetter)
			}
			assert.Equal(t, tt.want, drives)
		})
	}
}

func TestFormatConnectionRow(t *testing.T) {
	row := formatConnectionRow(sample[2])
	assert.Len(t, row, 4)
	assert.Equal(t, cellPad("-", statusWidth), row[0])
	assert.Equal(t, "Z:", row[1])
	assert.Equal(t, `\\nas\media`, row[2])
}

func TestFormatDetails(t *testing.T) {
	text := formatDetails(sample[0])
	assert.Contains(t, text, "H:")
	assert.Contains(t, text, `\\fs01\home$`)
	assert.Contains(t, text, "Microsoft Windows Network")

	text = formatDetails(sample[2])
	assert.Contains(t, text, "Status:  [white]-[-]")
}
