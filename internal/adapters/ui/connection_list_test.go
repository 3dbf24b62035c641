package ui

import (
	"testing"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionList_Selection(t *testing.T) {
	list := NewConnectionList()
	var changed []string
	list.OnSelectionChange(func(c domain.Connection) { changed = append(changed, c.DriveLetter) })

	_, ok := list.GetSelectedConnection()
	assert.False(t, ok)

	list.UpdateConnections(sample)
	conn, ok := list.GetSelectedConnection()
	require.True(t, ok)
	assert.Equal(t, "H:", conn.DriveLetter)
	assert.Equal(t, len(sample)+1, list.GetRowCount(), "header row plus one row per connection")

	list.Select(3, 0)
	list.UpdateConnections(sample[1:])
	conn, ok = list.GetSelectedConnection()
	require.True(t, ok)
	assert.Equal(t, "Z:", conn.DriveLetter, "selection follows the drive across refreshes")
	assert.Contains(t, changed, "Z:")
}

func TestConnectionList_Empty(t *testing.T) {
	list := NewConnectionList()
	list.UpdateConnections(sample)
	list.UpdateConnections(nil)

	_, ok := list.GetSelectedConnection()
	assert.False(t, ok)
	assert.Equal(t, 1, list.GetRowCount())
}
