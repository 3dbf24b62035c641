package services

import (
	"strings"
	"testing"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const netUseListing = "New connections will be remembered.\r\n" +
	"\r\n" +
	"\r\n" +
	"Status       Local     Remote                    Network\r\n" +
	"\r\n" +
	"-------------------------------------------------------------------------------\r\n" +
	"OK           P:        \\\\fs01\\projects          Microsoft Windows Network\r\n" +
	"Unavailable  Q:        \\\\fs02\\archive$\\2023     Microsoft Windows Network\r\n" +
	"OK                     \\\\fs01\\IPC$              Microsoft Windows Network\r\n" +
	"Disconnected Z:        \\\\nas.corp.local\\media\r\n" +
	"                                                Microsoft Windows Network\r\n" +
	"The command completed successfully.\r\n"

func TestParseConnections(t *testing.T) {
	connections, err := ParseConnections(strings.NewReader(netUseListing))
	require.NoError(t, err)

	want := []domain.Connection{
		{DriveLetter: "P:", Path: `\\fs01\projects`, Status: "OK", Network: "Microsoft Windows Network"},
		{DriveLetter: "Q:", Path: `\\fs02\archive$\2023`, Status: "Unavailable", Network: "Microsoft Windows Network"},
		{DriveLetter: "Z:", Path: `\\nas.corp.local\media`, Status: "Disconnected"},
	}
	assert.Equal(t, want, connections)
}

func TestParseConnections_SingleLine(t *testing.T) {
	input := "Status Local Remote\n" +
		"C:        \\\\server\\share   Microsoft Windows Network\n" +
		"There are no entries in the list.\n"

	connections, err := ParseConnections(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, connections, 1)
	assert.Equal(t, "C:", connections[0].DriveLetter)
	assert.Equal(t, `\\server\share`, connections[0].Path)
	assert.Empty(t, connections[0].Status)
}

func TestParseConnections_NoMatches(t *testing.T) {
	connections, err := ParseConnections(strings.NewReader("There are no entries in the list.\r\n"))
	require.NoError(t, err)
	assert.NotNil(t, connections)
	assert.Empty(t, connections)

	connections, err = ParseConnections(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, connections)
}

func TestParseConnections_RecordsRebuild(t *testing.T) {
	connections, err := ParseConnections(strings.NewReader(netUseListing))
	require.NoError(t, err)

	for _, conn := range connections {
		_, err := NewNetUseCommand().DriveLetter(conn.DriveLetter).NetworkPath(conn.Path).Build()
		assert.NoError(t, err, conn.String())
	}
}
