package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "netuse.log")

	log, err := New(logFile, false)
	require.NoError(t, err)
	log.Infow("drive mapped", "drive", "P:")
	log.Debugw("hidden at info level")
	_ = log.Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"drive mapped"`)
	assert.Contains(t, string(data), `"drive":"P:"`)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_Debug(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "netuse.log")

	log, err := New(logFile, true)
	require.NoError(t, err)
	log.Debugw("visible at debug level")
	_ = log.Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible at debug level")
}
