package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestRepo(t *testing.T) (*ConfigRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netuse", "config.yaml")
	return NewConfigRepo(zaptest.NewLogger(t).Sugar(), path), path
}

func TestConfigRepo_LoadCreatesDefaults(t *testing.T) {
	repo, path := newTestRepo(t)

	config, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), config)

	_, err = os.Stat(path)
	require.NoError(t, err, "default config should be written")
}

func TestConfigRepo_LoadPartialFileKeepsDefaults(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("timeout: 5s\nprobe_before_connect: true\n"), 0o600))

	config, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.True(t, config.ProbeBeforeConnect)
	assert.True(t, config.StrictExitStatus)
	assert.True(t, config.UseKeyring)
	assert.Equal(t, domain.DefaultProgram, config.Command)
}

func TestConfigRepo_LoadInvalidYAML(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("timeout: [oops\n"), 0o600))

	_, err := repo.Load()
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestConfigRepo_LoadDuplicateMapping(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	content := `
mappings:
  - name: projects
    drive: "P:"
    path: '\\fs01\projects'
  - name: projects
    drive: "Q:"
    path: '\\fs01\other'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := repo.Load()
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestConfigRepo_SaveMappingRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	yes := true

	require.NoError(t, repo.SaveMapping(domain.Mapping{Name: "projects", Drive: "P:", Path: `\\fs01\projects`, User: "alice", Domain: "CORP", Persistent: &yes}))
	require.NoError(t, repo.SaveMapping(domain.Mapping{Name: "home", Drive: "H:", Path: `\\fs01\home$`}))
	require.NoError(t, repo.SaveMapping(domain.Mapping{Name: "projects", Drive: "Q:", Path: `\\fs02\projects`}))

	all, err := repo.Mappings()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "projects", all[0].Name)
	assert.Equal(t, "Q:", all[0].Drive)
	assert.Equal(t, `\\fs02\projects`, all[0].Path)
	assert.Nil(t, all[0].Persistent)
	assert.Equal(t, `\\fs01\home$`, all[1].Path)

	config, err := repo.Load()
	require.NoError(t, err)
	assert.True(t, config.StrictExitStatus, "saving a mapping keeps the other settings")
}

func TestConfigRepo_MappingsByName(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.SaveMapping(domain.Mapping{Name: "a", Drive: "A:", Path: `\\s\a`}))
	require.NoError(t, repo.SaveMapping(domain.Mapping{Name: "b", Drive: "B:", Path: `\\s\b`}))

	got, err := repo.Mappings("b", "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Name)
	assert.Equal(t, "a", got[1].Name)

	_, err = repo.Mappings("missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestConfigRepo_SaveMappingRejectsIncomplete(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.SaveMapping(domain.Mapping{Name: "x", Drive: "X:"})
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

	err = repo.SaveMapping(domain.Mapping{Drive: "X:", Path: `\\s\x`})
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}
