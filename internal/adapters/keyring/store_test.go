package keyring

import (
	"testing"

	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestSystemStore(t *testing.T) {
	keyring.MockInit()
	store := NewSystemStore()

	password, err := store.Password("corp", "alice")
	require.NoError(t, err)
	assert.Empty(t, password, "missing entry is not an error")

	require.NoError(t, store.SetPassword("corp", "alice", "s3cret"))
	require.NoError(t, store.SetPassword("", "alice", "local"))

	password, err = store.Password("corp", "alice")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)

	password, err = store.Password("", "alice")
	require.NoError(t, err)
	assert.Equal(t, "local", password)

	require.NoError(t, store.DeletePassword("corp", "alice"))
	require.NoError(t, store.DeletePassword("corp", "alice"), "second delete is a no-op")

	password, err = store.Password("corp", "alice")
	require.NoError(t, err)
	assert.Empty(t, password)
}

func TestSystemStore_RejectsEmptyPassword(t *testing.T) {
	keyring.MockInit()

	err := NewSystemStore().SetPassword("corp", "alice", "")
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestSystemStore_Unavailable(t *testing.T) {
	keyring.MockInitWithError(errors.New("dbus: no session bus"))
	t.Cleanup(keyring.MockInit)

	_, err := NewSystemStore().Password("corp", "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrKeyring))
}
