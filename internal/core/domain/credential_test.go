package domain

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredential(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		domain     string
		wantUser   string
		wantDomain string
		wantErr    bool
	}{
		{name: "plain user", username: "alice", wantUser: "alice"},
		{name: "user with domain", username: "alice", domain: "corp.local", wantUser: "alice", wantDomain: "corp.local"},
		{name: "at form overrides domain", username: "alice@corp", domain: "other", wantUser: "alice", wantDomain: "corp"},
		{name: "digits one to nine", username: "bob19", wantUser: "bob19"},
		{name: "empty username", username: "", wantErr: true},
		{name: "zero is rejected", username: "bob0", wantErr: true},
		{name: "punctuation in username", username: "bob.smith", wantErr: true},
		{name: "bad domain", username: "alice", domain: "corp!", wantErr: true},
		{name: "two dotted suffixes", username: "alice", domain: "a.b.c", wantErr: true},
		{name: "bad domain after at", username: "alice@corp!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, err := NewCredential(tt.username, tt.domain, "secret", true, false)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				assert.Nil(t, cred)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, cred.Username)
			assert.Equal(t, tt.wantDomain, cred.Domain)
			assert.Equal(t, "secret", cred.Password)
			assert.True(t, cred.SaveCredentials)
			assert.False(t, cred.UseSmartcard)
		})
	}
}

func TestNewCredential_Hints(t *testing.T) {
	_, err := NewCredential("", "", "", false, false)
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestCredentialAccount(t *testing.T) {
	cred, err := NewCredential("alice@corp", "", "", false, false)
	require.NoError(t, err)
	assert.Equal(t, `corp\alice`, cred.Account())

	cred, err = NewCredential("alice", "", "", false, false)
	require.NoError(t, err)
	assert.Equal(t, "alice", cred.Account())
}

func TestCredentialWithPassword(t *testing.T) {
	cred, err := NewCredential("alice", "", "", false, false)
	require.NoError(t, err)

	withPw := cred.WithPassword("hunter2")
	assert.Equal(t, "hunter2", withPw.Password)
	assert.Empty(t, cred.Password, "receiver must stay unchanged")
}
