package netuse_test

import (
	"context"
	"testing"

	"github.com/Adembc/netuse"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type scriptedRunner struct {
	results []*netuse.CommandResult
	calls   [][]string
}

func (r *scriptedRunner) Run(_ context.Context, cmd netuse.Command) (*netuse.CommandResult, error) {
	r.calls = append(r.calls, cmd.Args)
	if len(r.results) == 0 {
		return &netuse.CommandResult{}, nil
	}
	res := r.results[0]
	r.results = r.results[1:]
	return res, nil
}

func newClient(t *testing.T, r *scriptedRunner, opts ...netuse.Option) *netuse.Client {
	t.Helper()
	opts = append([]netuse.Option{netuse.WithLogger(zaptest.NewLogger(t).Sugar()), netuse.WithRunner(r)}, opts...)
	return netuse.New(opts...)
}

func TestNetUse_ListsWithoutArguments(t *testing.T) {
	r := &scriptedRunner{results: []*netuse.CommandResult{{
		Stdout: "OK           C:        \\\\server\\share        Microsoft Windows Network\r\n",
	}}}
	client := newClient(t, r)

	res, err := client.NetUse(context.Background(), "", "", nil)
	require.NoError(t, err)
	assert.Nil(t, res.Created)
	require.Len(t, res.Connections, 1)
	assert.Equal(t, netuse.Connection{DriveLetter: "C:", Path: `\\server\share`, Status: "OK", Network: "Microsoft Windows Network"}, res.Connections[0])
	assert.Equal(t, [][]string{{"net", "use"}}, r.calls)
}

func TestNetUse_ConnectsWithDriveAndPath(t *testing.T) {
	r := &scriptedRunner{}
	client := newClient(t, r)

	res, err := client.NetUse(context.Background(), "Z:", `\\srv\share`, nil)
	require.NoError(t, err)
	assert.Nil(t, res.Connections)
	require.NotNil(t, res.Created)
	assert.Equal(t, "Z: \\\\srv\\share", res.Created.String())
	assert.Equal(t, [][]string{{"net", "use", "Z:", `\\srv\share`}}, r.calls)
}

func TestNetUse_InvalidDriveRunsNothing(t *testing.T) {
	r := &scriptedRunner{}
	client := newClient(t, r)

	_, err := client.NetUse(context.Background(), "ZZ:", `\\srv\share`, nil)
	assert.True(t, errors.Is(err, netuse.ErrInvalidArgument))
	assert.Empty(t, r.calls)
}

func TestNetUse_ExitStatusPolicy(t *testing.T) {
	failing := func() *scriptedRunner {
		return &scriptedRunner{results: []*netuse.CommandResult{{ExitStatus: 2, Stderr: "System error 67 has occurred."}}}
	}

	_, err := newClient(t, failing()).NetUse(context.Background(), "Z:", `\\srv\share`, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, netuse.ErrCommandFailed))
	var cmdErr *netuse.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 2, cmdErr.ExitStatus)

	cfg := netuse.DefaultConfig()
	cfg.StrictExitStatus = false
	res, err := newClient(t, failing(), netuse.WithConfig(cfg)).NetUse(context.Background(), "Z:", `\\srv\share`, nil)
	require.NoError(t, err)
	assert.Equal(t, "Z:", res.Created.DriveLetter)
}

func TestClient_ConnectWithCredential(t *testing.T) {
	r := &scriptedRunner{}
	client := newClient(t, r)
	cred, err := netuse.NewCredential("alice@corp", "", "pw", true, false)
	require.NoError(t, err)
	yes := true

	conn, err := client.Connect(context.Background(), "P:", `\\fs01\projects`, cred, netuse.ConnectOptions{Persistent: &yes})
	require.NoError(t, err)
	assert.Equal(t, "P:", conn.DriveLetter)
	assert.Equal(t, []string{"net", "use", "P:", `\\fs01\projects`, "pw", `/user:corp\alice`, "/savecred", "/persistent:yes"}, r.calls[0])
}

func TestClient_Delete(t *testing.T) {
	r := &scriptedRunner{}
	client := newClient(t, r)
	conn := netuse.Connection{DriveLetter: "Z:", Path: `\\srv\share`}

	got, err := client.Delete(context.Background(), conn, false)
	require.NoError(t, err)
	assert.True(t, conn.Equal(got))
	assert.Equal(t, []string{"net", "use", "Z:", "/delete"}, r.calls[0])
}

func TestClient_Find(t *testing.T) {
	r := &scriptedRunner{results: []*netuse.CommandResult{{Stdout: "OK  C:  \\\\server\\share  Microsoft Windows Network\n"}, {Stdout: ""}}}
	client := newClient(t, r)

	conn, err := client.Find(context.Background(), "C:")
	require.NoError(t, err)
	assert.Equal(t, `\\server\share`, conn.Path)

	_, err = client.Find(context.Background(), "C:")
	assert.True(t, errors.Is(err, netuse.ErrNotFound))
}
