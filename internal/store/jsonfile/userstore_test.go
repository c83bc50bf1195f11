package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/colonyops/todos/internal/core/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserStore(t *testing.T) (*UserStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	store, err := NewUserStore(path)
	require.NoError(t, err)
	return store, path
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and authenticate", func(t *testing.T) {
		store, _ := newUserStore(t)

		require.NoError(t, store.Create(ctx, user.User{Username: "alice", Password: "s3cret"}))

		assert.NoError(t, store.Authenticate(ctx, "alice", "s3cret"))
		assert.ErrorIs(t, store.Authenticate(ctx, "alice", "wrong"), user.ErrInvalidCredentials)
		assert.ErrorIs(t, store.Authenticate(ctx, "nobody", "s3cret"), user.ErrInvalidCredentials)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		store, _ := newUserStore(t)

		require.NoError(t, store.Create(ctx, user.User{Username: "alice", Password: "one"}))
		err := store.Create(ctx, user.User{Username: "alice", Password: "two"})
		assert.ErrorIs(t, err, user.ErrExists)

		// The original password still authenticates.
		assert.NoError(t, store.Authenticate(ctx, "alice", "one"))
	})

	t.Run("exists", func(t *testing.T) {
		store, _ := newUserStore(t)

		ok, err := store.Exists(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, store.Create(ctx, user.User{Username: "alice", Password: "pw"}))

		ok, err = store.Exists(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("password round-trips as plaintext", func(t *testing.T) {
		store, path := newUserStore(t)

		require.NoError(t, store.Create(ctx, user.User{Username: "alice", Password: "plain-pw"}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"password": "plain-pw"`)
	})

	t.Run("initializes missing file to empty array", func(t *testing.T) {
		_, path := newUserStore(t)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}
