package todos

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todos/internal/core/user"
	"github.com/colonyops/todos/internal/store/fs"
	"github.com/colonyops/todos/internal/store/jsonfile"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	dir := t.TempDir()
	users, err := jsonfile.NewUserStore(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	return NewAuthService(users, fs.NewLoginState(dir), zerolog.Nop())
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("register login logout", func(t *testing.T) {
		svc := newAuthService(t)

		require.NoError(t, svc.Register(ctx, "alice", "pw"))

		_, err := svc.CurrentUser()
		assert.ErrorIs(t, err, ErrNotLoggedIn)

		require.NoError(t, svc.Login(ctx, "alice", "pw"))

		current, err := svc.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, "alice", current)

		require.NoError(t, svc.Logout(ctx))
		_, err = svc.CurrentUser()
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("register rejects empty fields", func(t *testing.T) {
		svc := newAuthService(t)

		assert.Error(t, svc.Register(ctx, "", "pw"))
		assert.Error(t, svc.Register(ctx, "alice", ""))
		assert.Error(t, svc.Register(ctx, "   ", "pw"))
	})

	t.Run("register rejects duplicates", func(t *testing.T) {
		svc := newAuthService(t)

		require.NoError(t, svc.Register(ctx, "alice", "pw"))
		err := svc.Register(ctx, "alice", "other")
		assert.ErrorIs(t, err, user.ErrExists)
	})

	t.Run("login rejects bad credentials", func(t *testing.T) {
		svc := newAuthService(t)

		require.NoError(t, svc.Register(ctx, "alice", "pw"))

		assert.ErrorIs(t, svc.Login(ctx, "alice", "wrong"), user.ErrInvalidCredentials)
		assert.ErrorIs(t, svc.Login(ctx, "bob", "pw"), user.ErrInvalidCredentials)

		_, err := svc.CurrentUser()
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("logout while logged out", func(t *testing.T) {
		svc := newAuthService(t)
		assert.NoError(t, svc.Logout(ctx))
	})
}
