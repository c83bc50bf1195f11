package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todos/internal/core/todo"
	"github.com/colonyops/todos/internal/store/fs"
	"github.com/colonyops/todos/internal/store/jsonfile"
	"github.com/colonyops/todos/internal/todos"
)

func newTestApp(t *testing.T) *todos.App {
	t.Helper()
	dir := t.TempDir()

	users, err := jsonfile.NewUserStore(filepath.Join(dir, "users.json"))
	require.NoError(t, err)

	items, err := jsonfile.NewTodoStore(filepath.Join(dir, "todos.json"))
	require.NoError(t, err)

	return todos.NewApp(users, items, fs.NewLoginState(dir), nil, zerolog.Nop())
}

func TestResolveItem(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	item, err := app.Todos.Add(ctx, "alice", "Buy milk", "", todo.PriorityMid, "")
	require.NoError(t, err)

	other, err := app.Todos.Add(ctx, "bob", "Bob's errand", "", todo.PriorityLow, "")
	require.NoError(t, err)

	t.Run("full id", func(t *testing.T) {
		got, err := resolveItem(ctx, app, "alice", item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
	})

	t.Run("unique prefix", func(t *testing.T) {
		got, err := resolveItem(ctx, app, "alice", item.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := resolveItem(ctx, app, "alice", "zzzzzzzz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no todo found")
	})

	t.Run("another user's id does not resolve", func(t *testing.T) {
		_, err := resolveItem(ctx, app, "alice", other.ID)
		require.Error(t, err)

		_, err = resolveItem(ctx, app, "alice", other.ID[:8])
		require.Error(t, err)
	})
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "1b9f04aa", shortID("1b9f04aa-0000-0000-0000-000000000000"))
	assert.Equal(t, "nohyphen", shortID("nohyphen"))
}

func TestDueOrNone(t *testing.T) {
	item := todo.Item{}
	assert.Equal(t, "none", dueOrNone(item))

	item.SetDueDate("2026-04-15")
	assert.Equal(t, "2026-04-15", dueOrNone(item))
}
