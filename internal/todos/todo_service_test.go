package todos

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todos/internal/core/todo"
	"github.com/colonyops/todos/internal/store/jsonfile"
)

func newTodoService(t *testing.T) *TodoService {
	t.Helper()
	store, err := jsonfile.NewTodoStore(filepath.Join(t.TempDir(), "todos.json"))
	require.NoError(t, err)
	return NewTodoService(store, zerolog.Nop())
}

func TestTodoService(t *testing.T) {
	ctx := context.Background()

	t.Run("add constructs a pending item", func(t *testing.T) {
		svc := newTodoService(t)

		item, err := svc.Add(ctx, "alice", "Buy milk", "2 liters", todo.PriorityMid, "")
		require.NoError(t, err)

		assert.Len(t, item.ID, 36)
		assert.Equal(t, todo.StatusPending, item.Status)
		assert.Equal(t, "alice", item.Owner)
		assert.Nil(t, item.DueDate)

		got, err := svc.Get(ctx, item.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, item, got)
	})

	t.Run("add with due date", func(t *testing.T) {
		svc := newTodoService(t)

		item, err := svc.Add(ctx, "alice", "Taxes", "", todo.PriorityHigh, "2026-12-31")
		require.NoError(t, err)
		require.NotNil(t, item.DueDate)
		assert.Equal(t, "2026-12-31", *item.DueDate)
	})

	t.Run("list is newest first", func(t *testing.T) {
		svc := newTodoService(t)

		first, err := svc.Add(ctx, "alice", "first", "", todo.PriorityLow, "")
		require.NoError(t, err)
		second, err := svc.Add(ctx, "alice", "second", "", todo.PriorityLow, "")
		require.NoError(t, err)

		// Force distinct sortable timestamps regardless of clock resolution.
		first.CreatedAt = "2026-01-01T08:00:00.000000"
		_, err = svc.Save(ctx, first)
		require.NoError(t, err)
		second.CreatedAt = "2026-01-02T08:00:00.000000"
		_, err = svc.Save(ctx, second)
		require.NoError(t, err)

		items, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "second", items[0].Title)
		assert.Equal(t, "first", items[1].Title)
	})

	t.Run("pending excludes completed items", func(t *testing.T) {
		svc := newTodoService(t)

		open, err := svc.Add(ctx, "alice", "open", "", todo.PriorityMid, "")
		require.NoError(t, err)
		done, err := svc.Add(ctx, "alice", "done", "", todo.PriorityMid, "")
		require.NoError(t, err)

		_, err = svc.Complete(ctx, done.ID, "alice")
		require.NoError(t, err)

		pending, err := svc.Pending(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, open.ID, pending[0].ID)
	})

	t.Run("complete refreshes updated_at only", func(t *testing.T) {
		svc := newTodoService(t)

		item, err := svc.Add(ctx, "alice", "task", "", todo.PriorityMid, "")
		require.NoError(t, err)

		completed, err := svc.Complete(ctx, item.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, todo.StatusCompleted, completed.Status)
		assert.Equal(t, item.CreatedAt, completed.CreatedAt)
		assert.Equal(t, item.ID, completed.ID)
	})

	t.Run("complete twice fails", func(t *testing.T) {
		svc := newTodoService(t)

		item, err := svc.Add(ctx, "alice", "task", "", todo.PriorityMid, "")
		require.NoError(t, err)

		_, err = svc.Complete(ctx, item.ID, "alice")
		require.NoError(t, err)

		_, err = svc.Complete(ctx, item.ID, "alice")
		assert.ErrorIs(t, err, ErrAlreadyCompleted)
	})

	t.Run("complete scoped by owner", func(t *testing.T) {
		svc := newTodoService(t)

		item, err := svc.Add(ctx, "alice", "task", "", todo.PriorityMid, "")
		require.NoError(t, err)

		_, err = svc.Complete(ctx, item.ID, "bob")
		assert.ErrorIs(t, err, todo.ErrNotFound)
	})

	t.Run("save persists edits", func(t *testing.T) {
		svc := newTodoService(t)

		item, err := svc.Add(ctx, "alice", "old title", "", todo.PriorityLow, "")
		require.NoError(t, err)

		item.Title = "new title"
		item.SetDueDate("2026-09-01")
		saved, err := svc.Save(ctx, item)
		require.NoError(t, err)

		got, err := svc.Get(ctx, item.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, "new title", got.Title)
		require.NotNil(t, got.DueDate)
		assert.Equal(t, "2026-09-01", *got.DueDate)
		assert.Equal(t, saved.UpdatedAt, got.UpdatedAt)
		assert.Equal(t, item.CreatedAt, got.CreatedAt)
	})

	t.Run("save unknown item", func(t *testing.T) {
		svc := newTodoService(t)

		ghost := todo.New("ghost", "", todo.PriorityLow, todo.StatusPending, "alice")
		_, err := svc.Save(ctx, ghost)
		assert.ErrorIs(t, err, todo.ErrNotFound)
	})
}
