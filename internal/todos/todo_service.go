package todos

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/colonyops/todos/internal/core/todo"
)

// ErrAlreadyCompleted is returned when completing an item that is not
// pending.
var ErrAlreadyCompleted = errors.New("todo item is already completed")

// TodoService wraps todo.Store with the caller-side responsibilities the
// store deliberately leaves out: constructing items, refreshing
// updated_at on mutation, and presentation ordering.
type TodoService struct {
	store todo.Store
	log   zerolog.Logger
}

// NewTodoService creates a new TodoService.
func NewTodoService(store todo.Store, log zerolog.Logger) *TodoService {
	return &TodoService{
		store: store,
		log:   log.With().Str("component", "todo-service").Logger(),
	}
}

// Add constructs a new pending item for owner and persists it.
// dueDate may be empty for no due date.
func (s *TodoService) Add(ctx context.Context, owner, title, details string, priority todo.Priority, dueDate string) (todo.Item, error) {
	item := todo.New(title, details, priority, todo.StatusPending, owner)
	item.SetDueDate(dueDate)

	if err := s.store.Add(ctx, item); err != nil {
		return todo.Item{}, fmt.Errorf("add todo: %w", err)
	}

	s.log.Info().Str("id", item.ID).Str("owner", owner).Msg("todo added")
	return item, nil
}

// List returns owner's items newest first. Ordering is applied here in
// the presentation layer; the store hands items back in storage order.
func (s *TodoService) List(ctx context.Context, owner string) ([]todo.Item, error) {
	items, err := s.store.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})

	return items, nil
}

// Pending returns owner's pending items newest first.
func (s *TodoService) Pending(ctx context.Context, owner string) ([]todo.Item, error) {
	items, err := s.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	pending := items[:0]
	for _, item := range items {
		if item.Status == todo.StatusPending {
			pending = append(pending, item)
		}
	}

	return pending, nil
}

// Get returns a single item scoped to owner.
func (s *TodoService) Get(ctx context.Context, id, owner string) (todo.Item, error) {
	return s.store.Get(ctx, id, owner)
}

// Complete marks a pending item as completed and persists it.
func (s *TodoService) Complete(ctx context.Context, id, owner string) (todo.Item, error) {
	item, err := s.store.Get(ctx, id, owner)
	if err != nil {
		return todo.Item{}, err
	}

	if item.Status != todo.StatusPending {
		return todo.Item{}, ErrAlreadyCompleted
	}

	item.Status = todo.StatusCompleted
	item.Touch()

	if err := s.store.Update(ctx, item); err != nil {
		return todo.Item{}, fmt.Errorf("complete todo: %w", err)
	}

	s.log.Info().Str("id", item.ID).Msg("todo completed")
	return item, nil
}

// Save refreshes the item's updated_at and persists the mutation. The
// caller owns the field assignments; created_at and id never change here.
func (s *TodoService) Save(ctx context.Context, item todo.Item) (todo.Item, error) {
	item.Touch()

	if err := s.store.Update(ctx, item); err != nil {
		return todo.Item{}, err
	}

	s.log.Info().Str("id", item.ID).Msg("todo updated")
	return item, nil
}
