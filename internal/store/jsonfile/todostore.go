// Package jsonfile implements the todo and user stores over flat JSON
// documents. Each store owns a single file holding a top-level JSON array
// of records; every operation loads the whole array, works in memory, and
// writes the whole array back. Two processes writing concurrently will
// last-writer-win on the entire document; the mutex below only serializes
// callers within one process.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/colonyops/todos/internal/core/todo"
)

// TodoStore implements todo.Store using a JSON file for persistence.
type TodoStore struct {
	path string
	mu   sync.Mutex
}

var _ todo.Store = (*TodoStore)(nil)

// NewTodoStore creates a JSON file todo store at the given path. The
// backing file is created as an empty collection if it does not exist.
func NewTodoStore(path string) (*TodoStore, error) {
	if err := ensureDocument(path); err != nil {
		return nil, fmt.Errorf("init todo store: %w", err)
	}
	return &TodoStore{path: path}, nil
}

// Add appends the item to the collection.
func (s *TodoStore) Add(ctx context.Context, item todo.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	items = append(items, item)
	return s.save(items)
}

// ListByOwner returns all items belonging to owner, in storage order.
func (s *TodoStore) ListByOwner(ctx context.Context, owner string) ([]todo.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return nil, err
	}

	owned := make([]todo.Item, 0, len(items))
	for _, item := range items {
		if item.Owner == owner {
			owned = append(owned, item)
		}
	}

	return owned, nil
}

// Get returns the item with the given id. An id that exists under a
// different owner reports todo.ErrNotFound, same as an unknown id.
func (s *TodoStore) Get(ctx context.Context, id, owner string) (todo.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return todo.Item{}, err
	}

	for _, item := range items {
		if item.ID == id {
			if item.Owner != owner {
				return todo.Item{}, todo.ErrNotFound
			}
			return item, nil
		}
	}

	return todo.Item{}, todo.ErrNotFound
}

// Update replaces the stored record matching item.ID in place. The record
// keeps its position in the collection. Unknown ids and owner mismatches
// both report todo.ErrNotFound and leave the document untouched.
func (s *TodoStore) Update(ctx context.Context, item todo.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != item.ID {
			continue
		}
		if items[i].Owner != item.Owner {
			return todo.ErrNotFound
		}
		items[i] = item
		return s.save(items)
	}

	return todo.ErrNotFound
}

// load reads and decodes the whole collection. A decode failure on any
// record (e.g. an out-of-set priority) fails the entire pass.
func (s *TodoStore) load() ([]todo.Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read todos: %w", err)
	}

	if len(data) == 0 {
		return []todo.Item{}, nil
	}

	var items []todo.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	return items, nil
}

// save writes the whole collection back to disk atomically.
func (s *TodoStore) save(items []todo.Item) error {
	if items == nil {
		items = []todo.Item{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode todos: %w", err)
	}

	return writeDocument(s.path, data)
}

// ensureDocument creates path holding an empty JSON array unless it
// already exists.
func ensureDocument(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte("[]"), 0o644)
}

// writeDocument replaces path with data via a temp file and rename so a
// crash mid-write never leaves a half-written document behind.
func writeDocument(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
