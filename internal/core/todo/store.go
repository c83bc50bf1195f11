package todo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an item does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable so one
// user cannot probe for another user's item ids.
var ErrNotFound = errors.New("todo item not found")

// Store defines the interface for todo item persistence.
type Store interface {
	// Add persists a new item. The item is stored exactly as given; the
	// store generates nothing.
	Add(ctx context.Context, item Item) error

	// ListByOwner returns every item belonging to owner, in storage order.
	// Presentation ordering (e.g. newest first) is the caller's concern.
	ListByOwner(ctx context.Context, owner string) ([]Item, error)

	// Get returns the item with the given id. Returns ErrNotFound when no
	// such item exists or when it belongs to a different owner.
	Get(ctx context.Context, id, owner string) (Item, error)

	// Update replaces the stored record matching item.ID in place,
	// preserving its position in the collection. Returns ErrNotFound when
	// the id is unknown or the stored record's owner differs from
	// item.Owner.
	Update(ctx context.Context, item Item) error
}
