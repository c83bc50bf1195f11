// Package todo defines the todo item domain model and its storage codec.
package todo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the format used for created_at, updated_at, and due
// dates. It is ISO-8601-like, microsecond precision, and sorts
// lexicographically.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// now is swapped in tests to make timestamps deterministic.
var now = func() string { return time.Now().Format(TimestampLayout) }

// Priority ranks how urgent an item is.
type Priority string

const (
	PriorityHigh Priority = "HIGH"
	PriorityMid  Priority = "MID"
	PriorityLow  Priority = "LOW"
)

// Priorities lists all valid priority values in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMid, PriorityLow}
}

// IsValid reports whether the priority is a member of the closed set.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMid, PriorityLow:
		return true
	}
	return false
}

// ParsePriority converts a stored string into a Priority.
// Unknown values are an error, never coerced.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority %q: must be one of HIGH, MID, LOW", s)
	}
	return p, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so JSON decoding of a
// record fails on out-of-set values.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Status represents the lifecycle state of an item.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// Statuses lists all valid status values.
func Statuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid reports whether the status is a member of the closed set.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts a stored string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status %q: must be one of PENDING, COMPLETED", s)
	}
	return st, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Item represents a single task belonging to exactly one user.
//
// CreatedAt is fixed at construction and never changes. UpdatedAt is the
// caller's responsibility: the store persists whatever value the item
// carries, so mutators must call Touch before saving. DueDate is nil when
// no due date is set; the due_date key is then omitted from the stored
// record entirely, which is what distinguishes "no due date" from an
// empty value on disk.
type Item struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Details   string   `json:"details"`
	Priority  Priority `json:"priority"`
	Status    Status   `json:"status"`
	Owner     string   `json:"owner"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	DueDate   *string  `json:"due_date,omitempty"`
}

// New constructs an item with a fresh random ID and both timestamps set to
// the current time. Title and details are stored as given; the CLI layer
// decides what input to accept.
func New(title, details string, priority Priority, status Status, owner string) Item {
	ts := now()
	return Item{
		ID:        uuid.NewString(),
		Title:     title,
		Details:   details,
		Priority:  priority,
		Status:    status,
		Owner:     owner,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// Touch refreshes UpdatedAt. Callers mutate fields, Touch, then hand the
// item to Store.Update; the store itself never rewrites timestamps.
func (i *Item) Touch() {
	i.UpdatedAt = now()
}

// SetDueDate assigns a due date. An empty string clears it, so the
// due_date key is omitted from the stored record again.
func (i *Item) SetDueDate(date string) {
	if date == "" {
		i.DueDate = nil
		return
	}
	i.DueDate = &date
}
