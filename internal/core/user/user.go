// Package user defines the account domain model.
//
// Credentials are stored and compared as plaintext. This matches the
// persisted users document contract and is a documented limitation, not an
// oversight; hashing would change the on-disk format.
package user

import (
	"context"
	"errors"
)

var (
	// ErrExists is returned when registering a username that is taken.
	ErrExists = errors.New("username already exists")
	// ErrInvalidCredentials is returned when a login attempt fails. It does
	// not reveal whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// User is one registered account.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Store defines the interface for account persistence.
type Store interface {
	// Create registers a new account. Returns ErrExists when the username
	// is already taken. Uniqueness is enforced on username only.
	Create(ctx context.Context, u User) error

	// Authenticate checks a username/password pair. Returns
	// ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, username, password string) error

	// Exists reports whether a username is registered.
	Exists(ctx context.Context, username string) (bool, error)
}
