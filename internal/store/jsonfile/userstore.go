package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/colonyops/todos/internal/core/user"
)

// UserStore implements user.Store using a JSON file for persistence.
// Same whole-document pattern as TodoStore: the file holds a top-level
// array of account records.
type UserStore struct {
	path string
	mu   sync.Mutex
}

var _ user.Store = (*UserStore)(nil)

// NewUserStore creates a JSON file user store at the given path, creating
// the backing file as an empty collection if needed.
func NewUserStore(path string) (*UserStore, error) {
	if err := ensureDocument(path); err != nil {
		return nil, fmt.Errorf("init user store: %w", err)
	}
	return &UserStore{path: path}, nil
}

// Create registers a new account. Usernames are unique; passwords are not.
func (s *UserStore) Create(ctx context.Context, u user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	for _, existing := range users {
		if existing.Username == u.Username {
			return user.ErrExists
		}
	}

	users = append(users, u)
	return s.save(users)
}

// Authenticate byte-compares the stored plaintext password.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Username == username && u.Password == password {
			return nil
		}
	}

	return user.ErrInvalidCredentials
}

// Exists reports whether a username is registered.
func (s *UserStore) Exists(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return false, err
	}

	for _, u := range users {
		if u.Username == username {
			return true, nil
		}
	}

	return false, nil
}

func (s *UserStore) load() ([]user.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	if len(data) == 0 {
		return []user.User{}, nil
	}

	var users []user.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (s *UserStore) save(users []user.User) error {
	if users == nil {
		users = []user.User{}
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}

	return writeDocument(s.path, data)
}
