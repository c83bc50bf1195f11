package todos

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/todos/internal/core/user"
	"github.com/colonyops/todos/internal/core/validate"
)

// ErrNotLoggedIn is returned by operations that need a current user when
// no login session exists.
var ErrNotLoggedIn = errors.New("not logged in")

// SessionStore persists the current username between invocations.
type SessionStore interface {
	Save(username string) error
	Load() (string, error)
	Clear() error
}

// AuthService handles registration, login, and the login session.
type AuthService struct {
	users   user.Store
	session SessionStore
	log     zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users user.Store, session SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		session: session,
		log:     log.With().Str("component", "auth-service").Logger(),
	}
}

// Register creates a new account. Username and password must be non-empty;
// duplicate usernames are rejected with user.ErrExists.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if err := validate.UsernameField("username", username); err != nil {
		return err
	}
	if err := validate.PasswordField("password", password); err != nil {
		return err
	}

	if err := s.users.Create(ctx, user.User{Username: username, Password: password}); err != nil {
		return err
	}

	s.log.Info().Str("username", username).Msg("account registered")
	return nil
}

// Login authenticates and records the username as the current user.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	if err := s.users.Authenticate(ctx, username, password); err != nil {
		s.log.Warn().Str("username", username).Msg("login failed")
		return err
	}

	if err := s.session.Save(username); err != nil {
		return fmt.Errorf("save login session: %w", err)
	}

	s.log.Info().Str("username", username).Msg("logged in")
	return nil
}

// Logout clears the login session. Logging out while not logged in is
// not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	username, _ := s.session.Load()
	if err := s.session.Clear(); err != nil {
		return fmt.Errorf("clear login session: %w", err)
	}

	if username != "" {
		s.log.Info().Str("username", username).Msg("logged out")
	}
	return nil
}

// CurrentUser returns the logged-in username, or ErrNotLoggedIn.
func (s *AuthService) CurrentUser() (string, error) {
	username, err := s.session.Load()
	if err != nil {
		return "", fmt.Errorf("load login session: %w", err)
	}
	if username == "" {
		return "", ErrNotLoggedIn
	}
	return username, nil
}
