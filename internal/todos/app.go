// Package todos wires the domain stores into the application services the
// CLI consumes.
package todos

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/todos/internal/core/config"
	"github.com/colonyops/todos/internal/core/todo"
	"github.com/colonyops/todos/internal/core/user"
)

// App is the central entry point for all operations. Commands consume App
// instead of cherry-picking raw dependencies.
type App struct {
	Auth  *AuthService
	Todos *TodoService

	Config *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(
	users user.Store,
	todoStore todo.Store,
	session SessionStore,
	cfg *config.Config,
	log zerolog.Logger,
) *App {
	return &App{
		Auth:   NewAuthService(users, session, log),
		Todos:  NewTodoService(todoStore, log),
		Config: cfg,
	}
}
