package commands

import (
	"errors"
	"fmt"

	"github.com/colonyops/todos/internal/todos"
)

// requireUser resolves the current session user for owner-scoped commands.
func requireUser(app *todos.App) (string, error) {
	current, err := app.Auth.CurrentUser()
	if errors.Is(err, todos.ErrNotLoggedIn) {
		return "", fmt.Errorf("not logged in; run 'todos login' first")
	}
	return current, err
}
