// Package validate provides shared validation functions for user input.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Username validates a username is non-empty after trimming whitespace.
func Username(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

// Password validates a password is non-empty.
func Password(pw string) error {
	if pw == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Title validates a todo title is non-empty after trimming whitespace.
// Enforced at the input boundary only; the entity itself accepts any title.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// UsernameField returns a criterio validator error for usernames.
func UsernameField(field, name string) error {
	return criterio.Run(field, name, Username)
}

// PasswordField returns a criterio validator error for passwords.
func PasswordField(field, pw string) error {
	return criterio.Run(field, pw, Password)
}

// TitleField returns a criterio validator error for todo titles.
func TitleField(field, title string) error {
	return criterio.Run(field, title, Title)
}
