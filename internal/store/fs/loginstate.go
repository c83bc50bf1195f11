// Package fs holds small plain-file stores that are not JSON documents.
package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// LoginState persists the currently logged-in username between CLI
// invocations. It is a plain text file under the data directory; it
// carries no secret beyond the username, consistent with the plaintext
// credential posture of the users document.
type LoginState struct {
	path string
}

// NewLoginState creates a login state store rooted at dataDir.
func NewLoginState(dataDir string) *LoginState {
	return &LoginState{path: filepath.Join(dataDir, "session")}
}

// Save records username as the current user.
func (s *LoginState) Save(username string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(username+"\n"), 0o600)
}

// Load returns the current username, or "" when nobody is logged in.
func (s *LoginState) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear logs the current user out.
func (s *LoginState) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
