package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginState(t *testing.T) {
	t.Run("empty when never logged in", func(t *testing.T) {
		state := NewLoginState(t.TempDir())

		got, err := state.Load()
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("save and load", func(t *testing.T) {
		state := NewLoginState(t.TempDir())

		require.NoError(t, state.Save("alice"))

		got, err := state.Load()
		require.NoError(t, err)
		assert.Equal(t, "alice", got)
	})

	t.Run("clear", func(t *testing.T) {
		state := NewLoginState(t.TempDir())

		require.NoError(t, state.Save("alice"))
		require.NoError(t, state.Clear())

		got, err := state.Load()
		require.NoError(t, err)
		assert.Empty(t, got)

		// Clearing twice is fine.
		require.NoError(t, state.Clear())
	})
}
