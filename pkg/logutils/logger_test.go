package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		_, _, err := New("loud", "")
		require.Error(t, err)
	})

	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "todos.log")

		logger, closer, err := New("debug", path)
		require.NoError(t, err)

		logger.Info().Str("op", "test").Msg("hello")
		closer()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"op":"test"`)
	})

	t.Run("appends across invocations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todos.log")

		for range 2 {
			logger, closer, err := New("info", path)
			require.NoError(t, err)
			logger.Info().Msg("run")
			closer()
		}

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, countLines(data))
	})
}

func countLines(data []byte) int {
	n := 0
	for _, b := range data {
		if b == '\n' {
			n++
		}
	}
	return n
}
