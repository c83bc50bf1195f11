package iojson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWith(&buf, map[string]string{"id": "abc"}))
	assert.Equal(t, "{\n  \"id\": \"abc\"\n}\n", buf.String())
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]string{"id": "abc"}))
	require.NoError(t, WriteLine(&buf, map[string]string{"id": "def"}))
	assert.Equal(t, "{\"id\":\"abc\"}\n{\"id\":\"def\"}\n", buf.String())
}
