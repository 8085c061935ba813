package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// breakBackingFile swaps a store's backing file for a directory so every
// subsequent write to that path fails.
func breakBackingFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.RemoveAll(path))
	require.NoError(t, os.Mkdir(path, 0o755))
}
