package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dune", "Dune"},
		{"Fahrenheit 451: roman", "Fahrenheit 451 - roman"},
		{"Le Rouge/Le Noir", "Le Rouge-Le Noir"},
		{`Back\slash`, "Back-slash"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SanitizeFilename(tt.in))
	}
}

func TestMarkdownFilePath(t *testing.T) {
	got := MarkdownFilePath("Dune: Messiah", "/tmp/out")
	require.Equal(t, filepath.Join("/tmp/out", "Dune - Messiah.md"), got)
}

func TestWriteFileWithOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "a.md")

	written, err := WriteFileWithOverwrite(path, []byte("one"), 0644, false)
	require.NoError(t, err)
	require.True(t, written)

	// Existing file is skipped without overwrite.
	written, err = WriteFileWithOverwrite(path, []byte("two"), 0644, false)
	require.NoError(t, err)
	require.False(t, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one", string(content))

	written, err = WriteFileWithOverwrite(path, []byte("two"), 0644, true)
	require.NoError(t, err)
	require.True(t, written)
}

func TestWriteJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.json")

	written, err := WriteJSONFile(map[string]int{"count": 3}, path, true)
	require.NoError(t, err)
	require.True(t, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), `"count": 3`)
}
