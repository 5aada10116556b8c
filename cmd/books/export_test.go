package books

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func exportCatalogMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/books", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Dune","author":"Frank Herbert","editor":"Ace","year":1965,"read":true,"favorite":true,"rating":5,"cover":"https://example.com/dune.jpg","theme":"Science-Fiction"}]`))
	})
	mux.HandleFunc("/books/1/notes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"bookId":1,"content":"superbe","dateISO":"2025-04-01T10:00:00Z"}]`))
	})
	return mux
}

func TestExportWritesMarkdownNotes(t *testing.T) {
	setupServers(t, exportCatalogMux(t), nil)
	captureOutput(t)

	baseDir := t.TempDir()
	viper.Set("markdownoutputdir", baseDir)

	err := ExportWithParams(context.Background(), ExportOptions{OutputDir: "books"})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(baseDir, "books", "Dune.md"))
	require.NoError(t, err)

	note := string(content)
	require.Contains(t, note, "title: Dune")
	require.Contains(t, note, "author: Frank Herbert")
	require.Contains(t, note, "theme: Science-Fiction")
	require.Contains(t, note, "read: true")
	require.Contains(t, note, "## Comments")
	require.Contains(t, note, "superbe")
}

func TestExportWritesJSONAndSQLite(t *testing.T) {
	setupServers(t, exportCatalogMux(t), nil)
	buf := captureOutput(t)

	baseDir := t.TempDir()
	viper.Set("markdownoutputdir", baseDir)
	jsonPath := filepath.Join(baseDir, "books.json")
	dbPath := filepath.Join(baseDir, "bouquin.db")

	err := ExportWithParams(context.Background(), ExportOptions{
		OutputDir:   "books",
		JSON:        true,
		JSONOutput:  jsonPath,
		Datasette:   true,
		DatasetteDB: dbPath,
	})
	require.NoError(t, err)

	jsonContent, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.Contains(t, string(jsonContent), `"name": "Dune"`)

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	require.NotZero(t, info.Size())

	require.Contains(t, buf.String(), "Exported 1 book(s)")
}
