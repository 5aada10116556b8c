package books

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jlevert/bouquin/internal/catalog"
	"github.com/jlevert/bouquin/internal/datastore"
)

// ExportOptions selects the export targets.
type ExportOptions struct {
	// OutputDir is the subdirectory under the markdown output directory.
	OutputDir string
	// JSON enables JSON output; JSONOutput overrides its path.
	JSON       bool
	JSONOutput string
	// Datasette enables SQLite output to DatasetteDB.
	Datasette   bool
	DatasetteDB string
}

// ExportWithParams fetches the full catalog and writes it as markdown notes,
// and optionally JSON and a Datasette-ready SQLite database.
func ExportWithParams(ctx context.Context, opts ExportOptions) error {
	client := newCatalogClient()
	books, err := client.ListBooks(ctx, catalog.ListOptions{})
	if err != nil {
		return err
	}

	commentsByBook := make(map[int][]catalog.Comment, len(books))
	for _, book := range books {
		comments, err := client.ListComments(ctx, book.ID)
		if err != nil {
			return err
		}
		commentsByBook[book.ID] = comments
	}

	outputDir := resolveOutputDir(opts.OutputDir)
	for _, book := range books {
		if err := writeBookToMarkdown(book, commentsByBook[book.ID], outputDir); err != nil {
			return err
		}
	}
	slog.Info("Markdown export complete", "directory", outputDir, "books", len(books))

	if opts.JSON {
		jsonOutput := opts.JSONOutput
		if jsonOutput == "" {
			jsonBaseDir := viper.GetString("jsonoutputdir")
			if jsonBaseDir == "" {
				jsonBaseDir = "json"
			}
			jsonOutput = filepath.Join(jsonBaseDir, "books.json")
		}
		if err := writeBooksToJSON(books, jsonOutput); err != nil {
			return err
		}
	}

	if opts.Datasette {
		if err := exportToSQLite(books, commentsByBook, opts.DatasetteDB); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Exported %d book(s)\n", len(books))
	return nil
}

// resolveOutputDir combines the configured markdown base directory with the
// requested subdirectory.
func resolveOutputDir(subdir string) string {
	if subdir == "" {
		subdir = "books"
	}
	baseDir := viper.GetString("markdownoutputdir")
	if baseDir == "" {
		baseDir = "markdown"
	}
	return filepath.Clean(filepath.Join(baseDir, subdir))
}

func exportToSQLite(books []catalog.Book, commentsByBook map[int][]catalog.Comment, dbPath string) error {
	if dbPath == "" {
		dbPath = "./bouquin.db"
	}

	store := datastore.NewSQLiteStore(dbPath)
	if err := store.Connect(); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	for _, schema := range []string{datastore.BooksSchema, datastore.CommentsSchema} {
		if err := store.CreateTable(schema); err != nil {
			return err
		}
	}

	bookRecords := make([]map[string]any, 0, len(books))
	var commentRecords []map[string]any
	for _, book := range books {
		bookRecords = append(bookRecords, datastore.Record(book))
		for _, comment := range commentsByBook[book.ID] {
			commentRecords = append(commentRecords, datastore.Record(comment))
		}
	}

	if err := store.ReplaceAll("books", bookRecords); err != nil {
		return err
	}
	if err := store.ReplaceAll("comments", commentRecords); err != nil {
		return err
	}

	slog.Info("SQLite export complete", "dbfile", dbPath, "books", len(bookRecords), "comments", len(commentRecords))
	return nil
}
