package books

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jlevert/bouquin/internal/catalog"
	"github.com/jlevert/bouquin/internal/config"
	"github.com/jlevert/bouquin/internal/fileutil"
	"github.com/jlevert/bouquin/internal/notes"
)

// writeBookToMarkdown renders one book (plus its comments) as a markdown
// note with YAML frontmatter and writes it under directory.
func writeBookToMarkdown(book catalog.Book, comments []catalog.Comment, directory string) error {
	filePath := fileutil.MarkdownFilePath(book.Name, directory)

	fm := notes.NewFrontmatter()
	fm.Set("title", book.Name)
	fm.Set("type", "book")
	fm.Set("catalog_id", book.ID)
	if book.Author != "" {
		fm.Set("author", book.Author)
	}
	if book.Editor != "" {
		fm.Set("editor", book.Editor)
	}
	if book.Year > 0 {
		fm.Set("year", book.Year)
	}
	fm.Set("theme", string(book.Theme))
	fm.Set("read", book.Read)
	fm.Set("favorite", book.Favorite)
	if book.Rating > 0 {
		fm.Set("rating", book.Rating)
	}
	if book.Cover != "" {
		fm.Set("cover", book.Cover)
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("# %s\n", book.Name))
	if book.Cover != "" {
		body.WriteString(fmt.Sprintf("\n![cover|250](%s)\n", book.Cover))
	}
	if len(comments) > 0 {
		body.WriteString("\n## Comments\n\n")
		for _, comment := range comments {
			body.WriteString(fmt.Sprintf("- %s (%s)\n", comment.Content, comment.DateISO))
		}
	}

	content, err := fm.Build(body.String())
	if err != nil {
		return fmt.Errorf("failed to build note for %q: %w", book.Name, err)
	}

	written, err := fileutil.WriteFileWithOverwrite(filePath, content, 0644, config.OverwriteFiles)
	if err != nil {
		return fmt.Errorf("failed to write note for %q: %w", book.Name, err)
	}
	if !written {
		slog.Debug("note already exists, skipping", "file", filePath)
	}
	return nil
}
