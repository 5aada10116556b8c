// Package books implements the bouquin commands against the catalog API and
// the OpenLibrary resolvers.
package books

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jlevert/bouquin/internal/catalog"
	"github.com/jlevert/bouquin/internal/config"
	"github.com/jlevert/bouquin/internal/openlibrary"
)

// out is the destination for command output, swappable in tests.
var out io.Writer = os.Stdout

// Factories are vars so tests can substitute fakes.
var (
	newCatalogClient = func() *catalog.Client {
		return catalog.NewClient(config.CatalogBaseURL)
	}
	newOpenLibraryClient = func() *openlibrary.Client {
		return openlibrary.NewClient(config.OpenLibraryBaseURL, config.CoversBaseURL)
	}
)

// The memo cache is process-wide: every command run in this process shares
// resolution outcomes, and a restart clears them.
var (
	memoOnce   sync.Once
	sharedMemo *openlibrary.MemoCache
)

func memoCache() *openlibrary.MemoCache {
	memoOnce.Do(func() {
		sharedMemo = openlibrary.NewMemoCache()
	})
	return sharedMemo
}

// resetForTesting clears the shared state between tests.
func resetForTesting() {
	memoOnce = sync.Once{}
	sharedMemo = nil
}

func newResolver(updater openlibrary.CoverUpdater) *openlibrary.Resolver {
	return openlibrary.NewResolver(newOpenLibraryClient(), memoCache(), updater)
}

// ListBooksWithParams fetches and prints the books matching the given
// filter/sort/search options.
func ListBooksWithParams(ctx context.Context, opts catalog.ListOptions) error {
	client := newCatalogClient()
	books, err := client.ListBooks(ctx, opts)
	if err != nil {
		return err
	}
	renderBookList(out, books)
	return nil
}

// ShowBookWithParams prints a single book with its resolved ISBN, cover and
// comments.
func ShowBookWithParams(ctx context.Context, id int) error {
	client := newCatalogClient()
	book, err := client.GetBook(ctx, id)
	if err != nil {
		return err
	}

	resolver := newResolver(client)
	cover, err := resolver.ResolveCover(ctx, *book)
	if err != nil {
		return err
	}
	if cover.Persisted {
		book.Cover = cover.URL
	}
	isbn := cover.ISBN
	if book.Cover != "" && isbn == "" {
		// The stored cover short-circuits resolution; the ISBN is still
		// worth showing as metadata.
		isbn = resolver.ResolveISBN(ctx, *book)
	}

	comments, err := client.ListComments(ctx, id)
	if err != nil {
		return err
	}

	renderBookDetail(out, *book, isbn, cover)
	renderComments(out, comments)
	return nil
}

// AddBookWithParams creates a book and prints the created record.
func AddBookWithParams(ctx context.Context, draft catalog.BookDraft) error {
	client := newCatalogClient()
	book, err := client.CreateBook(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Added book %d: %s\n", book.ID, book.Name)
	return nil
}

// UpdateBookWithParams applies a partial update and prints the result.
func UpdateBookWithParams(ctx context.Context, id int, update catalog.BookUpdate) error {
	if update.IsEmpty() {
		return errors.New("nothing to update: pass at least one field")
	}
	client := newCatalogClient()
	book, err := client.UpdateBook(ctx, id, update)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated book %d: %s\n", book.ID, book.Name)
	return nil
}

// RateBookWithParams sets a book's rating.
func RateBookWithParams(ctx context.Context, id, rating int) error {
	return UpdateBookWithParams(ctx, id, catalog.BookUpdate{Rating: &rating})
}

// DeleteBookWithParams removes a book from the catalog.
func DeleteBookWithParams(ctx context.Context, id int) error {
	client := newCatalogClient()
	if err := client.DeleteBook(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted book %d\n", id)
	return nil
}

// ListCommentsWithParams prints the comments attached to a book.
func ListCommentsWithParams(ctx context.Context, bookID int) error {
	client := newCatalogClient()
	comments, err := client.ListComments(ctx, bookID)
	if err != nil {
		return err
	}
	renderComments(out, comments)
	return nil
}

// AddCommentWithParams appends a comment to a book. Content must be
// non-empty after trimming; that rule is enforced here, not in the client.
func AddCommentWithParams(ctx context.Context, bookID int, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.New("comment content cannot be empty")
	}
	client := newCatalogClient()
	comment, err := client.AddComment(ctx, bookID, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Added comment %d to book %d\n", comment.ID, bookID)
	return nil
}

// StatsWithParams prints the aggregate reading statistics.
func StatsWithParams(ctx context.Context) error {
	client := newCatalogClient()
	stats, err := client.GetStatistics(ctx)
	if err != nil {
		return err
	}
	renderStats(out, *stats)
	return nil
}
