package openlibrary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jlevert/bouquin/internal/catalog"
)

// CoverUpdater persists a discovered cover URL on a catalog book. Implemented
// by catalog.Client; narrowed to an interface so tests can observe writes.
type CoverUpdater interface {
	UpdateCover(ctx context.Context, bookID int, coverURL string) error
}

// Resolver maps catalog books to ISBNs and cover images, memoizing every
// outcome for the process lifetime. Resolution is best-effort: covers are
// cosmetic, so lookup failures degrade to "absent" instead of propagating.
type Resolver struct {
	client  *Client
	memo    *MemoCache
	updater CoverUpdater
}

// NewResolver creates a resolver around an OpenLibrary client, a shared memo
// cache and the catalog write-back target. updater may be nil, which
// disables cover persistence.
func NewResolver(client *Client, memo *MemoCache, updater CoverUpdater) *Resolver {
	return &Resolver{
		client:  client,
		memo:    memo,
		updater: updater,
	}
}

// ResolveISBN finds a best-guess ISBN for a book's title and author. It
// returns empty when the title is blank, when no candidate yields a usable
// ISBN, or when the search fails — and memoizes all three outcomes, so a
// book is looked up at most once per process.
func (r *Resolver) ResolveISBN(ctx context.Context, book catalog.Book) string {
	title := strings.TrimSpace(book.Name)
	if title == "" {
		return ""
	}

	if isbn, ok := r.memo.ISBN(book); ok {
		return isbn
	}

	isbn, err := r.searchISBN(ctx, title, book.Author)
	if err != nil {
		if ctx.Err() != nil {
			// The caller moved on; don't let a cancellation poison the cache.
			return ""
		}
		slog.Debug("ISBN lookup failed", "book", book.Name, "error", err)
		isbn = ""
	}

	r.memo.SetISBN(book, isbn)
	return isbn
}

func (r *Resolver) searchISBN(ctx context.Context, title, author string) (string, error) {
	docs, err := r.client.Search(ctx, title, author)
	if err != nil {
		return "", err
	}

	for _, doc := range docs {
		if author != "" && !hasAuthor(doc, author) {
			continue
		}
		if isbn := r.isbnForDoc(ctx, doc); isbn != "" {
			return isbn, nil
		}
	}
	return "", nil
}

// isbnForDoc extracts a usable ISBN from a candidate document: a direct ISBN
// when the document carries one, otherwise the first edition that has an
// identifier.
func (r *Resolver) isbnForDoc(ctx context.Context, doc SearchDoc) string {
	if len(doc.ISBN) > 0 {
		return pickISBN(doc.ISBN)
	}

	for _, key := range doc.EditionKey {
		isbn, err := r.client.EditionISBN(ctx, key)
		if err != nil {
			if ctx.Err() != nil {
				return ""
			}
			slog.Debug("edition lookup failed", "edition_key", key, "error", err)
			continue
		}
		if isbn != "" {
			return isbn
		}
	}
	return ""
}

// hasAuthor reports whether the document lists the given author,
// case-insensitively.
func hasAuthor(doc SearchDoc, author string) bool {
	for _, name := range doc.AuthorName {
		if strings.EqualFold(name, author) {
			return true
		}
	}
	return false
}

// pickISBN prefers a 13-digit code, falling back to the first one listed.
func pickISBN(codes []string) string {
	for _, code := range codes {
		if digitCount(code) == 13 {
			return code
		}
	}
	return codes[0]
}

func digitCount(code string) int {
	n := 0
	for _, r := range code {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
