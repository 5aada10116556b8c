package openlibrary

import (
	"context"
	"log/slog"

	"github.com/jlevert/bouquin/internal/catalog"
)

// Cover is the outcome of a cover resolution.
type Cover struct {
	// ISBN is the identifier the cover was derived from; empty when the book
	// carried a stored cover or no ISBN could be resolved.
	ISBN string
	// URL is the displayable image URL. Empty means the caller should show
	// its placeholder.
	URL string
	// Persisted is true when this resolution wrote the discovered cover back
	// to the catalog, so callers can refresh their in-memory copy without a
	// full reload.
	Persisted bool
}

// ResolveCover resolves a displayable cover for a book.
//
// A stored cover on the book short-circuits every lookup. Otherwise the ISBN
// is resolved and the cover service probed, both memoized. A cover discovered
// for a book that has none stored is written back to the catalog at most once
// per book per process; write-back failures are logged and swallowed since
// the resolved image is displayed regardless.
//
// Cancelling ctx aborts the resolution: the error return is non-nil only when
// the context ends, and a cancelled resolution performs no write-back.
func (r *Resolver) ResolveCover(ctx context.Context, book catalog.Book) (Cover, error) {
	if book.Cover != "" {
		return Cover{URL: book.Cover}, nil
	}

	isbn := r.ResolveISBN(ctx, book)
	if err := ctx.Err(); err != nil {
		return Cover{}, err
	}
	if isbn == "" {
		return Cover{}, nil
	}

	url, ok := r.memo.Cover(isbn)
	if !ok {
		url, _ = r.client.ProbeCover(ctx, isbn, CoverLarge)
		if err := ctx.Err(); err != nil {
			return Cover{}, err
		}
		r.memo.SetCover(isbn, url)
	}

	if url == "" {
		return Cover{ISBN: isbn}, nil
	}

	cover := Cover{ISBN: isbn, URL: url}
	if r.updater != nil && r.memo.MarkCoverWritten(book.ID) {
		if err := r.updater.UpdateCover(ctx, book.ID, url); err != nil {
			slog.Warn("failed to persist discovered cover", "book_id", book.ID, "error", err)
		} else {
			cover.Persisted = true
			slog.Debug("persisted discovered cover", "book_id", book.ID, "isbn", isbn)
		}
	}
	return cover, nil
}
