package books

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jlevert/bouquin/internal/catalog"
)

// SyncCoversWithParams resolves a cover for every book missing one and
// persists the discoveries back to the catalog. Books that already carry a
// cover are left untouched.
func SyncCoversWithParams(ctx context.Context) error {
	client := newCatalogClient()
	books, err := client.ListBooks(ctx, catalog.ListOptions{})
	if err != nil {
		return err
	}

	resolver := newResolver(client)

	var missing, found, persisted int
	for _, book := range books {
		if book.Cover != "" {
			continue
		}
		missing++

		cover, err := resolver.ResolveCover(ctx, book)
		if err != nil {
			// Only context cancellation reaches here; stop the batch.
			return err
		}
		if cover.URL == "" {
			slog.Info("no cover found", "book", book.Name, "isbn", cover.ISBN)
			continue
		}
		found++
		if cover.Persisted {
			persisted++
			slog.Info("cover saved", "book", book.Name, "isbn", cover.ISBN)
		}
	}

	fmt.Fprintf(out, "Checked %d book(s) without a cover: %d cover(s) found, %d saved to the catalog\n",
		missing, found, persisted)
	return nil
}
