package openlibrary

import (
	"fmt"
	"sync"

	"github.com/jlevert/bouquin/internal/catalog"
)

// MemoCache memoizes resolution outcomes for the lifetime of the process.
// Entries are never evicted: the catalog is small and entries are cheap.
//
// Three things are remembered:
//   - resolved ISBNs per bibliographic identity (empty string means the
//     search came up empty, or failed — both are final for this process)
//   - cover URLs per ISBN (empty string means the probe found nothing)
//   - book ids whose discovered cover has already been written back to the
//     catalog, so the write-back happens at most once per book per process
type MemoCache struct {
	mu          sync.Mutex
	isbns       map[string]string
	covers      map[string]string
	coverWrites map[int]bool
}

// NewMemoCache creates an empty memoization cache. Construct one at
// application start and share it between resolvers.
func NewMemoCache() *MemoCache {
	return &MemoCache{
		isbns:       make(map[string]string),
		covers:      make(map[string]string),
		coverWrites: make(map[int]bool),
	}
}

// isbnKey is the composite bibliographic identity of a book as currently
// known to the caller. A renamed book resolves independently of its old name.
func isbnKey(book catalog.Book) string {
	return fmt.Sprintf("%d:%s:%s", book.ID, book.Name, book.Author)
}

// ISBN returns the memoized ISBN for a book. ok distinguishes "never
// resolved" from a memoized empty result.
func (m *MemoCache) ISBN(book catalog.Book) (isbn string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	isbn, ok = m.isbns[isbnKey(book)]
	return isbn, ok
}

// SetISBN memoizes the resolution outcome for a book, including the empty
// "none found" sentinel.
func (m *MemoCache) SetISBN(book catalog.Book, isbn string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isbns[isbnKey(book)] = isbn
}

// Cover returns the memoized cover URL for an ISBN. ok distinguishes "never
// probed" from a memoized "not found" (empty url).
func (m *MemoCache) Cover(isbn string) (url string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	url, ok = m.covers[isbn]
	return url, ok
}

// SetCover memoizes the probe outcome for an ISBN, including the empty
// "not found" sentinel.
func (m *MemoCache) SetCover(isbn, url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.covers[isbn] = url
}

// MarkCoverWritten records that a cover write-back has been attempted for a
// book id. It returns true the first time only, so callers can guard the
// write with a single test-and-set.
func (m *MemoCache) MarkCoverWritten(bookID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.coverWrites[bookID] {
		return false
	}
	m.coverWrites[bookID] = true
	return true
}
