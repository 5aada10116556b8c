package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlevert/bouquin/internal/catalog"
	"github.com/jlevert/bouquin/internal/ratelimit"
)

// newTestClient builds a client against a test server with a limiter fast
// enough not to slow the suite down.
func newTestClient(serverURL string) *Client {
	c := NewClient(serverURL, serverURL)
	c.rateLimiter = ratelimit.New("test", 1000)
	c.limiterOnce.Do(func() {})
	return c
}

func TestResolveISBNDirectMatch(t *testing.T) {
	searchCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		searchCalls++
		require.Equal(t, "Dune", r.URL.Query().Get("title"))
		require.Equal(t, "Frank Herbert", r.URL.Query().Get("author"))
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"docs":[{"title":"Dune","isbn":["9780441013593"],"author_name":["Frank Herbert"]}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), NewMemoCache(), nil)
	book := catalog.Book{ID: 1, Name: "Dune", Author: "Frank Herbert"}

	require.Equal(t, "9780441013593", resolver.ResolveISBN(context.Background(), book))

	// Second resolution is answered from the cache, not the network.
	require.Equal(t, "9780441013593", resolver.ResolveISBN(context.Background(), book))
	require.Equal(t, 1, searchCalls)
}

func TestResolveISBNPrefersThirteenDigitCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs":[{"title":"Dune","isbn":["0441013597","9780441013593"],"author_name":["Frank Herbert"]}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), NewMemoCache(), nil)
	book := catalog.Book{ID: 1, Name: "Dune", Author: "Frank Herbert"}

	require.Equal(t, "9780441013593", resolver.ResolveISBN(context.Background(), book))
}

func TestResolveISBNFiltersByAuthor(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs":[
			{"title":"Dune","isbn":["1111111111"],"author_name":["Someone Else"]},
			{"title":"Dune","isbn":["2222222222"],"author_name":["frank herbert"]}
		]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), NewMemoCache(), nil)
	book := catalog.Book{ID: 1, Name: "Dune", Author: "Frank Herbert"}

	// Author matching is case-insensitive, so the second candidate wins.
	require.Equal(t, "2222222222", resolver.ResolveISBN(context.Background(), book))
}

func TestResolveISBNFallsBackToEditions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs":[{"title":"Dune","edition_key":["OL1M","OL2M"],"author_name":["Frank Herbert"]}]}`))
	})
	mux.HandleFunc("/api/books", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("bibkeys") {
		case "OLID:OL1M":
			_, _ = w.Write([]byte(`{"OLID:OL1M":{"identifiers":{}}}`))
		case "OLID:OL2M":
			_, _ = w.Write([]byte(`{"OLID:OL2M":{"identifiers":{"isbn_13":["9780441013593"],"isbn_10":["0441013597"]}}}`))
		default:
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), NewMemoCache(), nil)
	book := catalog.Book{ID: 1, Name: "Dune", Author: "Frank Herbert"}

	require.Equal(t, "9780441013593", resolver.ResolveISBN(context.Background(), book))
}

func TestResolveISBNEditionTenDigitFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs":[{"title":"Dune","edition_key":["OL3M"],"author_name":["Frank Herbert"]}]}`))
	})
	mux.HandleFunc("/api/books", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"OLID:OL3M":{"identifiers":{"isbn_10":["0441013597"]}}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), NewMemoCache(), nil)
	book := catalog.Book{ID: 1, Name: "Dune", Author: "Frank Herbert"}

	require.Equal(t, "0441013597", resolver.ResolveISBN(context.Background(), book))
}

func TestResolveISBNEmptyTitleSkipsNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty title")
	}))
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), NewMemoCache(), nil)

	require.Equal(t, "", resolver.ResolveISBN(context.Background(), catalog.Book{ID: 1, Name: "   "}))
}

func TestResolveISBNNoUsableCandidate(t *testing.T) {
	searchCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		searchCalls++
		_, _ = w.Write([]byte(`{"docs":[]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), NewMemoCache(), nil)
	book := catalog.Book{ID: 2, Name: "Inconnu", Author: "Personne"}

	require.Equal(t, "", resolver.ResolveISBN(context.Background(), book))
	// "None found" is memoized too.
	require.Equal(t, "", resolver.ResolveISBN(context.Background(), book))
	require.Equal(t, 1, searchCalls)
}

func TestResolveISBNTransportFailureMemoizedAsAbsent(t *testing.T) {
	searchCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		searchCalls++
		http.Error(w, "down", http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), NewMemoCache(), nil)
	book := catalog.Book{ID: 3, Name: "Dune", Author: "Frank Herbert"}

	require.Equal(t, "", resolver.ResolveISBN(context.Background(), book))
	// A failed attempt is final for the process lifetime.
	require.Equal(t, "", resolver.ResolveISBN(context.Background(), book))
	require.Equal(t, 1, searchCalls)
}

func TestResolveISBNCancellationIsNotMemoized(t *testing.T) {
	searchCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		searchCalls++
		_, _ = w.Write([]byte(`{"docs":[{"title":"Dune","isbn":["9780441013593"],"author_name":["Frank Herbert"]}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), NewMemoCache(), nil)
	book := catalog.Book{ID: 4, Name: "Dune", Author: "Frank Herbert"}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, "", resolver.ResolveISBN(cancelled, book))

	// The identity can still resolve once the caller comes back with a live
	// context.
	require.Equal(t, "9780441013593", resolver.ResolveISBN(context.Background(), book))
}
