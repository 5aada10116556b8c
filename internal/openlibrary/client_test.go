package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/require"
)

func TestCoverURL(t *testing.T) {
	client := NewClient("", "")

	assert.Equal(t,
		"https://covers.openlibrary.org/b/isbn/9780441013593-L.jpg?default=false",
		client.CoverURL("9780441013593", CoverLarge))

	// Size defaults to large.
	assert.Equal(t,
		"https://covers.openlibrary.org/b/isbn/9780441013593-L.jpg?default=false",
		client.CoverURL("9780441013593", ""))

	assert.Equal(t,
		"https://covers.openlibrary.org/b/isbn/12345-S.jpg?default=false",
		client.CoverURL("12345", CoverSmall))
}

func TestSearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), "Dune", "")
	require.Error(t, err)
}

func TestEditionISBNMissingKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	isbn, err := client.EditionISBN(context.Background(), "OL9M")
	require.NoError(t, err)
	require.Empty(t, isbn)
}

func TestMemoCacheMarkCoverWritten(t *testing.T) {
	memo := NewMemoCache()

	assert.True(t, memo.MarkCoverWritten(7))
	assert.False(t, memo.MarkCoverWritten(7))
	assert.True(t, memo.MarkCoverWritten(8))
}
