// Package openlibrary resolves book covers through the OpenLibrary
// bibliographic and cover services: title/author to ISBN, ISBN to cover URL.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jlevert/bouquin/internal/ratelimit"
)

const (
	// DefaultBaseURL is the OpenLibrary API host.
	DefaultBaseURL = "https://openlibrary.org"
	// DefaultCoversBaseURL is the OpenLibrary cover image host.
	DefaultCoversBaseURL = "https://covers.openlibrary.org"

	// searchLimit caps the number of candidate documents per search.
	searchLimit = 10
)

// CoverSize selects the cover image variant to probe.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// Client talks to the OpenLibrary search, edition and cover endpoints.
type Client struct {
	baseURL       string
	coversBaseURL string

	httpClient  *http.Client
	rateLimiter *ratelimit.Limiter
	clientOnce  sync.Once
	limiterOnce sync.Once
}

// NewClient creates an OpenLibrary client. Empty URLs fall back to the
// public hosts.
func NewClient(baseURL, coversBaseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if coversBaseURL == "" {
		coversBaseURL = DefaultCoversBaseURL
	}
	return &Client{
		baseURL:       baseURL,
		coversBaseURL: coversBaseURL,
	}
}

// Search queries the search endpoint for candidate documents matching the
// given title and optional author.
func (c *Client) Search(ctx context.Context, title, author string) ([]SearchDoc, error) {
	if err := c.getRateLimiter().Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("title", title)
	if author != "" {
		params.Set("author", author)
	}
	params.Set("fields", "title,isbn,edition_key,author_name")
	params.Set("limit", fmt.Sprintf("%d", searchLimit))

	endpoint := fmt.Sprintf("%s/search.json?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenLibrary search failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenLibrary search returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return result.Docs, nil
}

// EditionISBN fetches the per-edition detail record for an OLID edition key
// and returns its ISBN, preferring the 13-digit identifier over the 10-digit
// one. Returns empty when the edition carries neither.
func (c *Client) EditionISBN(ctx context.Context, editionKey string) (string, error) {
	if err := c.getRateLimiter().Wait(ctx); err != nil {
		return "", err
	}

	bibkey := "OLID:" + editionKey
	endpoint := fmt.Sprintf("%s/api/books?bibkeys=%s&format=json&jscmd=data", c.baseURL, url.QueryEscape(bibkey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create edition request: %w", err)
	}

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("edition request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("edition request returned status %d", resp.StatusCode)
	}

	var result map[string]editionData
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode edition response: %w", err)
	}

	edition, ok := result[bibkey]
	if !ok {
		return "", nil
	}
	if len(edition.Identifiers.ISBN13) > 0 {
		return edition.Identifiers.ISBN13[0], nil
	}
	if len(edition.Identifiers.ISBN10) > 0 {
		return edition.Identifiers.ISBN10[0], nil
	}
	return "", nil
}

// CoverURL builds the deterministic cover image URL for an ISBN.
// default=false makes the covers service answer non-2xx instead of serving a
// placeholder, so existence can be probed by request success.
func (c *Client) CoverURL(isbn string, size CoverSize) string {
	if size == "" {
		size = CoverLarge
	}
	return fmt.Sprintf("%s/b/isbn/%s-%s.jpg?default=false", c.coversBaseURL, isbn, size)
}

// ProbeCover checks whether a cover image exists for the ISBN. It returns the
// image URL and true on success, empty and false otherwise.
func (c *Client) ProbeCover(ctx context.Context, isbn string, size CoverSize) (string, bool) {
	coverURL := c.CoverURL(isbn, size)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		return "", false
	}

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return "", false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false
	}
	return coverURL, true
}

func (c *Client) getHTTPClient() *http.Client {
	c.clientOnce.Do(func() {
		c.httpClient = &http.Client{Timeout: 10 * time.Second}
	})
	return c.httpClient
}

func (c *Client) getRateLimiter() *ratelimit.Limiter {
	c.limiterOnce.Do(func() {
		c.rateLimiter = ratelimit.New("OpenLibrary", 1)
	})
	return c.rateLimiter
}
