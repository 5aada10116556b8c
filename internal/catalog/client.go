// Package catalog implements the HTTP client for the book catalog API:
// books, comments and aggregate statistics.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL points at the hosted catalog backend.
const DefaultBaseURL = "https://book-api-5ofb.onrender.com"

var (
	// ErrNotFound is returned when a book id does not exist in the catalog.
	ErrNotFound = errors.New("book not found")
	// ErrInvalidRating is returned when a rating falls outside [0,5].
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

// Client talks to the catalog API. It performs no retries: a single failed
// attempt is final for that invocation.
type Client struct {
	http *resty.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: http}
}

// BaseURL returns the base URL the client was configured with.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// ListBooks fetches books matching the given filter/sort/search options.
// Every returned book has its theme normalized.
func (c *Client) ListBooks(ctx context.Context, opts ListOptions) ([]Book, error) {
	var books []Book
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(opts.QueryParams()).
		SetResult(&books).
		Get("/books")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch books: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch books: %s", resp.Status())
	}
	for i := range books {
		books[i].normalize()
	}
	return books, nil
}

// GetBook fetches a single book by id. A non-success status is reported as
// ErrNotFound.
func (c *Client) GetBook(ctx context.Context, id int) (*Book, error) {
	var book Book
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&book).
		Get(fmt.Sprintf("/books/%d", id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch book %d: %w", id, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	book.normalize()
	return &book, nil
}

// CreateBook creates a new book and returns the record with its
// server-assigned id.
func (c *Client) CreateBook(ctx context.Context, draft BookDraft) (*Book, error) {
	if draft.Rating < 0 || draft.Rating > 5 {
		return nil, ErrInvalidRating
	}
	var book Book
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		SetResult(&book).
		Post("/books")
	if err != nil {
		return nil, fmt.Errorf("failed to add book: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to add book: %s", resp.Status())
	}
	book.normalize()
	return &book, nil
}

// UpdateBook applies a partial update to a book and returns the updated
// record.
func (c *Client) UpdateBook(ctx context.Context, id int, update BookUpdate) (*Book, error) {
	if update.Rating != nil && (*update.Rating < 0 || *update.Rating > 5) {
		return nil, ErrInvalidRating
	}
	var book Book
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(update).
		SetResult(&book).
		Put(fmt.Sprintf("/books/%d", id))
	if err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to update book %d: %s", id, resp.Status())
	}
	book.normalize()
	return &book, nil
}

// UpdateCover persists a resolved cover URL on a book. This is the write-back
// half of cover resolution.
func (c *Client) UpdateCover(ctx context.Context, id int, coverURL string) error {
	_, err := c.UpdateBook(ctx, id, BookUpdate{Cover: &coverURL})
	return err
}

// DeleteBook removes a book from the catalog.
func (c *Client) DeleteBook(ctx context.Context, id int) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/books/%d", id))
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to delete book %d: %s", id, resp.Status())
	}
	return nil
}

// ListComments fetches the comments attached to a book, oldest first.
func (c *Client) ListComments(ctx context.Context, bookID int) ([]Comment, error) {
	var comments []Comment
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&comments).
		Get(fmt.Sprintf("/books/%d/notes", bookID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments for book %d: %w", bookID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch comments for book %d: %s", bookID, resp.Status())
	}
	return comments, nil
}

// AddComment appends a comment to a book. Content validation (non-empty
// after trimming) is the caller's responsibility.
func (c *Client) AddComment(ctx context.Context, bookID int, content string) (*Comment, error) {
	var comment Comment
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"content": content}).
		SetResult(&comment).
		Post(fmt.Sprintf("/books/%d/notes", bookID))
	if err != nil {
		return nil, fmt.Errorf("failed to add comment to book %d: %w", bookID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to add comment to book %d: %s", bookID, resp.Status())
	}
	return &comment, nil
}

// GetStatistics fetches the aggregate read/unread counts and average rating.
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&stats).
		Get("/statistics")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch statistics: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch statistics: %s", resp.Status())
	}
	return &stats, nil
}
