// Package datastore writes catalog snapshots to a local SQLite database so
// they can be browsed with Datasette.
package datastore

// Store defines the interface for local SQLite storage
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// ReplaceAll clears the table and inserts the given records in one
	// transaction, so re-exports stay idempotent
	ReplaceAll(table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}

// BooksSchema is the table layout for exported books.
const BooksSchema = `
CREATE TABLE IF NOT EXISTS books (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	author TEXT,
	editor TEXT,
	year INTEGER,
	read BOOLEAN,
	favorite BOOLEAN,
	rating INTEGER,
	cover TEXT,
	theme TEXT
);
`

// CommentsSchema is the table layout for exported comments.
const CommentsSchema = `
CREATE TABLE IF NOT EXISTS comments (
	id INTEGER PRIMARY KEY,
	book_id INTEGER NOT NULL,
	content TEXT NOT NULL,
	date_iso TEXT
);
`
