package catalog

// Book represents a single book record as served by the catalog API.
type Book struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Author   string `json:"author"`
	Editor   string `json:"editor"`
	Year     int    `json:"year"`
	Read     bool   `json:"read"`
	Favorite bool   `json:"favorite"`
	Rating   int    `json:"rating"`
	Cover    string `json:"cover"`
	Theme    Theme  `json:"theme"`
}

// BookDraft holds the fields of a book to be created. The id is
// server-assigned, so it is deliberately absent here.
type BookDraft struct {
	Name     string `json:"name"`
	Author   string `json:"author"`
	Editor   string `json:"editor"`
	Year     int    `json:"year"`
	Read     bool   `json:"read"`
	Favorite bool   `json:"favorite"`
	Rating   int    `json:"rating"`
	Cover    string `json:"cover"`
	Theme    Theme  `json:"theme"`
}

// BookUpdate describes a partial update. Nil fields are left untouched by
// the server, so toggling a single flag only sends that flag.
type BookUpdate struct {
	Name     *string `json:"name,omitempty"`
	Author   *string `json:"author,omitempty"`
	Editor   *string `json:"editor,omitempty"`
	Year     *int    `json:"year,omitempty"`
	Read     *bool   `json:"read,omitempty"`
	Favorite *bool   `json:"favorite,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Cover    *string `json:"cover,omitempty"`
	Theme    *Theme  `json:"theme,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u BookUpdate) IsEmpty() bool {
	return u.Name == nil && u.Author == nil && u.Editor == nil &&
		u.Year == nil && u.Read == nil && u.Favorite == nil &&
		u.Rating == nil && u.Cover == nil && u.Theme == nil
}

// Comment is a free-text note attached to a book. Comments are append-only:
// the API exposes no edit or delete.
type Comment struct {
	ID      int    `json:"id"`
	BookID  int    `json:"bookId"`
	Content string `json:"content"`
	DateISO string `json:"dateISO"`
}

// Statistics holds the aggregate counters served by the statistics endpoint.
// AverageRating is nil when the catalog contains no books.
type Statistics struct {
	ReadCount     int      `json:"readCount"`
	UnreadCount   int      `json:"unreadCount"`
	AverageRating *float64 `json:"averageRating"`
}
