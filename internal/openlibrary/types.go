package openlibrary

// SearchDoc is a single candidate document from the OpenLibrary search API.
type SearchDoc struct {
	Title      string   `json:"title"`
	ISBN       []string `json:"isbn"`
	EditionKey []string `json:"edition_key"`
	AuthorName []string `json:"author_name"`
}

// searchResponse is the envelope of the search endpoint.
type searchResponse struct {
	Docs []SearchDoc `json:"docs"`
}

// editionData is the slice of the per-edition detail response this package
// cares about: the edition's ISBN identifiers.
type editionData struct {
	Identifiers struct {
		ISBN13 []string `json:"isbn_13"`
		ISBN10 []string `json:"isbn_10"`
	} `json:"identifiers"`
}
