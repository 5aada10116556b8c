package catalog

import (
	"strconv"
	"strings"
)

// SortKey selects the field the catalog sorts book lists by.
type SortKey string

const (
	SortByTitle  SortKey = "title"
	SortByAuthor SortKey = "author"
	SortByTheme  SortKey = "theme"
)

// SortOrder selects the direction of a sorted book list.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ListOptions describes the filter, search and sort state of a book list
// request. Nil or empty fields mean "no constraint" and are omitted from the
// query string entirely, never sent as empty or false values.
type ListOptions struct {
	Search   string
	Read     *bool
	Favorite *bool
	Sort     SortKey
	Order    SortOrder
}

// QueryParams translates the options into catalog API query parameters.
// The sort key defaults to title ascending when unspecified.
func (o ListOptions) QueryParams() map[string]string {
	params := make(map[string]string)

	if q := strings.TrimSpace(o.Search); q != "" {
		params["q"] = q
	}
	if o.Read != nil {
		params["read"] = strconv.FormatBool(*o.Read)
	}
	if o.Favorite != nil {
		params["favorite"] = strconv.FormatBool(*o.Favorite)
	}

	sort := o.Sort
	if sort == "" {
		sort = SortByTitle
	}
	order := o.Order
	if order == "" {
		order = OrderAsc
	}
	params["sort"] = string(sort)
	params["order"] = string(order)

	return params
}
