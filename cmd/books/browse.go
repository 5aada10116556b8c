package books

import "github.com/jlevert/bouquin/internal/tui"

var runBrowse = tui.Browse

// BrowseWithParams opens the interactive catalog browser. It shares the
// process-wide memo cache with the other commands so covers resolved while
// browsing are not resolved again.
func BrowseWithParams() error {
	client := newCatalogClient()
	return runBrowse(client, newResolver(client))
}
