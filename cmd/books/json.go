package books

import (
	"github.com/jlevert/bouquin/internal/catalog"
	"github.com/jlevert/bouquin/internal/config"
	"github.com/jlevert/bouquin/internal/fileutil"
)

func writeBooksToJSON(books []catalog.Book, filename string) error {
	_, err := fileutil.WriteJSONFile(books, filename, config.OverwriteFiles)
	return err
}
