// Package config holds process-wide configuration resolved from viper.
package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// CatalogBaseURL is the base URL of the book catalog API
	CatalogBaseURL string
	// OpenLibraryBaseURL is the base URL of the OpenLibrary API
	OpenLibraryBaseURL string
	// CoversBaseURL is the base URL of the OpenLibrary covers service
	CoversBaseURL string
	// OverwriteFiles controls whether existing export files are overwritten
	OverwriteFiles bool
)

// InitConfig initializes the global configuration
func InitConfig() {
	viper.SetDefault("catalog.baseurl", "https://book-api-5ofb.onrender.com")
	viper.SetDefault("openlibrary.baseurl", "https://openlibrary.org")
	viper.SetDefault("covers.baseurl", "https://covers.openlibrary.org")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	CatalogBaseURL = viper.GetString("catalog.baseurl")
	OpenLibraryBaseURL = viper.GetString("openlibrary.baseurl")
	CoversBaseURL = viper.GetString("covers.baseurl")
	OverwriteFiles = viper.GetBool("OverwriteFiles")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetCatalogBaseURL overrides the catalog base URL
func SetCatalogBaseURL(url string) {
	if url != "" {
		CatalogBaseURL = url
	}
}
