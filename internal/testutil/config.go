// Package testutil provides helpers for isolating viper-backed configuration
// in tests.
package testutil

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/jlevert/bouquin/internal/config"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	CatalogBaseURL     string
	OpenLibraryBaseURL string
	CoversBaseURL      string
	OverwriteFiles     bool
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		CatalogBaseURL:     config.CatalogBaseURL,
		OpenLibraryBaseURL: config.OpenLibraryBaseURL,
		CoversBaseURL:      config.CoversBaseURL,
		OverwriteFiles:     config.OverwriteFiles,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.CatalogBaseURL = state.CatalogBaseURL
	config.OpenLibraryBaseURL = state.OpenLibraryBaseURL
	config.CoversBaseURL = state.CoversBaseURL
	config.OverwriteFiles = state.OverwriteFiles
}

// ResetConfig saves the current config state and schedules restoration when
// the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig points the config at test servers and restores the previous
// state when the test completes.
func SetTestConfig(t *testing.T, catalogURL, openLibraryURL, coversURL string) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	config.CatalogBaseURL = catalogURL
	config.OpenLibraryBaseURL = openLibraryURL
	config.CoversBaseURL = coversURL
	config.OverwriteFiles = true

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}
