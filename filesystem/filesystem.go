// Package filesystem routes every file operation through a swappable afero
// backend, so tests and CI can run against an in-memory filesystem.
package filesystem

import "github.com/spf13/afero"

var backend afero.Fs = afero.NewOsFs()

// API wraps the active backend with afero's convenience methods.
func API() afero.Afero {
	return afero.Afero{Fs: backend}
}

// SetOsFs routes operations to the host filesystem.
func SetOsFs() {
	backend = afero.NewOsFs()
}

// SetMemMapFs routes operations to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.NewMemMapFs()
}
