// Package storage persists the application document to local disk.
//
// The persisted artifact is a single JSON document matching model.AppData.
// Every mutation replaces and rewrites the whole document; there is no
// partial or incremental persistence.
package storage

import "github.com/tallyhq/tally/internal/model"

// Store defines the contract for the persistence layer.
type Store interface {
	// Data returns a snapshot copy of the current document. Mutating the
	// returned value does not affect stored state.
	Data() model.AppData

	// Update applies mutate to the document and persists the result
	// synchronously before returning. If mutate returns an error the
	// document is left untouched.
	Update(mutate func(*model.AppData) error) error

	// Restore replaces the document with a backup payload, applying the
	// same default-merge used on load. Malformed payloads leave the
	// current document untouched.
	Restore(raw []byte) error

	// Path reports where the document lives on disk.
	Path() string
}
