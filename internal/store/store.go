// Package store persists the visitor record set.
//
// Every backend rewrites the whole set on Save and degrades to an empty set
// on Load when the backing data is missing or unreadable.
package store

import "github.com/evcraddock/visitor-register/internal/visitor"

// Store is the durable representation of the record set.
type Store interface {
	// Load returns the current record set. It never fails: missing or
	// malformed backing data yields an empty set.
	Load() visitor.RecordSet

	// Save replaces the stored set with records. Errors wrap visitor.ErrStorage.
	Save(records visitor.RecordSet) error
}
