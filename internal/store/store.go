// Package store persists at most one credential record per external
// identity. "Not found" is not an error: Lookup, Update and Forget answer
// absence with a nil record, and errors mean the backend or the stored data
// actually failed.
package store

import (
	"context"

	"github.com/Blonteractor/discord-amibot/internal/credentials"
)

// Store maps a caller identity to at most one credential record.
type Store interface {
	// CreateOrGet returns the existing record for identity unchanged if
	// one exists; a repeat login with different credentials does not
	// overwrite. Otherwise it encodes and persists a new record.
	CreateOrGet(ctx context.Context, identity, username, password string) (*credentials.Record, error)

	// Lookup returns the record for identity, or nil if absent.
	Lookup(ctx context.Context, identity string) (*credentials.Record, error)

	// Update replaces the stored record wholesale with a freshly encoded
	// one and returns the previous record, or nil if none existed (in
	// which case nothing is written).
	Update(ctx context.Context, identity, username, password string) (*credentials.Record, error)

	// Forget removes and returns the record for identity, or nil if
	// absent.
	Forget(ctx context.Context, identity string) (*credentials.Record, error)
}
