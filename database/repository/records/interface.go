// Package recordsRepo is the record store: named collections of records
// persisted as JSON text behind a string-keyed storage boundary. All writes
// go through a versioned compare-and-swap so concurrent read-modify-write
// cycles cannot silently clobber each other.
package recordsRepo

import (
	"context"
	"errors"
)

// Collection keys used across the application.
const (
	ProvidersCollection = "providers"
	BookingsCollection  = "bookings"
	ReviewsCollection   = "reviews"
	AccountsCollection  = "accounts"
)

// ErrConflict is returned by Save when the expected version no longer
// matches the stored one (another writer got there first).
var ErrConflict = errors.New("record store: version conflict")

// Snapshot is a collection payload together with the version it was read at.
// A missing collection loads as an empty payload at version zero.
type Snapshot struct {
	Data    string
	Version int64
}

// Store persists whole collections as serialized text. Load fails soft to an
// empty snapshot when the key is absent. Save replaces the entire payload and
// succeeds only when expected matches the stored version.
type Store interface {
	Load(ctx context.Context, collection string) (Snapshot, error)
	Save(ctx context.Context, collection string, data string, expected int64) error
	Delete(ctx context.Context, collection string) error
}
