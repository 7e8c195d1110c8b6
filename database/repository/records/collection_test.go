package recordsRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func TestCollection_LoadEmpty(t *testing.T) {
	coll := NewCollection[note](NewMemoryStore(), "notes")

	items, version, err := coll.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), version)
}

func TestCollection_MutateAppends(t *testing.T) {
	coll := NewCollection[note](NewMemoryStore(), "notes")
	ctx := context.Background()

	_, err := coll.Mutate(ctx, func(items []note) ([]note, error) {
		return append(items, note{ID: "1", Body: "first"}), nil
	})
	require.NoError(t, err)

	_, err = coll.Mutate(ctx, func(items []note) ([]note, error) {
		return append(items, note{ID: "2", Body: "second"}), nil
	})
	require.NoError(t, err)

	items, version, err := coll.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Body)
	assert.Equal(t, int64(2), version)
}

func TestCollection_MutateErrorAbortsWrite(t *testing.T) {
	coll := NewCollection[note](NewMemoryStore(), "notes")
	ctx := context.Background()

	abort := assert.AnError
	_, err := coll.Mutate(ctx, func(items []note) ([]note, error) {
		return nil, abort
	})
	assert.ErrorIs(t, err, abort)

	items, version, err := coll.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), version)
}

func TestCollection_MalformedPayloadReadsEmpty(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "notes", "{not json", 0))

	coll := NewCollection[note](store, "notes")
	items, version, err := coll.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(1), version)

	// A write after the bad read starts from the empty slice and replaces
	// the corrupt payload.
	saved, err := coll.Mutate(ctx, func(items []note) ([]note, error) {
		return append(items, note{ID: "1"}), nil
	})
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

// conflictingStore rejects the first n saves with ErrConflict.
type conflictingStore struct {
	Store
	remaining int
}

func (s *conflictingStore) Save(ctx context.Context, collection, data string, expected int64) error {
	if s.remaining > 0 {
		s.remaining--
		return ErrConflict
	}
	return s.Store.Save(ctx, collection, data, expected)
}

func TestCollection_MutateRetriesOnConflict(t *testing.T) {
	store := &conflictingStore{Store: NewMemoryStore(), remaining: 2}
	coll := NewCollection[note](store, "notes")

	calls := 0
	items, err := coll.Mutate(context.Background(), func(items []note) ([]note, error) {
		calls++
		return append(items, note{ID: "1"}), nil
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	// The mutation function re-runs against a fresh read on every attempt.
	assert.Equal(t, 3, calls)
}

func TestCollection_MutateGivesUpAfterBoundedRetries(t *testing.T) {
	store := &conflictingStore{Store: NewMemoryStore(), remaining: 100}
	coll := NewCollection[note](store, "notes")

	_, err := coll.Mutate(context.Background(), func(items []note) ([]note, error) {
		return append(items, note{ID: "1"}), nil
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMemoryStore_SaveChecksVersion(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "notes", "[]", 0))
	assert.ErrorIs(t, store.Save(ctx, "notes", "[]", 0), ErrConflict)
	require.NoError(t, store.Save(ctx, "notes", "[]", 1))

	snap, err := store.Load(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.Version)
}

func TestMemoryStore_DeleteResetsVersion(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "notes", "[]", 0))
	require.NoError(t, store.Delete(ctx, "notes"))

	snap, err := store.Load(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, Snapshot{}, snap)
}
