package indexdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDropsDuplicateIDs(t *testing.T) {
	assert := require.New(t)

	ix := New([]SearchRecord{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
		{ID: "a", Title: "Duplicate"},
	})

	assert.Equal(2, ix.Len())
	record, ok := ix.Get("a")
	assert.True(ok)
	assert.Equal("First", record.Title)
}

func TestGetUnknownID(t *testing.T) {
	assert := require.New(t)

	ix := New([]SearchRecord{{ID: "a"}})
	_, ok := ix.Get("missing")
	assert.False(ok)
}

func TestAllPreservesBuildOrder(t *testing.T) {
	assert := require.New(t)

	ix := New([]SearchRecord{{ID: "c"}, {ID: "a"}, {ID: "b"}})
	records := ix.All()
	assert.Equal("c", records[0].ID)
	assert.Equal("a", records[1].ID)
	assert.Equal("b", records[2].ID)
}

func TestHolderStartsEmptyAndSwaps(t *testing.T) {
	assert := require.New(t)

	holder := NewHolder()
	assert.Zero(holder.Load().Len())

	ix := New([]SearchRecord{{ID: "a"}})
	holder.Swap(ix)
	assert.Equal(1, holder.Load().Len())

	// The old snapshot stays usable for readers that loaded it before the
	// swap.
	old := holder.Load()
	holder.Swap(New(nil))
	assert.Equal(1, old.Len())
}
