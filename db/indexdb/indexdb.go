package indexdb

import (
	"sync/atomic"
)

// Index is an immutable snapshot of searchable records. It is built once per
// rebuild and only read afterwards, so no locking is needed on the query
// path.
type Index struct {
	records []SearchRecord
	byID    map[string]int
}

// New builds an Index from records. Records with a duplicate ID are dropped,
// keeping the first occurrence, so that IDs stay unique across the index.
func New(records []SearchRecord) *Index {
	ix := &Index{
		records: make([]SearchRecord, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for _, record := range records {
		if _, exists := ix.byID[record.ID]; exists {
			continue
		}
		ix.byID[record.ID] = len(ix.records)
		ix.records = append(ix.records, record)
	}
	return ix
}

// All returns the indexed records in build order. Callers must not modify the
// returned slice.
func (ix *Index) All() []SearchRecord {
	return ix.records
}

// Get looks up a record by ID.
func (ix *Index) Get(id string) (SearchRecord, bool) {
	pos, ok := ix.byID[id]
	if !ok {
		return SearchRecord{}, false
	}
	return ix.records[pos], true
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Holder hands out the live Index and swaps in a replacement atomically on
// rebuild. Searches read lock-free; a search that started against the old
// index finishes against it.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder returns a Holder that starts out with an empty index.
func NewHolder() *Holder {
	h := &Holder{}
	h.current.Store(New(nil))
	return h
}

// Load returns the current index.
func (h *Holder) Load() *Index {
	return h.current.Load()
}

// Swap replaces the current index.
func (h *Holder) Swap(ix *Index) {
	h.current.Store(ix)
}
