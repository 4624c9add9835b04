package relateddb

import (
	"errors"

	"github.com/meghashyamc/sitesearch/db/indexdb"
)

// ErrClosed is returned by lookups that race shutdown.
var ErrClosed = errors.New("related-content index is closed")

// Match is a related record reference with its full-text similarity score.
type Match struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// DB finds records similar to a given record. It is rebuilt wholesale
// whenever the search index is rebuilt.
type DB interface {
	BuildIndex(records []indexdb.SearchRecord) error
	Related(record indexdb.SearchRecord, limit int) ([]Match, error)
	GetDocCount() (uint64, error)
	Close() error
}
