package search

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/meghashyamc/sitesearch/db/indexdb"
	"github.com/meghashyamc/sitesearch/db/relateddb"
	"github.com/meghashyamc/sitesearch/logger"
)

const (
	// MinQueryLength is the shortest query, in characters, that triggers a
	// full index scan; anything shorter belongs on the suggestions path.
	MinQueryLength = 3
	// MaxResults caps the ranked result list.
	MaxResults = 10
)

var ErrRecordNotFound = errors.New("record not found")

// Service answers queries against the current in-memory index. It only ever
// reads the index; rebuilds swap in a new one underneath via the holder.
type Service struct {
	logger  logger.Logger
	index   *indexdb.Holder
	related relateddb.DB
}

func New(logger logger.Logger, index *indexdb.Holder, related relateddb.DB) *Service {
	return &Service{
		logger: logger,
		index:  index,
		related: related,
	}
}

// Search scores every indexed record against the query and returns the
// top-scoring results in descending score order. Queries shorter than
// MinQueryLength return nothing; they are served by Suggest instead.
func (s *Service) Search(query string) []indexdb.ScoredResult {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil
	}

	return rankRecords(s.index.Load().All(), query)
}

// Related returns records similar to the record with the given ID, scored by
// the related-content index.
func (s *Service) Related(id string, limit int) ([]indexdb.ScoredResult, error) {
	ix := s.index.Load()

	record, ok := ix.Get(id)
	if !ok {
		return nil, ErrRecordNotFound
	}

	matches, err := s.related.Related(record, limit)
	if err != nil {
		s.logger.Error("related-content lookup failed", "id", id, "err", err.Error())
		return nil, err
	}

	results := make([]indexdb.ScoredResult, 0, len(matches))
	for _, match := range matches {
		matched, ok := ix.Get(match.ID)
		if !ok {
			// The similarity index lags one build behind at worst; drop
			// references that no longer resolve.
			continue
		}
		results = append(results, indexdb.ScoredResult{
			SearchRecord: matched,
			Score:        match.Score,
			GlobalIndex:  len(results),
		})
	}

	return results, nil
}
