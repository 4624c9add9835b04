package relateddb

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/meghashyamc/sitesearch/db/indexdb"
	"github.com/meghashyamc/sitesearch/logger"
)

const indexingBatchSize = 100

const (
	indexFieldTitle    = "title"
	indexFieldContent  = "content"
	indexFieldKeywords = "keywords"
	indexFieldType     = "type"
)

// document is the shape mirrored into bleve for similarity lookups. The full
// records stay in the in-memory index; only searchable fields go here.
type document struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Keywords string `json:"keywords"`
	Type     string `json:"type"`
}

// BleveDB is an in-memory bleve index over the search records. The whole
// index is replaced on rebuild; a mutex guards the swap, queries hold it only
// long enough to grab the current index.
type BleveDB struct {
	logger logger.Logger

	mu    sync.RWMutex
	index bleve.Index
}

func New(logger logger.Logger) (*BleveDB, error) {
	index, err := bleve.NewMemOnly(createIndexMapping())
	if err != nil {
		logger.Error("could not create related-content index", "err", err.Error())
		return nil, err
	}
	return &BleveDB{logger: logger, index: index}, nil
}

func createIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt(indexFieldTitle, titleFieldMapping)

	contentFieldMapping := bleve.NewTextFieldMapping()
	contentFieldMapping.Analyzer = standard.Name
	contentFieldMapping.Store = false
	contentFieldMapping.Index = true
	docMapping.AddFieldMappingsAt(indexFieldContent, contentFieldMapping)

	keywordsFieldMapping := bleve.NewTextFieldMapping()
	keywordsFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt(indexFieldKeywords, keywordsFieldMapping)

	// Type field - not analyzed (exact match)
	typeFieldMapping := bleve.NewTextFieldMapping()
	typeFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt(indexFieldType, typeFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}

// BuildIndex replaces the similarity index with one built from records.
func (b *BleveDB) BuildIndex(records []indexdb.SearchRecord) error {
	index, err := bleve.NewMemOnly(createIndexMapping())
	if err != nil {
		b.logger.Error("could not create related-content index", "err", err.Error())
		return err
	}

	batch := index.NewBatch()
	for i, record := range records {
		doc := document{
			Title:    record.Title,
			Content:  record.Content,
			Keywords: strings.Join(record.Keywords, " "),
			Type:     string(record.Type),
		}
		if err := batch.Index(record.ID, doc); err != nil {
			b.logger.Error("could not index record", "id", record.ID, "err", err.Error())
			return err
		}

		// Execute batch when it reaches the batch size
		if (i+1)%indexingBatchSize == 0 {
			if err := index.Batch(batch); err != nil {
				return err
			}
			batch = index.NewBatch()
		}
	}

	if batch.Size() > 0 {
		if err := index.Batch(batch); err != nil {
			b.logger.Error("could not index records", "err", err.Error())
			return err
		}
	}

	b.mu.Lock()
	old := b.index
	b.index = index
	b.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			b.logger.Warn("could not close previous related-content index", "err", err.Error())
		}
	}

	return nil
}

// Related finds records most similar to the given record, excluding the
// record itself. Similarity is a boosted disjunction over the record's title
// and keywords.
func (b *BleveDB) Related(record indexdb.SearchRecord, limit int) ([]Match, error) {
	const (
		boostForTitle    = 2.0
		boostForKeywords = 1.5
		boostForContent  = 1.0
	)

	if limit <= 0 {
		return nil, nil
	}

	terms := strings.TrimSpace(record.Title + " " + strings.Join(record.Keywords, " "))
	if terms == "" {
		return nil, nil
	}

	disjunctQuery := bleve.NewDisjunctionQuery()

	titleQuery := bleve.NewMatchQuery(terms)
	titleQuery.SetField(indexFieldTitle)
	titleQuery.SetBoost(boostForTitle)
	disjunctQuery.AddQuery(titleQuery)

	keywordsQuery := bleve.NewMatchQuery(terms)
	keywordsQuery.SetField(indexFieldKeywords)
	keywordsQuery.SetBoost(boostForKeywords)
	disjunctQuery.AddQuery(keywordsQuery)

	contentQuery := bleve.NewMatchQuery(terms)
	contentQuery.SetField(indexFieldContent)
	contentQuery.SetBoost(boostForContent)
	disjunctQuery.AddQuery(contentQuery)

	// Request one extra hit since the record matches itself.
	searchRequest := bleve.NewSearchRequestOptions(disjunctQuery, limit+1, 0, false)

	b.mu.RLock()
	index := b.index
	b.mu.RUnlock()
	if index == nil {
		return nil, ErrClosed
	}

	searchResult, err := index.Search(searchRequest)
	if err != nil {
		b.logger.Error("related-content search failed", "err", err.Error())
		return nil, fmt.Errorf("related-content search failed: %w", err)
	}

	matches := make([]Match, 0, limit)
	for _, hit := range searchResult.Hits {
		if hit.ID == record.ID {
			continue
		}
		matches = append(matches, Match{ID: hit.ID, Score: hit.Score})
		if len(matches) == limit {
			break
		}
	}

	return matches, nil
}

func (b *BleveDB) GetDocCount() (uint64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.index == nil {
		return 0, ErrClosed
	}
	return b.index.DocCount()
}

func (b *BleveDB) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.index != nil {
		if err := b.index.Close(); err != nil {
			b.logger.Error("could not close related-content index", "err", err.Error())
			return err
		}
		b.index = nil
	}
	return nil
}
