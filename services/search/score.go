package search

import (
	"sort"
	"strings"

	"github.com/meghashyamc/sitesearch/db/indexdb"
)

// Scoring multipliers. Empirically chosen; tunable, not load-bearing.
const (
	boostForTitleMatch  = 2.0
	boostForPhraseMatch = 1.5
)

// rankRecords scores every record against the query and returns the top
// MaxResults in descending score order. Scoring is a pure function of record
// content, relevance, and query, so identical calls rank identically.
func rankRecords(records []indexdb.SearchRecord, query string) []indexdb.ScoredResult {
	query = strings.ToLower(query)
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return nil
	}

	var results []indexdb.ScoredResult
	for _, record := range records {
		score := scoreRecord(record, query, terms)
		if score <= 0 {
			continue
		}
		results = append(results, indexdb.ScoredResult{
			SearchRecord: record,
			Score:        score,
		})
	}

	// Descending score; ties broken by relevance then ID so ordering is
	// deterministic per call.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Relevance != results[j].Relevance {
			return results[i].Relevance > results[j].Relevance
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	for i := range results {
		results[i].GlobalIndex = i
	}

	return results
}

// scoreRecord accumulates, per query term: relevance*2 for a title match and
// relevance for a searchable-text match. Multi-term queries found whole in
// the searchable text additionally earn relevance*1.5. All matches are
// case-insensitive substring matches.
func scoreRecord(record indexdb.SearchRecord, query string, terms []string) float64 {
	searchable := record.SearchableText
	if searchable == "" {
		searchable = strings.ToLower(record.Title + " " + record.Content)
	}
	title := strings.ToLower(record.Title)
	relevance := float64(record.Relevance)

	var score float64
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += relevance * boostForTitleMatch
		}
		if strings.Contains(searchable, term) {
			score += relevance
		}
	}

	if len(terms) > 1 && strings.Contains(searchable, query) {
		score += relevance * boostForPhraseMatch
	}

	return score
}
