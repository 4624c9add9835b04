package search

import "strings"

// MaxSuggestions caps the suggestions list.
const MaxSuggestions = 8

// suggestionPool is the curated list served for 1-2 character queries.
// Filtering it is much cheaper than scoring the whole index on every
// keystroke.
var suggestionPool = []string{
	"download",
	"install",
	"getting started",
	"models",
	"model comparison",
	"gpu",
	"system requirements",
	"troubleshooting",
	"faq",
	"privacy",
	"offline",
	"updates",
}

// Suggest returns curated queries containing the given fragment,
// case-insensitively, capped at MaxSuggestions. An empty fragment returns
// nothing.
func (s *Service) Suggest(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var suggestions []string
	for _, suggestion := range suggestionPool {
		if !strings.Contains(suggestion, query) {
			continue
		}
		suggestions = append(suggestions, suggestion)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}

	return suggestions
}
