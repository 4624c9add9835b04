// Package present shapes ranked search results for display: grouping by
// record type, type filtering, match highlighting, selection movement, and
// result activation.
package present

import (
	"strings"

	"github.com/meghashyamc/sitesearch/db/indexdb"
)

// FilterAll disables type filtering.
const FilterAll = "all"

// NoResultsSuggestions are the queries offered as shortcuts when a search
// matches nothing.
var NoResultsSuggestions = []string{"download", "install", "models", "faq"}

// Result is a scored record shaped for display. Navigation is resolved once
// the caller's current page is known, via ResolveNavigations.
type Result struct {
	indexdb.ScoredResult
	Navigation Navigation `json:"navigation"`
}

// Group is one type's worth of results, in score order.
type Group struct {
	Type    indexdb.RecordType `json:"type"`
	Results []Result           `json:"results"`
}

// GroupResults splits ranked results into groups by record type, in the fixed
// display priority order (unknown types last, in first-seen order). A
// non-empty typeFilter other than "all" keeps only that type's group. Score
// order is preserved inside each group, and GlobalIndex is reassigned over
// the flattened, filtered list so selection movement lines up with what is
// shown.
func GroupResults(results []indexdb.ScoredResult, typeFilter string) []Group {
	filtered := results
	if typeFilter != "" && typeFilter != FilterAll {
		filtered = make([]indexdb.ScoredResult, 0, len(results))
		for _, result := range results {
			if string(result.Type) == typeFilter {
				filtered = append(filtered, result)
			}
		}
	}

	byType := make(map[indexdb.RecordType][]Result)
	var extraTypes []indexdb.RecordType
	for _, result := range filtered {
		if _, seen := byType[result.Type]; !seen && !indexdb.IsKnownType(result.Type) {
			extraTypes = append(extraTypes, result.Type)
		}
		byType[result.Type] = append(byType[result.Type], Result{ScoredResult: result})
	}

	order := append([]indexdb.RecordType{}, indexdb.KnownTypes...)
	order = append(order, extraTypes...)

	var groups []Group
	globalIndex := 0
	for _, recordType := range order {
		groupResults := byType[recordType]
		if len(groupResults) == 0 {
			continue
		}
		for i := range groupResults {
			groupResults[i].GlobalIndex = globalIndex
			globalIndex++
		}
		groups = append(groups, Group{Type: recordType, Results: groupResults})
	}

	return groups
}

// Flatten returns the grouped results in display order.
func Flatten(groups []Group) []Result {
	var results []Result
	for _, group := range groups {
		results = append(results, group.Results...)
	}
	return results
}

// Highlight wraps every case-insensitive occurrence of query inside text in
// <mark> tags, preserving the original casing of the matched text.
func Highlight(text string, query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return text
	}

	lower := strings.ToLower(text)
	// Lowercasing can change byte offsets for some non-ASCII characters;
	// skip highlighting rather than mangle the text.
	if len(lower) != len(text) {
		return text
	}

	var b strings.Builder
	for i := 0; ; {
		j := strings.Index(lower[i:], query)
		if j < 0 {
			b.WriteString(text[i:])
			break
		}
		j += i
		b.WriteString(text[i:j])
		b.WriteString("<mark>")
		b.WriteString(text[j : j+len(query)])
		b.WriteString("</mark>")
		i = j + len(query)
	}

	return b.String()
}

// HighlightGroups returns a copy of groups with titles and snippets
// highlighted for the query.
func HighlightGroups(groups []Group, query string) []Group {
	highlighted := make([]Group, len(groups))
	for g, group := range groups {
		results := make([]Result, len(group.Results))
		for i, result := range group.Results {
			result.Title = Highlight(result.Title, query)
			result.Content = Highlight(result.Content, query)
			results[i] = result
		}
		highlighted[g] = Group{Type: group.Type, Results: results}
	}
	return highlighted
}

// ResolveNavigations returns a copy of groups with each result's activation
// resolved against the page the user is on. An empty currentPath means the
// site root.
func ResolveNavigations(groups []Group, currentPath string) []Group {
	if currentPath == "" {
		currentPath = "/"
	}

	resolved := make([]Group, len(groups))
	for g, group := range groups {
		results := make([]Result, len(group.Results))
		for i, result := range group.Results {
			result.Navigation = ResolveNavigation(result.URL, currentPath)
			results[i] = result
		}
		resolved[g] = Group{Type: group.Type, Results: results}
	}
	return resolved
}
