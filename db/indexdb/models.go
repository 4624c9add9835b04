package indexdb

// RecordType tags a record with the kind of content it was built from.
type RecordType string

const (
	TypeHomepageSection      RecordType = "homepage-section"
	TypeDocumentation        RecordType = "documentation"
	TypeDocumentationSection RecordType = "documentation-section"
	TypeModel                RecordType = "model"
	TypePageContent          RecordType = "page-content"
)

// KnownTypes lists every record type the index builder emits, in display
// priority order.
var KnownTypes = []RecordType{
	TypeHomepageSection,
	TypeDocumentation,
	TypeDocumentationSection,
	TypeModel,
	TypePageContent,
}

// IsKnownType reports whether t is one of the types the builder emits.
func IsKnownType(t RecordType) bool {
	for _, known := range KnownTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SearchRecord is one indexed, searchable unit of site content.
//
// SearchableText is derived once at build time (lowercased title + content +
// keywords) and never mutated afterwards.
type SearchRecord struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	URL            string     `json:"url"`
	Type           RecordType `json:"type"`
	SearchableText string     `json:"searchable_text"`
	Relevance      int        `json:"relevance"`
	Keywords       []string   `json:"keywords,omitempty"`
	RelatedDocs    []string   `json:"related_docs,omitempty"`
	ParentPage     string     `json:"parent_page,omitempty"`
}

// ScoredResult is a SearchRecord annotated with a per-query score and its
// position in the flattened result list. Both are transient and recomputed
// for every query.
type ScoredResult struct {
	SearchRecord
	Score       float64 `json:"score"`
	GlobalIndex int     `json:"global_index"`
}
