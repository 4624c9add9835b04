package index

import "time"

// Source names as they appear in build reports.
const (
	sourceSitePages        = "site-pages"
	sourceHomepageSections = "homepage-sections"
	sourceDocumentation    = "documentation"
	sourceModels           = "models"
)

// SourceReport records how one content source fared during a build.
type SourceReport struct {
	Name    string   `json:"name"`
	Records int      `json:"records"`
	Errors  []string `json:"errors,omitempty"`
}

// BuildReport summarizes an index build. Failures degrade coverage but never
// abort a build, so the report is how callers find out what was skipped.
type BuildReport struct {
	BuiltAt time.Time      `json:"built_at"`
	Records int            `json:"records"`
	Sources []SourceReport `json:"sources"`
}

// FailedSources counts sources that reported at least one error.
func (r *BuildReport) FailedSources() int {
	failed := 0
	for _, source := range r.Sources {
		if len(source.Errors) > 0 {
			failed++
		}
	}
	return failed
}

func (r *BuildReport) addSource(source SourceReport) {
	r.Sources = append(r.Sources, source)
}
