package index

import (
	"strings"

	"github.com/meghashyamc/sitesearch/db/indexdb"
)

const sectionRelevance = 9

// siteSection is a hand-curated homepage section. The keyword lists carry
// alias terms users search for that do not appear verbatim on the page.
type siteSection struct {
	ID          string
	Title       string
	Description string
	Keywords    []string
	RelatedDocs []string
}

var homepageSections = []siteSection{
	{
		ID:          "features",
		Title:       "Features",
		Description: "Run language models locally with a private, offline-first desktop app. Chat, compare models, and keep every conversation on your own machine.",
		Keywords:    []string{"local", "offline", "private", "privacy", "desktop", "chat"},
		RelatedDocs: []string{"/docs/getting-started.html"},
	},
	{
		ID:          "how-it-works",
		Title:       "How It Works",
		Description: "Download the app, pick a model that fits your hardware, and start chatting. No account, no cloud, no telemetry.",
		Keywords:    []string{"setup", "install", "quickstart", "tutorial"},
		RelatedDocs: []string{"/docs/getting-started.html", "/docs/installation.html"},
	},
	{
		ID:          "faq",
		Title:       "Frequently Asked Questions",
		Description: "Answers to common questions about hardware requirements, supported models, updates, and privacy.",
		Keywords:    []string{"faq", "questions", "help", "support"},
		RelatedDocs: []string{"/docs/faq.html", "/docs/troubleshooting.html"},
	},
	{
		ID:          "download",
		Title:       "Download",
		Description: "Get the latest release for Windows, macOS, or Linux. Free for personal use.",
		Keywords:    []string{"download", "install", "release", "windows", "macos", "linux"},
		RelatedDocs: []string{"/docs/installation.html"},
	},
	{
		ID:          "model-comparison",
		Title:       "Model Comparison",
		Description: "Compare available models by size, speed, hardware fit, and recommended use cases before you download one.",
		Keywords:    []string{"models", "compare", "comparison", "benchmark", "gpu", "ram"},
		RelatedDocs: []string{"/docs/models.html"},
	},
}

// indexHomepageSections emits one record per curated section actually present
// on the homepage. Sections removed from the page drop out of the index on
// the next build without code changes here.
func (s *Service) indexHomepageSections(source ContentSource) ([]indexdb.SearchRecord, SourceReport) {
	report := SourceReport{Name: sourceHomepageSections}
	if source == nil {
		report.Errors = append(report.Errors, "homepage unavailable")
		return nil, report
	}

	var records []indexdb.SearchRecord
	for _, section := range homepageSections {
		if !source.HasElement(section.ID) {
			continue
		}

		record := indexdb.SearchRecord{
			ID:             "section-" + section.ID,
			Title:          section.Title,
			Content:        section.Description,
			URL:            "/#" + section.ID,
			Type:           indexdb.TypeHomepageSection,
			SearchableText: searchableText(section.Title, section.Description, section.Keywords),
			Relevance:      sectionRelevance,
			Keywords:       section.Keywords,
			RelatedDocs:    section.RelatedDocs,
		}
		records = append(records, record)
	}

	report.Records = len(records)
	return records, report
}

// searchableText derives the lowercase match target from a record's title,
// content, and keyword aliases.
func searchableText(title string, content string, keywords []string) string {
	parts := []string{title, content}
	parts = append(parts, keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}
