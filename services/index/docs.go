package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/meghashyamc/sitesearch/db/indexdb"
)

const (
	docRelevance        = 8
	docSectionRelevance = 7
	// Display length of a documentation-section snippet.
	sectionContentLimit = 200
)

const docSectionSelectors = "h1, h2, h3"

// docPage is a hand-curated documentation page. The summary record built from
// it is emitted unconditionally; section records additionally require the
// page to be fetchable.
type docPage struct {
	Path        string
	Title       string
	Description string
	Keywords    []string
	RelatedDocs []string
}

var documentationPages = []docPage{
	{
		Path:        "/docs/getting-started.html",
		Title:       "Getting Started",
		Description: "First steps after installing: loading your first model, starting a conversation, and finding your way around the app.",
		Keywords:    []string{"quickstart", "tutorial", "first steps", "beginner"},
		RelatedDocs: []string{"/docs/installation.html", "/docs/models.html"},
	},
	{
		Path:        "/docs/installation.html",
		Title:       "Installation Guide",
		Description: "Install the app on Windows, macOS, or Linux, including system requirements and silent installation for managed machines.",
		Keywords:    []string{"install", "setup", "requirements", "windows", "macos", "linux"},
		RelatedDocs: []string{"/docs/getting-started.html", "/docs/troubleshooting.html"},
	},
	{
		Path:        "/docs/models.html",
		Title:       "Choosing a Model",
		Description: "How model size, quantization, and your hardware interact, with recommendations for common setups.",
		Keywords:    []string{"models", "gpu", "ram", "quantization", "performance"},
		RelatedDocs: []string{"/docs/getting-started.html"},
	},
	{
		Path:        "/docs/troubleshooting.html",
		Title:       "Troubleshooting",
		Description: "Fixes for startup failures, slow generation, model loading errors, and GPU detection problems.",
		Keywords:    []string{"error", "crash", "slow", "fix", "problem", "gpu"},
		RelatedDocs: []string{"/docs/faq.html"},
	},
	{
		Path:        "/docs/faq.html",
		Title:       "FAQ",
		Description: "Frequently asked questions about privacy, licensing, updates, and supported platforms.",
		Keywords:    []string{"faq", "questions", "privacy", "license", "updates"},
		RelatedDocs: []string{"/docs/troubleshooting.html"},
	},
}

// indexDocumentationPages emits a summary record per curated page, then
// fetches each page and emits a record per heading found. A page that fails
// to fetch or parse keeps its summary record and contributes nothing else;
// the failure is noted in the report and the remaining pages still run.
func (s *Service) indexDocumentationPages(ctx context.Context) ([]indexdb.SearchRecord, SourceReport) {
	report := SourceReport{Name: sourceDocumentation}

	var records []indexdb.SearchRecord
	for _, page := range documentationPages {
		records = append(records, indexdb.SearchRecord{
			ID:             "doc-" + pathSlug(page.Path),
			Title:          page.Title,
			Content:        page.Description,
			URL:            page.Path,
			Type:           indexdb.TypeDocumentation,
			SearchableText: searchableText(page.Title, page.Description, page.Keywords),
			Relevance:      docRelevance,
			Keywords:       page.Keywords,
			RelatedDocs:    page.RelatedDocs,
		})

		source, err := s.fetcher.getHTML(ctx, page.Path)
		if err != nil {
			s.logger.Warn("skipping sections of unreachable documentation page", "path", page.Path, "err", err.Error())
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %s", page.Path, err.Error()))
			continue
		}

		records = append(records, s.indexDocumentationSections(source, page)...)
	}

	report.Records = len(records)
	return records, report
}

func (s *Service) indexDocumentationSections(source ContentSource, page docPage) []indexdb.SearchRecord {
	var records []indexdb.SearchRecord
	for _, node := range source.Select(docSectionSelectors) {
		title := strings.TrimSpace(node.Text)
		if title == "" {
			continue
		}

		records = append(records, indexdb.SearchRecord{
			ID:             fmt.Sprintf("doc-section-%s-%d", pathSlug(page.Path), len(records)),
			Title:          truncate(title, titleLimit),
			Content:        node.Trailing,
			URL:            anchorURL(page.Path, node.ID),
			Type:           indexdb.TypeDocumentationSection,
			SearchableText: strings.ToLower(title + " " + node.Trailing),
			Relevance:      docSectionRelevance,
			ParentPage:     page.Title,
		})
	}
	return records
}

// pathSlug turns a page path into a stable ID fragment, e.g.
// "/docs/getting-started.html" -> "getting-started".
func pathSlug(path string) string {
	slug := strings.TrimSuffix(path, ".html")
	slug = strings.Trim(slug, "/")
	slug = strings.TrimPrefix(slug, "docs/")
	return strings.ReplaceAll(slug, "/", "-")
}
