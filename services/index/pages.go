package index

import (
	"fmt"
	"strings"

	"github.com/meghashyamc/sitesearch/db/indexdb"
)

// Selectors scanned for page-content records: headings, paragraphs, and the
// named content-card containers.
const pageSelectors = "h1, h2, h3, h4, h5, h6, p, .hero-card, .feature-card, .use-case-card"

const (
	// Elements with this much trimmed text or less are noise, not content.
	minContentLength = 10
	// Display length of a page-content snippet.
	pageContentLimit     = 150
	titleLimit           = 80
	defaultFallbackTitle = "Content"
)

// Static a-priori weight per tag. Elements not in the table (the card
// containers, typically divs) weigh the same as a paragraph.
var tagRelevance = map[string]int{
	"h1": 10,
	"h2": 8,
	"h3": 7,
	"h4": 6,
	"h5": 5,
	"h6": 4,
	"p":  4,
}

const defaultTagRelevance = 4

// Flat bonus for the known content-card classes.
var cardClassBonus = map[string]int{
	"hero-card":     3,
	"feature-card":  2,
	"use-case-card": 2,
}

// indexSitePages scans the homepage for headings, paragraphs and content
// cards, emitting one page-content record per element carrying enough text.
func (s *Service) indexSitePages(source ContentSource) ([]indexdb.SearchRecord, SourceReport) {
	report := SourceReport{Name: sourceSitePages}
	if source == nil {
		report.Errors = append(report.Errors, "homepage unavailable")
		return nil, report
	}

	var records []indexdb.SearchRecord
	for _, node := range source.Select(pageSelectors) {
		if len(node.Text) <= minContentLength {
			continue
		}

		title := pageContentTitle(node)
		record := indexdb.SearchRecord{
			ID:             fmt.Sprintf("page-content-%d", len(records)),
			Title:          title,
			Content:        truncate(node.Text, pageContentLimit),
			URL:            anchorURL("/", node.ID),
			Type:           indexdb.TypePageContent,
			SearchableText: strings.ToLower(title + " " + node.Text),
			Relevance:      contentRelevance(node),
		}
		records = append(records, record)
	}

	report.Records = len(records)
	return records, report
}

// pageContentTitle uses a heading's own text as its title; anything else gets
// the nearest heading above it, or a fixed fallback.
func pageContentTitle(node ContentNode) string {
	if isHeadingTag(node.Tag) {
		return truncate(node.Text, titleLimit)
	}
	if node.Heading != "" {
		return truncate(node.Heading, titleLimit)
	}
	return defaultFallbackTitle
}

func contentRelevance(node ContentNode) int {
	relevance, ok := tagRelevance[node.Tag]
	if !ok {
		relevance = defaultTagRelevance
	}
	for _, class := range node.Classes {
		if bonus, ok := cardClassBonus[class]; ok {
			relevance += bonus
			break
		}
	}
	return relevance
}

func anchorURL(path string, elementID string) string {
	if elementID == "" {
		return path
	}
	return path + "#" + elementID
}
