package index

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ContentNode is one element selected out of a page, flattened to the fields
// indexing needs.
type ContentNode struct {
	Tag     string
	ID      string
	Classes []string
	Text    string
	// Heading is the text of the nearest heading above the node, empty if
	// none was found.
	Heading string
	// Trailing is the text following a heading node up to the next heading,
	// capped at sectionContentLimit. Only set for heading nodes.
	Trailing string
}

// ContentSource yields the elements of one page. The production
// implementation wraps a parsed HTML document; tests use a fake so indexing
// logic runs without fetching anything.
type ContentSource interface {
	Select(selector string) []ContentNode
	HasElement(id string) bool
}

// HTMLSource is a ContentSource over a parsed HTML document.
type HTMLSource struct {
	doc *goquery.Document
}

func NewHTMLSource(r io.Reader) (*HTMLSource, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &HTMLSource{doc: doc}, nil
}

func (s *HTMLSource) Select(selector string) []ContentNode {
	var nodes []ContentNode
	s.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		class, _ := sel.Attr("class")
		tag := goquery.NodeName(sel)

		node := ContentNode{
			Tag:     tag,
			ID:      id,
			Classes: strings.Fields(class),
			Text:    strings.TrimSpace(sel.Text()),
		}
		if isHeadingTag(tag) {
			node.Trailing = trailingText(sel)
		} else {
			node.Heading = nearestHeading(sel)
		}
		nodes = append(nodes, node)
	})
	return nodes
}

func (s *HTMLSource) HasElement(id string) bool {
	if id == "" {
		return false
	}
	return s.doc.Find("#" + id).Length() > 0
}

func isHeadingTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// nearestHeading walks previous siblings, then up through ancestors, looking
// for the closest heading above the node in document order.
func nearestHeading(sel *goquery.Selection) string {
	for cur := sel; cur.Length() > 0; cur = cur.Parent() {
		for prev := cur.Prev(); prev.Length() > 0; prev = prev.Prev() {
			if isHeadingTag(goquery.NodeName(prev)) {
				return strings.TrimSpace(prev.Text())
			}
		}
	}
	return ""
}

// trailingText gathers the text of siblings following a heading, stopping at
// the next heading, capped at sectionContentLimit characters.
func trailingText(heading *goquery.Selection) string {
	var parts []string
	length := 0
	for next := heading.Next(); next.Length() > 0; next = next.Next() {
		if isHeadingTag(goquery.NodeName(next)) {
			break
		}
		text := strings.TrimSpace(next.Text())
		if text == "" {
			continue
		}
		parts = append(parts, text)
		length += len(text)
		if length >= sectionContentLimit {
			break
		}
	}
	return truncate(strings.Join(parts, " "), sectionContentLimit)
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	truncated := []rune(text)
	if len(truncated) <= limit {
		return text
	}
	return string(truncated[:limit])
}
