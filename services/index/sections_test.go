package index

import (
	"strings"
	"testing"

	"github.com/meghashyamc/sitesearch/db/indexdb"
	"github.com/stretchr/testify/require"
)

func TestIndexHomepageSectionsSkipsMissingSections(t *testing.T) {
	assert := require.New(t)
	svc := &Service{logger: newTestLogger()}

	source := &fakeSource{elementIDs: map[string]bool{
		"features": true,
		"download": true,
	}}

	records, report := svc.indexHomepageSections(source)
	assert.Len(records, 2)
	assert.Equal(2, report.Records)
	assert.Equal("section-features", records[0].ID)
	assert.Equal("section-download", records[1].ID)
}

func TestIndexHomepageSectionsRecordFields(t *testing.T) {
	assert := require.New(t)
	svc := &Service{logger: newTestLogger()}

	source := &fakeSource{elementIDs: map[string]bool{"download": true}}

	records, _ := svc.indexHomepageSections(source)
	assert.Len(records, 1)

	record := records[0]
	assert.Equal("Download", record.Title)
	assert.Equal("/#download", record.URL)
	assert.Equal(indexdb.TypeHomepageSection, record.Type)
	assert.Equal(sectionRelevance, record.Relevance)
	assert.Contains(record.Keywords, "install")
	assert.Contains(record.RelatedDocs, "/docs/installation.html")

	// Keyword aliases are matchable even though they are not in the visible
	// description.
	assert.Contains(record.SearchableText, "macos")
	assert.Equal(strings.ToLower(record.SearchableText), record.SearchableText)
}

func TestIndexHomepageSectionsWithoutHomepage(t *testing.T) {
	assert := require.New(t)
	svc := &Service{logger: newTestLogger()}

	records, report := svc.indexHomepageSections(nil)
	assert.Empty(records)
	assert.NotEmpty(report.Errors)
}

func TestSearchableText(t *testing.T) {
	assert := require.New(t)

	got := searchableText("Model Comparison", "Compare models.", []string{"GPU", "ram"})
	assert.Equal("model comparison compare models. gpu ram", got)
}
