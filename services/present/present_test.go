package present

import (
	"testing"

	"github.com/meghashyamc/sitesearch/db/indexdb"
	"github.com/stretchr/testify/require"
)

func scoredResult(id string, recordType indexdb.RecordType, score float64) indexdb.ScoredResult {
	return indexdb.ScoredResult{
		SearchRecord: indexdb.SearchRecord{
			ID:    id,
			Title: "Title " + id,
			Type:  recordType,
		},
		Score: score,
	}
}

func TestGroupResultsOrdersGroupsByTypePriority(t *testing.T) {
	assert := require.New(t)

	results := []indexdb.ScoredResult{
		scoredResult("p1", indexdb.TypePageContent, 30),
		scoredResult("m1", indexdb.TypeModel, 25),
		scoredResult("s1", indexdb.TypeHomepageSection, 20),
		scoredResult("d1", indexdb.TypeDocumentation, 15),
	}

	groups := GroupResults(results, "")
	assert.Len(groups, 4)
	assert.Equal(indexdb.TypeHomepageSection, groups[0].Type)
	assert.Equal(indexdb.TypeDocumentation, groups[1].Type)
	assert.Equal(indexdb.TypeModel, groups[2].Type)
	assert.Equal(indexdb.TypePageContent, groups[3].Type)
}

func TestGroupResultsKeepsScoreOrderWithinGroups(t *testing.T) {
	assert := require.New(t)

	results := []indexdb.ScoredResult{
		scoredResult("d-high", indexdb.TypeDocumentation, 40),
		scoredResult("d-mid", indexdb.TypeDocumentation, 20),
		scoredResult("d-low", indexdb.TypeDocumentation, 10),
	}

	groups := GroupResults(results, "")
	assert.Len(groups, 1)
	assert.Equal("d-high", groups[0].Results[0].ID)
	assert.Equal("d-mid", groups[0].Results[1].ID)
	assert.Equal("d-low", groups[0].Results[2].ID)
}

func TestGroupResultsUnknownTypesComeLast(t *testing.T) {
	assert := require.New(t)

	results := []indexdb.ScoredResult{
		scoredResult("x1", indexdb.RecordType("changelog"), 50),
		scoredResult("p1", indexdb.TypePageContent, 10),
	}

	groups := GroupResults(results, "")
	assert.Len(groups, 2)
	assert.Equal(indexdb.TypePageContent, groups[0].Type)
	assert.Equal(indexdb.RecordType("changelog"), groups[1].Type)
}

func TestGroupResultsTypeFilter(t *testing.T) {
	assert := require.New(t)

	results := []indexdb.ScoredResult{
		scoredResult("m1", indexdb.TypeModel, 25),
		scoredResult("d1", indexdb.TypeDocumentation, 15),
	}

	filtered := GroupResults(results, string(indexdb.TypeModel))
	assert.Len(filtered, 1)
	assert.Equal(indexdb.TypeModel, filtered[0].Type)

	all := GroupResults(results, FilterAll)
	assert.Len(all, 2)
}

func TestGroupResultsReassignsGlobalIndexes(t *testing.T) {
	assert := require.New(t)

	results := []indexdb.ScoredResult{
		scoredResult("p1", indexdb.TypePageContent, 30),
		scoredResult("s1", indexdb.TypeHomepageSection, 20),
		scoredResult("d1", indexdb.TypeDocumentation, 15),
	}

	flattened := Flatten(GroupResults(results, ""))
	assert.Len(flattened, 3)
	for i, result := range flattened {
		assert.Equal(i, result.GlobalIndex)
	}
	// Display order follows group priority, not incoming rank.
	assert.Equal("s1", flattened[0].ID)
	assert.Equal("d1", flattened[1].ID)
	assert.Equal("p1", flattened[2].ID)
}

func TestGroupResultsEmpty(t *testing.T) {
	assert := require.New(t)

	assert.Empty(GroupResults(nil, ""))
	assert.Empty(GroupResults(nil, string(indexdb.TypeModel)))
}

func TestHighlightWrapsAllOccurrences(t *testing.T) {
	assert := require.New(t)

	highlighted := Highlight("Install the installer", "install")
	assert.Equal("<mark>Install</mark> the <mark>install</mark>er", highlighted)
}

func TestHighlightPreservesCasing(t *testing.T) {
	assert := require.New(t)

	highlighted := Highlight("GPU and gpu", "GPU")
	assert.Equal("<mark>GPU</mark> and <mark>gpu</mark>", highlighted)
}

func TestHighlightNoMatch(t *testing.T) {
	assert := require.New(t)

	assert.Equal("Nothing here", Highlight("Nothing here", "install"))
	assert.Equal("Nothing here", Highlight("Nothing here", ""))
}

func TestResolveNavigationsAgainstCurrentPage(t *testing.T) {
	assert := require.New(t)

	results := []indexdb.ScoredResult{
		scoredResult("s1", indexdb.TypeHomepageSection, 20),
		scoredResult("d1", indexdb.TypeDocumentation, 15),
	}
	results[0].URL = "/#download"
	results[1].URL = "/docs/installation.html"

	groups := ResolveNavigations(GroupResults(results, ""), "/")
	flattened := Flatten(groups)
	assert.Len(flattened, 2)

	// An anchor on the page the user is on scrolls; another page navigates.
	assert.Equal(Navigation{Action: NavActionScroll, Target: "download"}, flattened[0].Navigation)
	assert.Equal(Navigation{Action: NavActionNavigate, Target: "/docs/installation.html"}, flattened[1].Navigation)
}

func TestResolveNavigationsEmptyPathMeansRoot(t *testing.T) {
	assert := require.New(t)

	result := scoredResult("s1", indexdb.TypeHomepageSection, 20)
	result.URL = "/#features"

	groups := ResolveNavigations(GroupResults([]indexdb.ScoredResult{result}, ""), "")
	assert.Equal(Navigation{Action: NavActionScroll, Target: "features"}, groups[0].Results[0].Navigation)
}

func TestSelectionWrapsCircularly(t *testing.T) {
	assert := require.New(t)

	selection := NewSelection(3)
	assert.Equal(-1, selection.Current())

	assert.Equal(0, selection.Next())
	assert.Equal(1, selection.Next())
	assert.Equal(2, selection.Next())
	assert.Equal(0, selection.Next()) // wraps to top

	assert.Equal(2, selection.Prev()) // wraps to bottom
	assert.Equal(1, selection.Prev())
}

func TestSelectionPrevFromStartWraps(t *testing.T) {
	assert := require.New(t)

	selection := NewSelection(3)
	assert.Equal(2, selection.Prev())
}

func TestSelectionSelect(t *testing.T) {
	assert := require.New(t)

	selection := NewSelection(3)
	selection.Select(1)
	assert.Equal(1, selection.Current())
	assert.Equal(2, selection.Next())

	// Out-of-range positions clear the selection.
	selection.Select(5)
	assert.Equal(-1, selection.Current())
	selection.Select(-1)
	assert.Equal(-1, selection.Current())
}

func TestSelectionEmptyList(t *testing.T) {
	assert := require.New(t)

	selection := NewSelection(0)
	assert.Equal(-1, selection.Next())
	assert.Equal(-1, selection.Prev())
	assert.Equal(-1, selection.Current())
}

func TestResolveNavigation(t *testing.T) {
	testCases := []struct {
		name        string
		url         string
		currentPath string
		expected    Navigation
	}{
		{
			name:        "SamePageAnchor",
			url:         "#features",
			currentPath: "/",
			expected:    Navigation{Action: NavActionScroll, Target: "features"},
		},
		{
			name:        "AnchorOnCurrentPage",
			url:         "/docs/installation.html#requirements",
			currentPath: "/docs/installation.html",
			expected:    Navigation{Action: NavActionScroll, Target: "requirements"},
		},
		{
			name:        "CurrentPagePath",
			url:         "/docs/installation.html",
			currentPath: "/docs/installation.html",
			expected:    Navigation{Action: NavActionScrollTop},
		},
		{
			name:        "OtherPage",
			url:         "/docs/models.html",
			currentPath: "/",
			expected:    Navigation{Action: NavActionNavigate, Target: "/docs/models.html"},
		},
		{
			name:        "AnchorOnOtherPage",
			url:         "/docs/models.html#sizes",
			currentPath: "/",
			expected:    Navigation{Action: NavActionNavigate, Target: "/docs/models.html#sizes"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(testCase.expected, ResolveNavigation(testCase.url, testCase.currentPath))
		})
	}
}
