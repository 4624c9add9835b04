package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/sitesearch/logger"
	"github.com/meghashyamc/sitesearch/services/present"
	"github.com/meghashyamc/sitesearch/services/search"
	"github.com/meghashyamc/sitesearch/validation"
)

type SearchRequest struct {
	Query string `form:"query" json:"query" validate:"required,valid_query,min=1,max=200"`
	Type  string `form:"type" json:"type" validate:"valid_type"`
	// Path is the page the caller is on; result activations are resolved
	// against it. Empty means the site root.
	Path string `form:"path" json:"path" validate:"max=300"`
	// Selected is the caller's currently highlighted position in the
	// flattened result list, -1 for none.
	Selected int `form:"selected,default=-1" json:"selected"`
}

// SelectionState tells the caller where its highlighted result sits and where
// the next and previous moves land, wrapping circularly.
type SelectionState struct {
	Current int `json:"current"`
	Next    int `json:"next"`
	Prev    int `json:"prev"`
}

type SearchResponse struct {
	Query string `json:"query"`
	Total int    `json:"total"`
	// Groups are ordered by type priority; results keep score order inside
	// each group.
	Groups    []present.Group `json:"groups"`
	Selection SelectionState  `json:"selection"`
	// SuggestedQueries is set when nothing matched.
	SuggestedQueries []string `json:"suggested_queries,omitempty"`
}

func SetupSearch(router *gin.Engine, logger logger.Logger, service *search.Service, validator *validation.Validator) {
	router.GET("/search", handleSearch(service, logger, validator))

}

// selectionState precomputes where up and down movement lands from the
// caller's current position, so the client only echoes indices back.
func selectionState(total int, current int) SelectionState {
	selection := present.NewSelection(total)
	selection.Select(current)
	current = selection.Current()

	next := selection.Next()
	selection.Select(current)
	prev := selection.Prev()

	return SelectionState{Current: current, Next: next, Prev: prev}
}

func handleSearch(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		query := strings.TrimSpace(request.Query)
		results := service.Search(query)

		groups := present.GroupResults(results, request.Type)
		groups = present.HighlightGroups(groups, query)
		groups = present.ResolveNavigations(groups, request.Path)
		if groups == nil {
			groups = []present.Group{}
		}
		total := len(present.Flatten(groups))

		searchResponse := SearchResponse{
			Query:     query,
			Total:     total,
			Groups:    groups,
			Selection: selectionState(total, request.Selected),
		}
		if searchResponse.Total == 0 {
			searchResponse.SuggestedQueries = present.NoResultsSuggestions
		}

		writeResponse(c, searchResponse, http.StatusOK, nil)
	}
}
