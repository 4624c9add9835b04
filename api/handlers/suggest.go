package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/sitesearch/logger"
	"github.com/meghashyamc/sitesearch/services/search"
	"github.com/meghashyamc/sitesearch/validation"
)

type SuggestRequest struct {
	Query string `form:"query" json:"query" validate:"required,valid_query,min=1,max=200"`
}

type SuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

func SetupSuggest(router *gin.Engine, logger logger.Logger, service *search.Service, validator *validation.Validator) {
	router.GET("/suggest", handleSuggest(service, logger, validator))

}

func handleSuggest(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SuggestRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from suggest request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate suggest request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		suggestions := service.Suggest(request.Query)
		if suggestions == nil {
			suggestions = []string{}
		}

		writeResponse(c, SuggestResponse{Query: request.Query, Suggestions: suggestions}, http.StatusOK, nil)
	}
}
