package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/sitesearch/db/indexdb"
	"github.com/meghashyamc/sitesearch/logger"
	"github.com/meghashyamc/sitesearch/services/search"
	"github.com/meghashyamc/sitesearch/validation"
)

const defaultRelatedLimit = 5

type RelatedRequest struct {
	ID string `form:"id" json:"id" validate:"required,min=1,max=200"`
}

type RelatedResponse struct {
	ID      string                 `json:"id"`
	Results []indexdb.ScoredResult `json:"results"`
}

func SetupRelated(router *gin.Engine, logger logger.Logger, service *search.Service, validator *validation.Validator) {
	router.GET("/related", handleRelated(service, logger, validator))

}

func handleRelated(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := RelatedRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from related request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate related request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		results, err := service.Related(request.ID, defaultRelatedLimit)
		if err != nil {
			if errors.Is(err, search.ErrRecordNotFound) {
				c.Abort()
				writeResponse(c, nil, http.StatusNotFound, []string{err.Error()})
				return
			}
			logger.Error("related lookup failed", "id", request.ID, "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}
		if results == nil {
			results = []indexdb.ScoredResult{}
		}

		writeResponse(c, RelatedResponse{ID: request.ID, Results: results}, http.StatusOK, nil)
	}
}
