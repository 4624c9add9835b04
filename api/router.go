package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/sitesearch/api/handlers"
	"github.com/meghashyamc/sitesearch/logger"
	"github.com/meghashyamc/sitesearch/services/index"
	"github.com/meghashyamc/sitesearch/services/search"
	"github.com/meghashyamc/sitesearch/validation"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, searchService *search.Service, indexService *index.Service, validator *validation.Validator) {
	router.GET("/health", health())

	handlers.SetupSearch(router, logger, searchService, validator)
	handlers.SetupSuggest(router, logger, searchService, validator)
	handlers.SetupRelated(router, logger, searchService, validator)
	handlers.SetupIndex(router, logger, indexService)

}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter() *gin.Engine {
	router := gin.Default()
	router.UseRawPath = true
	router.Use(_CORSMiddleware())
	router.Use(gin.Recovery())

	return router
}
