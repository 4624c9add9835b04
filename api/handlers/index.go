package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meghashyamc/sitesearch/logger"
	"github.com/meghashyamc/sitesearch/services/index"
)

type RebuildResponse struct {
	RequestID string `json:"request_id"`
}

type StatusResponse struct {
	RequestID string `json:"request_id"`
	Status    int    `json:"status"`
}

func SetupIndex(router *gin.Engine, logger logger.Logger, service *index.Service) {
	router.POST("/index", handleRebuild(service, logger))
	router.GET("/index/status/:id", handleStatus(service, logger))
	router.GET("/index/report", handleReport(service, logger))

}

// handleRebuild queues a debounced index rebuild and hands back a request ID
// the caller can poll. Bursts of rebuild requests coalesce into one build.
func handleRebuild(service *index.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()

		if err := service.Rebuild(requestID); err != nil {
			logger.Warn("could not queue index rebuild", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		writeResponse(c, RebuildResponse{RequestID: requestID}, http.StatusAccepted, nil)
	}
}

func handleStatus(service *index.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Param("id")

		status, err := service.GetStatus(requestID)
		if err != nil {
			logger.Warn("could not get rebuild status", "request_id", requestID, "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotFound, []string{"request not found"})
			return
		}

		writeResponse(c, StatusResponse{RequestID: requestID, Status: status}, http.StatusOK, nil)
	}
}

func handleReport(service *index.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := service.LastReport()
		if err != nil {
			logger.Warn("no build report available", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotFound, []string{"no build report available"})
			return
		}

		writeResponse(c, report, http.StatusOK, nil)
	}
}
