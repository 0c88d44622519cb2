package routes

import (
	"github.com/gin-gonic/gin"

	"construction_console/internal/adapter/http/handlers"
)

const (
	PathEstimates = "/estimates"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.POST("/price", estimateHandler.PriceEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.SaveEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
		estimates.PATCH("/:id/status", estimateHandler.UpdateStatus)
		estimates.POST("/:id/revise", estimateHandler.ReviseEstimate)
		estimates.GET("/:id/revisions", estimateHandler.ListRevisions)
	}
}
