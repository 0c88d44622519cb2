package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"construction_console/internal/adapter/http/handlers"
)

const (
	PathPing    = "/ping"
	PathCompany = "/company"
	PathInsight = "/insights"
	PathExport  = "/export"
	PathSync    = "/sync"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addCompanyRoutes(rg *gin.RouterGroup, companyHandler *handlers.CompanyHandler) {
	company := rg.Group(PathCompany)
	{
		company.GET("/info", companyHandler.GetInfo)
		company.PUT("/info", companyHandler.UpdateInfo)
		company.GET("/logo", companyHandler.GetLogo)
		company.PUT("/logo", companyHandler.UpdateLogo)
		company.DELETE("/logo", companyHandler.DeleteLogo)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	rg.GET(PathInsight, reportHandler.GetInsights)
	rg.GET(PathExport, reportHandler.Export)
	rg.GET(PathSync, reportHandler.GetSyncStatus)
}
