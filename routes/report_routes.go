package routes

import (
	"github.com/gin-gonic/gin"

	"orion/internal/handlers"
)

// SetupReportRoutes sets up routes for moderation reports. Listing and
// administration require auth; filing a report does not.
func SetupReportRoutes(r *gin.RouterGroup, reportHandler *handlers.ReportHandler, auth gin.HandlerFunc) {
	reports := r.Group("/reports")
	{
		reports.POST("", reportHandler.Create)

		reports.GET("", auth, reportHandler.ListAll)
		reports.GET("/user/:userId", auth, reportHandler.ListByReporter)
		reports.GET("/:id", auth, reportHandler.Get)
		reports.PUT("/:id", auth, reportHandler.Update)
		reports.PUT("/:id/status", auth, reportHandler.UpdateStatus)
		reports.DELETE("/:id", auth, reportHandler.Delete)
	}
}
