package routes

import (
	"github.com/gin-gonic/gin"

	"orion/internal/handlers"
)

// SetupAlertRoutes sets up routes for trail alerts.
func SetupAlertRoutes(r *gin.RouterGroup, alertHandler *handlers.AlertHandler, auth gin.HandlerFunc) {
	alerts := r.Group("/alerts")
	{
		alerts.GET("", alertHandler.ListByTrail)
		alerts.GET("/all", alertHandler.ListAll)
		alerts.GET("/:id", alertHandler.Get)

		alerts.POST("", auth, alertHandler.Create)
		alerts.PUT("/:id", auth, alertHandler.Update)
		alerts.DELETE("/:id", auth, alertHandler.Delete)
	}
}
