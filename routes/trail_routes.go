package routes

import (
	"github.com/gin-gonic/gin"

	"orion/internal/handlers"
)

// SetupTrailRoutes sets up routes for trail CRUD, listing and search.
func SetupTrailRoutes(r *gin.RouterGroup, trailHandler *handlers.TrailHandler, auth gin.HandlerFunc) {
	trails := r.Group("/trails")
	{
		trails.GET("", trailHandler.List)
		trails.GET("/search", trailHandler.Search)
		trails.GET("/near", trailHandler.Nearby)
		trails.GET("/:id", trailHandler.Get)

		trails.POST("", auth, trailHandler.Create)
		trails.PUT("/:id", auth, trailHandler.Update)
		trails.DELETE("/:id", auth, trailHandler.Delete)
	}
}
