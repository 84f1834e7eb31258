package routes

import (
	"github.com/gin-gonic/gin"

	"orion/internal/handlers"
)

// SetupReviewRoutes sets up routes for trail reviews.
func SetupReviewRoutes(r *gin.RouterGroup, reviewHandler *handlers.ReviewHandler, auth gin.HandlerFunc) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", reviewHandler.ListByTrail)
		reviews.GET("/all", reviewHandler.ListAll)
		reviews.GET("/:trailId/:reviewId", reviewHandler.Get)

		reviews.POST("", auth, reviewHandler.Create)
		reviews.PUT("/:trailId/:reviewId", auth, reviewHandler.Update)
		reviews.DELETE("/:trailId/:reviewId", auth, reviewHandler.Delete)
	}
}
