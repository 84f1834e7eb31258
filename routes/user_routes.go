package routes

import (
	"github.com/gin-gonic/gin"

	"orion/internal/handlers"
)

// SetupUserRoutes sets up routes for user profiles and trail lists.
func SetupUserRoutes(r *gin.RouterGroup, userHandler *handlers.UserHandler, auth gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.GET("/:id", userHandler.GetProfile)
		users.GET("/:id/trails", userHandler.GetSavedTrails)
		users.PUT("/:id", auth, userHandler.UpdateProfile)

		users.POST("/favorites", auth, userHandler.AddFavorite)
		users.DELETE("/favorites", auth, userHandler.RemoveFavorite)
		users.POST("/wishlist", auth, userHandler.AddWishlist)
		users.DELETE("/wishlist", auth, userHandler.RemoveWishlist)
		users.POST("/completed", auth, userHandler.MarkCompleted)
		users.DELETE("/completed", auth, userHandler.RemoveCompleted)
	}
}
