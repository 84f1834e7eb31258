package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"orion/internal/models"
	"orion/internal/services"
	"orion/internal/utils"
	"orion/pkg/logger"
)

type UserHandler struct {
	userService *services.UserService
	log         *logger.Logger
}

func NewUserHandler(userService *services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// listMutation is the body of every list add/remove endpoint.
type listMutation struct {
	UserID  string `json:"userId"`
	TrailID string `json:"trailId"`
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Profile retrieved successfully", user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var profile models.ProfileInfo
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), c.Param("id"), profile)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Profile updated successfully", user)
}

// GetSavedTrails returns the user's favourites, wishlist and completed
// lists resolved to full trail documents.
func (h *UserHandler) GetSavedTrails(c *gin.Context) {
	saved, err := h.userService.GetSavedTrails(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Saved trails retrieved successfully", saved)
}

func (h *UserHandler) AddFavorite(c *gin.Context) {
	h.mutateList(c, h.userService.AddFavorite, "Trail added to favourites")
}

func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	h.mutateList(c, h.userService.RemoveFavorite, "Trail removed from favourites")
}

func (h *UserHandler) AddWishlist(c *gin.Context) {
	h.mutateList(c, h.userService.AddWishlist, "Trail added to wishlist")
}

func (h *UserHandler) RemoveWishlist(c *gin.Context) {
	h.mutateList(c, h.userService.RemoveWishlist, "Trail removed from wishlist")
}

func (h *UserHandler) MarkCompleted(c *gin.Context) {
	h.mutateList(c, h.userService.MarkCompleted, "Trail marked as completed")
}

func (h *UserHandler) RemoveCompleted(c *gin.Context) {
	h.mutateList(c, h.userService.RemoveCompleted, "Trail removed from completed")
}

// mutateList binds the shared {userId, trailId} body, runs the mutation and
// answers with a uniform envelope.
func (h *UserHandler) mutateList(c *gin.Context, op func(ctx context.Context, userID, trailID string) error, message string) {
	var body listMutation
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	var errs []string
	if body.UserID == "" {
		errs = append(errs, "userId is required")
	}
	if body.TrailID == "" {
		errs = append(errs, "trailId is required")
	}
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := op(c.Request.Context(), body.UserID, body.TrailID); err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, message, nil)
}
