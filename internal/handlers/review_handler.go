package handlers

import (
	"github.com/gin-gonic/gin"

	"orion/internal/models"
	"orion/internal/services"
	"orion/internal/utils"
	"orion/pkg/logger"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
	log           *logger.Logger
}

func NewReviewHandler(reviewService *services.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		log:           log,
	}
}

// ListByTrail returns every review on the trail named by the trailId query
// parameter, newest first.
func (h *ReviewHandler) ListByTrail(c *gin.Context) {
	trailID := c.Query("trailId")
	if trailID == "" {
		utils.ValidationErrorResponse(c, []string{"trailId is required"})
		return
	}

	reviews, err := h.reviewService.ListByTrail(c.Request.Context(), trailID)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponseWithTotal(c, reviews, len(reviews))
}

// ListAll walks reviews across every trail, optionally filtered to one.
func (h *ReviewHandler) ListAll(c *gin.Context) {
	params, errs := utils.GetPaginationParams(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	reviews, err := h.reviewService.ListAll(c.Request.Context(), c.Query("trailId"), params)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponseWithTotal(c, reviews, len(reviews))
}

// Create posts a review. The target trail comes from the request body.
func (h *ReviewHandler) Create(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}
	if review.TrailID == "" {
		utils.ValidationErrorResponse(c, []string{"trailId is required"})
		return
	}

	created, err := h.reviewService.Create(c.Request.Context(), review.TrailID, &review)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.CreatedResponse(c, "Review created successfully", created)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.reviewService.GetByID(c.Request.Context(), c.Param("trailId"), c.Param("reviewId"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Review retrieved successfully", review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var update models.ReviewUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), c.Param("trailId"), c.Param("reviewId"), &update)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Review updated successfully", review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewService.Delete(c.Request.Context(), c.Param("trailId"), c.Param("reviewId")); err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Review deleted successfully", nil)
}
