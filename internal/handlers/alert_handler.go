package handlers

import (
	"github.com/gin-gonic/gin"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/services"
	"orion/internal/utils"
	"orion/pkg/logger"
)

type AlertHandler struct {
	alertService *services.AlertService
	log          *logger.Logger
}

func NewAlertHandler(alertService *services.AlertService, log *logger.Logger) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		log:          log,
	}
}

// ListByTrail returns the active alerts on the trail named by the trailId
// query parameter, newest first.
func (h *AlertHandler) ListByTrail(c *gin.Context) {
	trailID := c.Query("trailId")
	if trailID == "" {
		utils.ValidationErrorResponse(c, []string{"trailId is required"})
		return
	}

	alerts, err := h.alertService.ListByTrail(c.Request.Context(), trailID)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponseWithTotal(c, alerts, len(alerts))
}

// ListAll returns one page of alerts across all trails. The status query
// parameter selects active, inactive or all; unscoped listings include
// inactive alerts by default.
func (h *AlertHandler) ListAll(c *gin.Context) {
	params, errs := utils.GetPaginationParams(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	status := interfaces.AlertStatusFilter(c.DefaultQuery("status", string(interfaces.AlertFilterAll)))
	switch status {
	case interfaces.AlertFilterAll, interfaces.AlertFilterActive, interfaces.AlertFilterInactive:
	default:
		utils.ValidationErrorResponse(c, []string{"status must be one of: all, active, inactive"})
		return
	}

	alerts, pagination, err := h.alertService.ListAll(c.Request.Context(), status, params)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponseWithPagination(c, alerts, pagination)
}

func (h *AlertHandler) Create(c *gin.Context) {
	var create models.AlertCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	alert, err := h.alertService.Create(c.Request.Context(), &create)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.CreatedResponse(c, "Alert created successfully", alert)
}

func (h *AlertHandler) Get(c *gin.Context) {
	alert, err := h.alertService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Alert retrieved successfully", alert)
}

func (h *AlertHandler) Update(c *gin.Context) {
	var update models.AlertUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	alert, err := h.alertService.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Alert updated successfully", alert)
}

func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.alertService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Alert deleted successfully", nil)
}
