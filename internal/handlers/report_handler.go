package handlers

import (
	"github.com/gin-gonic/gin"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/services"
	"orion/internal/utils"
	"orion/pkg/logger"
)

type ReportHandler struct {
	reportService *services.ReportService
	log           *logger.Logger
}

func NewReportHandler(reportService *services.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		log:           log,
	}
}

// ListAll returns one page of reports, optionally filtered by status and
// type.
func (h *ReportHandler) ListAll(c *gin.Context) {
	params, errs := utils.GetPaginationParams(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	var opts interfaces.ReportListOptions
	var filterErrs []string
	if raw := c.Query("status"); raw != "" {
		st := models.ReportStatus(raw)
		if !st.IsValid() {
			filterErrs = append(filterErrs, "Invalid status")
		} else {
			opts.Status = st
		}
	}
	if raw := c.Query("type"); raw != "" {
		t := models.ReportType(raw)
		if !t.IsValid() {
			filterErrs = append(filterErrs, "Invalid report type")
		} else {
			opts.Type = t
		}
	}
	if filterErrs != nil {
		utils.ValidationErrorResponse(c, filterErrs)
		return
	}

	reports, pagination, err := h.reportService.ListAll(c.Request.Context(), opts, params)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponseWithPagination(c, reports, pagination)
}

// ListByReporter returns the reports filed by one user, newest first.
func (h *ReportHandler) ListByReporter(c *gin.Context) {
	params, errs := utils.GetPaginationParams(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	reports, err := h.reportService.ListByReporter(c.Request.Context(), c.Param("userId"), params)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponseWithTotal(c, reports, len(reports))
}

func (h *ReportHandler) Create(c *gin.Context) {
	var report models.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.reportService.Create(c.Request.Context(), &report)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.CreatedResponse(c, "Report submitted successfully", created)
}

func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.reportService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Report retrieved successfully", report)
}

func (h *ReportHandler) Update(c *gin.Context) {
	var update models.ReportUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	report, err := h.reportService.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Report updated successfully", report)
}

// UpdateStatus moves a report to a new moderation status.
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status models.ReportStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	report, err := h.reportService.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Report status updated successfully", report)
}

func (h *ReportHandler) Delete(c *gin.Context) {
	if err := h.reportService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Report deleted successfully", nil)
}
