package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"orion/internal/models"
	"orion/internal/services"
	"orion/internal/utils"
	"orion/pkg/logger"
)

type TrailHandler struct {
	trailService *services.TrailService
	log          *logger.Logger
}

func NewTrailHandler(trailService *services.TrailService, log *logger.Logger) *TrailHandler {
	return &TrailHandler{
		trailService: trailService,
		log:          log,
	}
}

// List returns one page of trails with optional filters and sorting.
func (h *TrailHandler) List(c *gin.Context) {
	params, errs := utils.GetPaginationParams(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	opts, errs := parseTrailListOptions(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	trails, pagination, err := h.trailService.List(c.Request.Context(), opts, params)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	utils.SuccessResponseWithPagination(c, trails, pagination)
}

// Nearby returns open trails within a radius of a point, nearest first.
func (h *TrailHandler) Nearby(c *gin.Context) {
	params, errs := utils.GetPaginationParams(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	origin, maxDistance, geoErrs := parseNearbyQuery(c)
	if geoErrs != nil {
		utils.ValidationErrorResponse(c, geoErrs)
		return
	}

	trails, pagination, err := h.trailService.SearchNear(c.Request.Context(), origin, maxDistance, params)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	utils.SuccessResponseWithPagination(c, trails, pagination)
}

// Search matches trails by free-text query over name, description and tags.
func (h *TrailHandler) Search(c *gin.Context) {
	opts, errs := parseTrailListOptions(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	trails, err := h.trailService.Search(c.Request.Context(), c.Query("q"), opts)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	utils.SuccessResponseWithTotal(c, trails, len(trails))
}

func (h *TrailHandler) Get(c *gin.Context) {
	trail, err := h.trailService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Trail retrieved successfully", trail)
}

func (h *TrailHandler) Create(c *gin.Context) {
	var trail models.Trail
	if err := c.ShouldBindJSON(&trail); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.trailService.Create(c.Request.Context(), &trail)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.CreatedResponse(c, "Trail created successfully", created)
}

func (h *TrailHandler) Update(c *gin.Context) {
	var update models.TrailUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	trail, err := h.trailService.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Trail updated successfully", trail)
}

func (h *TrailHandler) Delete(c *gin.Context) {
	if err := h.trailService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, "Trail deleted successfully", nil)
}

// parseTrailListOptions reads the filter and sort query parameters. All
// parse failures are collected and reported together.
func parseTrailListOptions(c *gin.Context) (models.TrailListOptions, []string) {
	var opts models.TrailListOptions
	var errs []string

	if raw := c.Query("difficulty"); raw != "" {
		d := models.TrailDifficulty(raw)
		if !d.IsValid() {
			errs = append(errs, "Invalid difficulty level")
		} else {
			opts.Difficulty = d
		}
	}
	if raw := c.Query("status"); raw != "" {
		st := models.TrailStatus(raw)
		if !st.IsValid() {
			errs = append(errs, "Invalid trail status")
		} else {
			opts.Status = st
		}
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				opts.Tags = append(opts.Tags, tag)
			}
		}
	}

	opts.MinDistance = parseFloatParam(c, "minDistance", &errs)
	opts.MaxDistance = parseFloatParam(c, "maxDistance", &errs)
	opts.MinElevation = parseFloatParam(c, "minElevation", &errs)
	opts.MaxElevation = parseFloatParam(c, "maxElevation", &errs)

	opts.Sort = c.DefaultQuery("sort", utils.SortCreatedAt)
	if !utils.IsValidSortField(opts.Sort) {
		errs = append(errs, fmt.Sprintf("sort must be one of: %s", strings.Join(utils.TrailSortFields(), ", ")))
	}
	opts.Order = c.DefaultQuery("order", utils.OrderDesc)
	if opts.Order != utils.OrderAsc && opts.Order != utils.OrderDesc {
		errs = append(errs, "order must be asc or desc")
	}

	if errs != nil {
		return models.TrailListOptions{}, errs
	}
	return opts, nil
}

func parseFloatParam(c *gin.Context, name string, errs *[]string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		*errs = append(*errs, name+" must be a non-negative number")
		return nil
	}
	return &v
}

// parseNearbyQuery reads the geo-search coordinates and radius. The radius
// defaults to 10km and is clamped to its documented bounds by rejection,
// not coercion.
func parseNearbyQuery(c *gin.Context) (models.GeoPoint, float64, []string) {
	var errs []string

	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		errs = append(errs, "latitude is required and must be a number")
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		errs = append(errs, "longitude is required and must be a number")
	}

	origin := models.GeoPoint{Latitude: lat, Longitude: lng}
	if len(errs) == 0 && !origin.IsValid() {
		errs = append(errs, "Coordinates out of range")
	}

	maxDistance := utils.DefaultSearchRadiusM
	if raw := c.Query("maxDistance"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < utils.MinSearchRadiusM || v > utils.MaxSearchRadiusM {
			errs = append(errs, fmt.Sprintf("maxDistance must be between %.0f and %.0f meters", utils.MinSearchRadiusM, utils.MaxSearchRadiusM))
		} else {
			maxDistance = v
		}
	}

	if errs != nil {
		return models.GeoPoint{}, 0, errs
	}
	return origin, maxDistance, nil
}
