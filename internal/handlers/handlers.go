// Package handlers exposes the HTTP surface. Handlers parse and validate
// request input, call the service layer, and translate typed service errors
// into response status codes.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"orion/internal/services"
	"orion/internal/utils"
	"orion/pkg/logger"
)

// handleServiceError maps a service-layer error onto the response envelope.
// Unrecognized errors are logged and answered with a bare 500.
func handleServiceError(c *gin.Context, log *logger.Logger, err error) {
	if v, ok := services.AsValidation(err); ok {
		utils.ValidationErrorResponse(c, v.Errors)
		return
	}

	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		utils.NotFoundResponse(c, nf.Resource)
		return
	}

	if services.IsConflict(err) {
		utils.ConflictResponse(c, err.Error())
		return
	}

	log.WithError(err).WithFields(map[string]interface{}{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("request failed")
	utils.InternalServerErrorResponse(c)
}
