package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/recommendation"
	"github.com/stitts-dev/caddie/internal/services"
	"github.com/stitts-dev/caddie/internal/store"
	"github.com/stitts-dev/caddie/internal/validation"
	"github.com/stitts-dev/caddie/pkg/utils"
)

// respondError maps service errors onto the response envelope. Internal
// failures are logged but never echoed to the client.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		utils.SendValidationError(c, "Invalid request", verr.Details())
	case errors.Is(err, recommendation.ErrInvalidInput):
		utils.SendValidationError(c, "Invalid recommendation input", err.Error())
	case errors.Is(err, store.ErrPlayerNotFound):
		utils.SendNotFound(c, "Player baseline not found")
	case errors.Is(err, store.ErrHoleNotFound):
		utils.SendNotFound(c, "Hole not found")
	case errors.Is(err, store.ErrWeatherNotFound):
		utils.SendNotFound(c, "Weather snapshot not found")
	case errors.Is(err, store.ErrCourseNotFound):
		utils.SendNotFound(c, "Course not found")
	case errors.Is(err, store.ErrNotFound):
		utils.SendNotFound(c, "Resource not found")
	case errors.Is(err, services.ErrWeatherUnavailable):
		log.WithError(err).Warn("Weather provider unavailable")
		utils.SendUpstreamError(c, "Weather provider unavailable")
	default:
		_ = c.Error(err)
		log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		utils.SendInternalError(c, "Internal server error")
	}
}

// bindError reports a malformed JSON body
func bindError(c *gin.Context, err error) {
	utils.SendValidationError(c, "Invalid request body", err.Error())
}
