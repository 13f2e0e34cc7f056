package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/api/middleware"
	"github.com/stitts-dev/caddie/internal/services"
	"github.com/stitts-dev/caddie/internal/validation"
	"github.com/stitts-dev/caddie/pkg/utils"
)

type RecommendationHandler struct {
	caddie *services.CaddieService
	logger *logrus.Logger
}

func NewRecommendationHandler(caddie *services.CaddieService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		caddie: caddie,
		logger: logger,
	}
}

// CreateRecommendation returns a club recommendation for one shot
func (h *RecommendationHandler) CreateRecommendation(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	shot, err := req.Shot.toModel()
	if err != nil {
		utils.SendValidationError(c, "Invalid shot", err.Error())
		return
	}

	env, err := h.caddie.Recommend(c.Request.Context(), services.RecommendationRequest{
		PlayerID:          req.PlayerID,
		HoleID:            req.HoleID,
		WeatherID:         req.WeatherID,
		UseCurrentWeather: req.UseCurrentWeather,
		Shot:              shot,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SendSuccessWithMeta(c, env, &utils.Meta{RequestID: middleware.GetRequestID(c)})
}
