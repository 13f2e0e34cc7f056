package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/services"
	"github.com/stitts-dev/caddie/pkg/utils"
)

type WeatherHandler struct {
	weather *services.WeatherService
	logger  *logrus.Logger
}

func NewWeatherHandler(weather *services.WeatherService, logger *logrus.Logger) *WeatherHandler {
	return &WeatherHandler{
		weather: weather,
		logger:  logger,
	}
}

// GetWeather returns a stored snapshot
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	snap, err := h.weather.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccess(c, snap)
}

// GetLatestWeather returns the newest stored snapshot for a course
func (h *WeatherHandler) GetLatestWeather(c *gin.Context) {
	snap, err := h.weather.Latest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccess(c, snap)
}

// RefreshWeather fetches a new reading for a course from the provider
func (h *WeatherHandler) RefreshWeather(c *gin.Context) {
	snap, err := h.weather.Refresh(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendCreated(c, snap)
}
