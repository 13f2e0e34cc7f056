package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/services"
	"github.com/stitts-dev/caddie/internal/validation"
	"github.com/stitts-dev/caddie/pkg/utils"
)

type PlayerHandler struct {
	caddie *services.CaddieService
	logger *logrus.Logger
}

func NewPlayerHandler(caddie *services.CaddieService, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{
		caddie: caddie,
		logger: logger,
	}
}

// GetBaseline returns a player's club distances
func (h *PlayerHandler) GetBaseline(c *gin.Context) {
	b, err := h.caddie.Baseline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccess(c, b)
}

// ReplaceBaseline swaps the whole bag for the authenticated player
func (h *PlayerHandler) ReplaceBaseline(c *gin.Context) {
	var req BaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	b, err := req.toModel(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid baseline", err.Error())
		return
	}

	if err := h.caddie.ReplaceBaseline(c.Request.Context(), &b); err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccess(c, b)
}

// CreateDefaultBaseline seeds the generic bag for a new player
func (h *PlayerHandler) CreateDefaultBaseline(c *gin.Context) {
	var req DefaultBaselineRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}
	if err := validation.ValidateStruct(req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	b, err := h.caddie.CreateDefaultBaseline(c.Request.Context(), c.Param("id"), req.PlayerName, req.Overwrite)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendCreated(c, b)
}
