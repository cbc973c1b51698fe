package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	settingsRepo "rosterly/database/repository/settings"
	"rosterly/models"
	"rosterly/utils"
)

// SettingsHandler exposes the venue operating hours.
type SettingsHandler struct {
	SettingsRepo settingsRepo.SettingsRepository
}

// GetOperatingHoursHandler handles GET /settings/hours. When no hours are
// stored the hard-coded defaults are returned, matching what the scheduler
// would use.
func (h *SettingsHandler) GetOperatingHoursHandler(c *gin.Context) {
	logger := utils.GetLogger()
	hours, err := h.SettingsRepo.GetOperatingHours()
	if err != nil {
		logger.Error("Failed to fetch operating hours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch operating hours"})
		return
	}
	if len(hours) == 0 {
		hours = models.DefaultOperatingHours()
	}
	c.JSON(http.StatusOK, hours)
}

// SetOperatingHoursHandler handles PUT /admin/settings/hours.
func (h *SettingsHandler) SetOperatingHoursHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var hours models.OperatingHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.SettingsRepo.SetOperatingHours(hours); err != nil {
		logger.Error("Failed to store operating hours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store operating hours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Operating hours updated"})
}
