package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rosterly/config"
	"rosterly/cron"
	"rosterly/models"
	"rosterly/services/roster"
	"rosterly/utils"
)

// ScheduleHandler exposes schedule generation and retrieval.
type ScheduleHandler struct {
	RosterService roster.RosterService
	Enqueuer      *cron.Enqueuer
}

// generateRequest is the body of a generation call. WorkerIDs restricts the
// run to a subset of the stored pool; empty means everyone.
type generateRequest struct {
	roster.GenerateOptions
	WorkerIDs []string `json:"workerIds"`
}

// applyConfigDefaults fills unset generation options from the configured
// scheduling defaults before the service applies its own fallbacks.
func applyConfigDefaults(opts roster.GenerateOptions) roster.GenerateOptions {
	cfg := config.AppConfig
	if opts.MaxWorkersPerShift <= 0 {
		opts.MaxWorkersPerShift = cfg.ShiftMaxWorkers
	}
	if opts.MaxHoursPerWorker <= 0 {
		opts.MaxHoursPerWorker = cfg.ShiftMaxHours
	}
	if len(opts.ShiftSizes) == 0 {
		opts.ShiftSizes = cfg.BlockSizes()
	}
	if opts.WorkStudyHours <= 0 {
		opts.WorkStudyHours = cfg.ShiftWorkStudyHours
	}
	return opts
}

// GenerateScheduleHandler handles POST /admin/schedule/generate. The run is
// synchronous; the response body is the freshly persisted schedule. A fatal
// work-study placement failure returns 422 with a per-day diagnostic.
func (h *ScheduleHandler) GenerateScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req generateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	opts := applyConfigDefaults(req.GenerateOptions)
	var doc *models.ScheduleDocument
	var err error
	if len(req.WorkerIDs) > 0 {
		doc, err = h.RosterService.GenerateScheduleForWorkerIDs(req.WorkerIDs, opts)
	} else {
		doc, err = h.RosterService.GenerateSchedule(opts)
	}
	if err != nil {
		if wsErr, ok := roster.AsWorkStudyError(err); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   wsErr.Error(),
				"details": wsErr,
			})
			return
		}
		logger.Error("Schedule generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Schedule generation failed"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// EnqueueGenerateHandler handles POST /admin/schedule/generate/async. The run
// is queued for the background worker; the response only acknowledges the
// enqueue.
func (h *ScheduleHandler) EnqueueGenerateHandler(c *gin.Context) {
	logger := utils.GetLogger()
	if h.Enqueuer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Background generation is not available"})
		return
	}
	var req generateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	taskID, err := h.Enqueuer.EnqueueScheduleGeneration(applyConfigDefaults(req.GenerateOptions), req.WorkerIDs)
	if err != nil {
		logger.Error("Failed to enqueue schedule generation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enqueue schedule generation"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Schedule generation queued", "taskId": taskID})
}

// CurrentScheduleHandler handles GET /schedule/current.
func (h *ScheduleHandler) CurrentScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	doc, err := h.RosterService.CurrentSchedule()
	if err != nil {
		logger.Error("Failed to fetch current schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch current schedule"})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No schedule has been generated yet"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListSchedulesHandler handles GET /admin/schedule.
func (h *ScheduleHandler) ListSchedulesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	docs, err := h.RosterService.ListSchedules()
	if err != nil {
		logger.Error("Failed to list schedules", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schedules"})
		return
	}
	if docs == nil {
		docs = []models.ScheduleDocument{}
	}
	c.JSON(http.StatusOK, docs)
}

// SetCurrentScheduleHandler handles PUT /admin/schedule/:id/current.
func (h *ScheduleHandler) SetCurrentScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.RosterService.SetOnlyCurrent(id); err != nil {
		logger.Error("Failed to set current schedule", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule set as current"})
}

// DeleteScheduleHandler handles DELETE /admin/schedule/:id.
func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.RosterService.DeleteSchedule(id); err != nil {
		logger.Error("Failed to delete schedule", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
