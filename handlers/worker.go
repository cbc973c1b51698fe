package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rosterly/models"
	workerService "rosterly/services/worker"
	"rosterly/utils"
)

// WorkerHandler exposes the worker pool CRUD endpoints.
type WorkerHandler struct {
	WorkerService workerService.WorkerService
}

// CreateWorkerHandler handles POST /workers.
func (h *WorkerHandler) CreateWorkerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var w models.Worker
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.WorkerService.CreateWorker(&w)
	if err != nil {
		if errors.Is(err, workerService.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create worker", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create worker"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateWorkerHandler handles PUT /workers/:id.
func (h *WorkerHandler) UpdateWorkerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var w models.Worker
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w.ID = c.Param("id")
	updated, err := h.WorkerService.UpdateWorker(&w)
	if err != nil {
		if errors.Is(err, workerService.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update worker", zap.String("id", w.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetWorkerHandler handles GET /workers/:id.
func (h *WorkerHandler) GetWorkerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	w, err := h.WorkerService.GetWorker(id)
	if err != nil {
		logger.Error("Worker not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, w)
}

// ListWorkersHandler handles GET /workers.
func (h *WorkerHandler) ListWorkersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	workers, err := h.WorkerService.ListWorkers()
	if err != nil {
		logger.Error("Failed to list workers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workers"})
		return
	}
	if workers == nil {
		workers = []models.Worker{}
	}
	c.JSON(http.StatusOK, workers)
}

// DeleteWorkerHandler handles DELETE /workers/:id.
func (h *WorkerHandler) DeleteWorkerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.WorkerService.DeleteWorker(id); err != nil {
		logger.Error("Failed to delete worker", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Worker deleted"})
}

// SuspendWorkerHandler handles PUT /workers/:id/suspend.
func (h *WorkerHandler) SuspendWorkerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Suspended *bool `json:"suspended" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	w, err := h.WorkerService.SetSuspended(id, *req.Suspended)
	if err != nil {
		logger.Error("Failed to update worker suspension", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, w)
}
