package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rosterly/models"
	boardService "rosterly/services/board"
	"rosterly/utils"
)

// BoardHandler exposes announcements and the shift-coverage board.
type BoardHandler struct {
	BoardService boardService.BoardService
}

// CreateAnnouncementHandler handles POST /announcements.
func (h *BoardHandler) CreateAnnouncementHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var a models.Announcement
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.BoardService.CreateAnnouncement(&a)
	if err != nil {
		logger.Error("Failed to create announcement", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAnnouncementHandler handles PUT /announcements/:id.
func (h *BoardHandler) UpdateAnnouncementHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var a models.Announcement
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.ID = c.Param("id")
	updated, err := h.BoardService.UpdateAnnouncement(&a)
	if err != nil {
		logger.Error("Failed to update announcement", zap.String("id", a.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAnnouncementHandler handles DELETE /announcements/:id.
func (h *BoardHandler) DeleteAnnouncementHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.BoardService.DeleteAnnouncement(id); err != nil {
		logger.Error("Failed to delete announcement", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}

// ListAnnouncementsHandler handles GET /announcements.
func (h *BoardHandler) ListAnnouncementsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	items, err := h.BoardService.ListAnnouncements()
	if err != nil {
		logger.Error("Failed to list announcements", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list announcements"})
		return
	}
	if items == nil {
		items = []models.Announcement{}
	}
	c.JSON(http.StatusOK, items)
}

// PostShiftHandler handles POST /coverage/postings.
func (h *BoardHandler) PostShiftHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var p models.ShiftPosting
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.BoardService.PostShift(&p)
	if err != nil {
		logger.Error("Failed to post shift", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post shift"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPostingsHandler handles GET /coverage/postings?status=open.
func (h *BoardHandler) ListPostingsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	items, err := h.BoardService.ListPostings(c.Query("status"))
	if err != nil {
		logger.Error("Failed to list postings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list postings"})
		return
	}
	if items == nil {
		items = []models.ShiftPosting{}
	}
	c.JSON(http.StatusOK, items)
}

// ClosePostingHandler handles PUT /coverage/postings/:id/close.
func (h *BoardHandler) ClosePostingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.BoardService.ClosePosting(id); err != nil {
		logger.Error("Failed to close posting", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Posting closed"})
}

// ApplyToPostingHandler handles POST /coverage/postings/:id/applications.
func (h *BoardHandler) ApplyToPostingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var a models.ShiftApplication
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.PostingID = c.Param("id")
	created, err := h.BoardService.ApplyToPosting(&a)
	if err != nil {
		logger.Error("Failed to apply to posting", zap.String("postingId", a.PostingID), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListApplicationsHandler handles GET /coverage/postings/:id/applications.
func (h *BoardHandler) ListApplicationsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	postingID := c.Param("id")
	items, err := h.BoardService.ListApplications(postingID)
	if err != nil {
		logger.Error("Failed to list applications", zap.String("postingId", postingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		return
	}
	if items == nil {
		items = []models.ShiftApplication{}
	}
	c.JSON(http.StatusOK, items)
}

// ApproveApplicationHandler handles PUT /admin/coverage/postings/:id/applications/:appId/approve.
func (h *BoardHandler) ApproveApplicationHandler(c *gin.Context) {
	logger := utils.GetLogger()
	postingID := c.Param("id")
	applicationID := c.Param("appId")
	ac, err := h.BoardService.ApproveApplication(postingID, applicationID)
	if err != nil {
		logger.Error("Failed to approve application",
			zap.String("postingId", postingID), zap.String("applicationId", applicationID), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ac)
}

// RequestCoverageHandler handles POST /coverage/requests.
func (h *BoardHandler) RequestCoverageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.CoverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.BoardService.RequestCoverage(&req)
	if err != nil {
		logger.Error("Failed to create coverage request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coverage request"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListCoverageRequestsHandler handles GET /coverage/requests?status=open.
func (h *BoardHandler) ListCoverageRequestsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	items, err := h.BoardService.ListCoverageRequests(c.Query("status"))
	if err != nil {
		logger.Error("Failed to list coverage requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list coverage requests"})
		return
	}
	if items == nil {
		items = []models.CoverageRequest{}
	}
	c.JSON(http.StatusOK, items)
}

// ResolveCoverageRequestHandler handles PUT /coverage/requests/:id/resolve.
func (h *BoardHandler) ResolveCoverageRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.BoardService.ResolveCoverageRequest(id); err != nil {
		logger.Error("Failed to resolve coverage request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coverage request resolved"})
}

// ListActiveCoverageHandler handles GET /coverage/active.
func (h *BoardHandler) ListActiveCoverageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	items, err := h.BoardService.ListActiveCoverage()
	if err != nil {
		logger.Error("Failed to list active coverage", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list active coverage"})
		return
	}
	if items == nil {
		items = []models.ActiveCoverage{}
	}
	c.JSON(http.StatusOK, items)
}
