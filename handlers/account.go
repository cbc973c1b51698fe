package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rosterly/models"
	accountService "rosterly/services/account"
	"rosterly/utils"
)

// AccountHandler exposes registration, login and account administration.
type AccountHandler struct {
	AccountService accountService.AccountService
}

// RegisterHandler handles POST /auth/register.
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone"`
		Password  string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	acct := &models.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	created, err := h.AccountService.Register(acct, req.Password)
	if err != nil {
		if errors.Is(err, accountService.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to register account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register account"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// LoginHandler handles POST /auth/login.
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.AccountService.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, accountService.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, accountService.ErrAccountSuspended):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("Login failed", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /auth/me for the signed-in account.
func (h *AccountHandler) MeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	accountID := c.GetString("accountID")
	acct, err := h.AccountService.GetAccount(accountID)
	if err != nil {
		logger.Error("Account not found", zap.String("accountId", accountID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, acct)
}

// SetAdminHandler handles PUT /admin/accounts/admin.
func (h *AccountHandler) SetAdminHandler(c *gin.Context) {
	h.setAccountFlag(c, func(email string, value bool) error {
		return h.AccountService.SetAdmin(email, value)
	})
}

// SetSuspendedHandler handles PUT /admin/accounts/suspend.
func (h *AccountHandler) SetSuspendedHandler(c *gin.Context) {
	h.setAccountFlag(c, func(email string, value bool) error {
		return h.AccountService.SetSuspended(email, value)
	})
}

func (h *AccountHandler) setAccountFlag(c *gin.Context, apply func(email string, value bool) error) {
	logger := utils.GetLogger()
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Value *bool  `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := apply(req.Email, *req.Value); err != nil {
		logger.Error("Failed to update account flag", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account updated"})
}
