package handlers

import (
	"errors"
	"net/http"

	"sctclinic/models"
	"sctclinic/services/admin"
	"sctclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthHandler exposes dashboard login and logout.
type AdminAuthHandler struct {
	Svc admin.AuthService
}

// NewAdminAuthHandler creates a new AdminAuthHandler.
func NewAdminAuthHandler(svc admin.AuthService) *AdminAuthHandler {
	return &AdminAuthHandler{Svc: svc}
}

// Login handles POST /api/admin/login.
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationFail(c, "Email and password are required", nil)
		return
	}

	token, adm, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var authErr *admin.AuthError
		if errors.As(err, &authErr) {
			utils.JSONFail(c, http.StatusUnauthorized, authErr.Message)
			return
		}
		zap.L().Error("admin login failed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"admin": adm,
	})
}

// Logout handles POST /api/admin/logout. The middleware has already
// validated the token and stashed it in the context.
func (h *AdminAuthHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.GetString("adminToken")); err != nil {
		zap.L().Warn("admin logout failed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "Failed to end session")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Logged out", nil)
}
