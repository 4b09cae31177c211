package handlers

import (
	"errors"
	"net/http"

	"sctclinic/models"
	"sctclinic/services/appointment"
	"sctclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the public booking endpoint and the admin
// appointment management endpoints.
type AppointmentHandler struct {
	Svc appointment.Service
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// BookAppointment handles POST /api/appointments (public).
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationFail(c, "Invalid appointment payload", map[string]string{"body": err.Error()})
		return
	}

	appt, err := h.Svc.Book(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Appointment request received", appt)
}

// ListAppointments handles GET /api/appointments (admin) with optional date
// and status filters.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	filter := models.AppointmentFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	records, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list appointments", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}
	if records == nil {
		records = []models.Appointment{}
	}
	utils.JSONList(c, records, len(records))
}

// UpdateAppointmentStatus handles PATCH /api/appointments?id=<id> (admin).
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.JSONValidationFail(c, "Missing id parameter", nil)
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationFail(c, "Invalid status payload", map[string]string{"body": err.Error()})
		return
	}

	appt, err := h.Svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Appointment status updated", appt)
}

// DeleteAppointment handles DELETE /api/appointments?id=<id> (admin).
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.JSONValidationFail(c, "Missing id parameter", nil)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respondAppointmentError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Appointment deleted", nil)
}

// GetDashboardStats handles GET /api/admin/dashboard/stats.
func (h *AppointmentHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to compute dashboard stats", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", stats)
}

func respondAppointmentError(c *gin.Context, err error) {
	var vErr *appointment.ValidationError
	var slotErr *appointment.SlotUnavailableError
	var nfErr *appointment.NotFoundError
	var capErr *appointment.CaptchaError
	switch {
	case errors.As(err, &vErr):
		utils.JSONValidationFail(c, vErr.Message, vErr.Fields)
	case errors.As(err, &capErr):
		utils.JSONFail(c, http.StatusBadRequest, capErr.Message)
	case errors.As(err, &slotErr):
		utils.JSONFail(c, http.StatusConflict, slotErr.Message)
	case errors.As(err, &nfErr):
		utils.JSONFail(c, http.StatusNotFound, nfErr.Message)
	default:
		zap.L().Error("appointment operation failed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
