package handlers

import (
	"errors"
	"net/http"

	"sctclinic/models"
	"sctclinic/services/blockeddate"
	"sctclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlockedDateHandler exposes the admin blocked-dates API.
type BlockedDateHandler struct {
	Svc blockeddate.Service
}

// NewBlockedDateHandler creates a new BlockedDateHandler.
func NewBlockedDateHandler(svc blockeddate.Service) *BlockedDateHandler {
	return &BlockedDateHandler{Svc: svc}
}

// ListBlockedDates handles GET /api/admin/blocked-dates with optional
// startDate, endDate and isActive query filters.
func (h *BlockedDateHandler) ListBlockedDates(c *gin.Context) {
	filter := models.BlockedDateFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if raw := c.Query("isActive"); raw != "" {
		active := raw == "true"
		filter.IsActive = &active
	}

	records, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list blocked dates", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "Failed to fetch blocked dates")
		return
	}
	if records == nil {
		records = []models.BlockedDate{}
	}
	utils.JSONList(c, records, len(records))
}

// CreateBlockedDate handles POST /api/admin/blocked-dates.
func (h *BlockedDateHandler) CreateBlockedDate(c *gin.Context) {
	var req models.CreateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationFail(c, "Invalid blocked date payload", map[string]string{"body": err.Error()})
		return
	}

	bd, err := h.Svc.Create(c.Request.Context(), req, c.GetString("adminID"), c.GetString("adminName"))
	if err != nil {
		respondBlockedDateError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Date blocked successfully", bd)
}

// UpdateBlockedDate handles PATCH /api/admin/blocked-dates?id=<id>.
func (h *BlockedDateHandler) UpdateBlockedDate(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.JSONValidationFail(c, "Missing id parameter", nil)
		return
	}
	var req models.UpdateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationFail(c, "Invalid blocked date payload", map[string]string{"body": err.Error()})
		return
	}

	bd, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondBlockedDateError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Blocked date updated", bd)
}

// DeleteBlockedDate handles DELETE /api/admin/blocked-dates?id=<id>.
func (h *BlockedDateHandler) DeleteBlockedDate(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.JSONValidationFail(c, "Missing id parameter", nil)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respondBlockedDateError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Blocked date deleted", nil)
}

func respondBlockedDateError(c *gin.Context, err error) {
	var vErr *blockeddate.ValidationError
	var cErr *blockeddate.ConflictError
	var nfErr *blockeddate.NotFoundError
	switch {
	case errors.As(err, &vErr):
		utils.JSONValidationFail(c, vErr.Message, vErr.Fields)
	case errors.As(err, &cErr):
		utils.JSONFail(c, http.StatusConflict, cErr.Message)
	case errors.As(err, &nfErr):
		utils.JSONFail(c, http.StatusNotFound, nfErr.Message)
	default:
		zap.L().Error("blocked date operation failed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
