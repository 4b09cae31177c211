package handlers

import (
	"errors"
	"net/http"

	"sctclinic/services/availability"
	"sctclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler serves the public slot-availability lookup used by the booking
// form's date picker.
type SlotHandler struct {
	Resolver availability.Resolver
}

// NewSlotHandler creates a new SlotHandler.
func NewSlotHandler(resolver availability.Resolver) *SlotHandler {
	return &SlotHandler{Resolver: resolver}
}

// GetSimpleSlots handles GET /api/slots/simple?date=YYYY-MM-DD.
func (h *SlotHandler) GetSimpleSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONValidationFail(c, "Missing date parameter", nil)
		return
	}

	day, err := h.Resolver.ResolveDay(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, availability.ErrBadDate) {
			utils.JSONValidationFail(c, err.Error(), nil)
			return
		}
		zap.L().Error("failed to resolve day availability", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "Failed to compute availability")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", day)
}
