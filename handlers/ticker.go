package handlers

import (
	"net/http"

	"sctclinic/services/ticker"
	"sctclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TickerHandler serves the public notification feed polled by the site.
type TickerHandler struct {
	Feed ticker.FeedService
}

// NewTickerHandler creates a new TickerHandler.
func NewTickerHandler(feed ticker.FeedService) *TickerHandler {
	return &TickerHandler{Feed: feed}
}

// GetActiveNotifications handles GET /api/ticker/notifications.
func (h *TickerHandler) GetActiveNotifications(c *gin.Context) {
	views, err := h.Feed.ActiveNotifications(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to assemble ticker feed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	utils.JSONList(c, views, len(views))
}
