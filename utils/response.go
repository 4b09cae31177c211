package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIResponse is the uniform envelope returned by every admin and booking
// endpoint.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// JSONSuccess writes a success envelope.
func JSONSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, APIResponse{Success: true, Message: message, Data: data})
}

// JSONList writes a success envelope carrying a list and its length.
func JSONList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Count: &count})
}

// JSONFail writes a failure envelope.
func JSONFail(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Message: message})
}

// JSONValidationFail writes a failure envelope with per-field messages.
func JSONValidationFail(c *gin.Context, message string, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: message, Errors: fieldErrors})
}

// ErrorHandler is a middleware that catches panics and returns a structured
// envelope instead of tearing down the request.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, APIResponse{
					Success: false,
					Message: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
