package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. Kind carries the
// machine-readable error taxonomy so clients can branch (e.g., re-offer slot
// selection on SLOT_ALREADY_TAKEN instead of retrying blindly).
type ErrorResponse struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONErrorKind sends a standardized JSON error response with an error kind.
func JSONErrorKind(c *gin.Context, status int, kind, message string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("kind", kind))
	c.JSON(status, ErrorResponse{Kind: kind, Message: message})
}
