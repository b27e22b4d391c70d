package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/middleware"
)

// respondError maps err to its status code and writes {"error": reason}.
// Storage failures are logged in full but answered with a generic message.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)

	switch status {
	case http.StatusServiceUnavailable:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Storage is temporarily unavailable, please retry."})
	case http.StatusInternalServerError:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": msg})
	default:
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": apperrors.Reason(err)})
	}
}

// respondBindError answers a request whose body or query failed to bind.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// int64Param reads a positive numeric path parameter.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
