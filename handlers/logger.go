package handlers

import (
	"net/http"

	"justnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger from the Gin context or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// respondError maps service errors to their status. Unknown errors are logged
// and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	if appErr, ok := utils.AsAppError(err); ok {
		utils.JSONError(c, utils.StatusFor(appErr.Kind), appErr.Message, appErr.Errors...)
		return
	}
	getLogger(c).Error(fallback, zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, fallback)
}
