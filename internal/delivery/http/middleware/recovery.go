package middleware

import (
	"fmt"
	"net/http"

	"obsidianiq-forms-api/internal/delivery/http/response"
	"obsidianiq-forms-api/pkg/apperror"
	"obsidianiq-forms-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into the standard 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Recovered from panic", "path", c.FullPath(),
			"request_id", c.GetString("RequestID"), "error", fmt.Sprint(recovered))
		response.Error(c, http.StatusInternalServerError, apperror.InternalMessage, nil)
		c.Abort()
	})
}
