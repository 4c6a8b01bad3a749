package middleware

import (
	"errors"
	"net/http"

	"obsidianiq-forms-api/internal/delivery/http/response"
	"obsidianiq-forms-api/pkg/apperror"
	"obsidianiq-forms-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString("RequestID")
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "status", appErr.Code, "path", c.FullPath(),
					"request_id", requestID, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Errors)
			return
		}

		// Never expose internal error details to clients; log them server-side.
		logger.Log.Error("Internal Server Error", "path", c.FullPath(), "request_id", requestID, "error", err)
		response.Error(c, http.StatusInternalServerError, apperror.InternalMessage, nil)
	}
}
