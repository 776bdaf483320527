package middleware

import (
	"errors"
	"net/http"

	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/pkg/apperror"
	"pondpatrol-web/pkg/logger"

	"github.com/gin-gonic/gin"
)

// abortWith renders err immediately and stops the chain. Middleware uses it
// where later handlers must not run, so it cannot rely on ErrorHandler order.
func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.Code, err.Message, err.Details)
	c.Abort()
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"error", appErr.Error(),
					"path", c.FullPath(),
					"request_id", response.RequestID(c),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("Internal server error",
			"error", err.Error(),
			"path", c.FullPath(),
			"request_id", response.RequestID(c),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
