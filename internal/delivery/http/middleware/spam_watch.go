package middleware

import (
	"errors"
	"net/http"

	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/pkg/apperror"
	"pondpatrol-web/pkg/logger"
	"pondpatrol-web/pkg/security"

	"github.com/gin-gonic/gin"
)

// SpamWatch records every submission rejected with 422, either rendered
// directly or pending as an AppError for ErrorHandler.
func SpamWatch(tracker *security.SpamTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !rejected(c) {
			return
		}
		if _, _, err := tracker.RecordRejection(c.Request.Context(), c.ClientIP(), response.RequestID(c), c.FullPath()); err != nil {
			logger.Log.Warn("Spam tracking failed", "error", err, "request_id", response.RequestID(c))
		}
	}
}

func rejected(c *gin.Context) bool {
	if c.Writer.Written() {
		return c.Writer.Status() == http.StatusUnprocessableEntity
	}
	if len(c.Errors) == 0 {
		return false
	}
	var appErr *apperror.AppError
	return errors.As(c.Errors.Last().Err, &appErr) && appErr.Code == http.StatusUnprocessableEntity
}
