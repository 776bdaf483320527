package middleware

import (
	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/internal/domain"

	"github.com/gin-gonic/gin"
)

// SubmitMeta collects the request facts recorded with an inquiry
func SubmitMeta(c *gin.Context, source string) domain.SubmitMeta {
	return domain.SubmitMeta{
		Source:    source,
		RemoteIP:  c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: response.RequestID(c),
	}
}
