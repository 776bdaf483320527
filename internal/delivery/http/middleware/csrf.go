package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/pkg/apperror"
	"pondpatrol-web/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the header scripts send the token in
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden input plain HTML forms send the token in
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour

	csrfContextKey = "csrf_token"
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern for the page routes.
//
//  1. Every request without a csrf_token cookie gets a fresh one.
//  2. POST requests must echo the cookie value in the X-CSRF-Token header
//     or in the csrf_token form field.
//
// The token is exposed to handlers via CSRFToken so pages can render it into forms.
func CSRFMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				abortWith(c, apperror.Internal(err))
				return
			}

			// SameSite=Lax keeps the cookie on top-level navigations only
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",     // Domain (empty = current domain)
				secure, // Secure (HTTPS only)
				false,  // HttpOnly = false so the script can read it
			)
			// a request that had no cookie cannot pass the check below
			csrfCookie = newToken
		}
		c.Set(csrfContextKey, csrfCookie)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFTokenHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFTokenFormField)
		}

		if submitted == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(csrfCookie)) != 1 {
			security.DefaultLogger().LogCSRFRejected(
				c.Request.Context(),
				c.ClientIP(),
				response.RequestID(c),
				c.FullPath(),
			)
			msg := "Invalid CSRF token"
			if submitted == "" {
				msg = "Missing CSRF token"
			}
			abortWith(c, apperror.Forbidden(msg))
			return
		}

		c.Next()
	}
}

// CSRFToken returns the token for the current request, set by CSRFMiddleware
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
