package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"pondpatrol-web/internal/delivery/http/middleware"
	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/pkg/apperror"
	"pondpatrol-web/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	security.SetDefault(security.NewSecurityLogger(zap.NewNop(), "pondpatrol-web", "test"))
	os.Exit(m.Run())
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(domain.KeyRequestID)))
	})

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps valid inbound id", func(t *testing.T) {
		inbound := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, inbound)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, inbound, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.NotEqual(t, "<script>", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperror.Unprocessable("Validation failed", map[string]string{"email": "Please enter a valid email"}))
	})
	r.GET("/internal", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused to 10.0.0.3"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Equal(t, map[string]interface{}{"email": "Please enter a valid email"}, resp.Error)
	assert.NotEmpty(t, resp.RequestID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware([]string{"https://pondpatrol.in"}, true))
	r.POST("/v1/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/v1/contact", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://pondpatrol.in")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://pondpatrol.in", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("https://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	// localhost is a dev-only origin
	w = preflight("http://localhost:3000")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware(false))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "https://code.iconify.design")
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestRateLimitMiddleware_InMemory(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(middleware.SubmitRateLimitConfig(2, time.Minute, nil)))
	r.POST("/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1").Code)
	w := hit("10.0.0.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = hit("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Rate limit exceeded. Please try again later.", resp.Message)

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, hit("10.0.0.2").Code)
}

func csrfRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.CSRFMiddleware(false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, middleware.CSRFToken(c)) })
	r.POST("/contact", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestCSRFMiddleware_IssuesToken(t *testing.T) {
	r := csrfRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CSRFTokenCookieName, cookies[0].Name)
	assert.Len(t, cookies[0].Value, middleware.CSRFTokenLength*2)
	assert.Equal(t, cookies[0].Value, w.Body.String())
}

func TestCSRFMiddleware_Validation(t *testing.T) {
	r := csrfRouter()
	token := strings.Repeat("ab", middleware.CSRFTokenLength)

	post := func(body url.Values, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: middleware.CSRFTokenCookieName, Value: token})
		if header != "" {
			req.Header.Set(middleware.CSRFTokenHeaderName, header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, post(url.Values{middleware.CSRFTokenFormField: {token}}, "").Code)
	assert.Equal(t, http.StatusNoContent, post(url.Values{}, token).Code)

	w := post(url.Values{}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Missing CSRF token", decode(t, w).Message)

	w = post(url.Values{middleware.CSRFTokenFormField: {"forged"}}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid CSRF token", decode(t, w).Message)
}

func signed(t *testing.T, secret string, claims jwt.MapClaims, method jwt.SigningMethod) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAdminAuth(t *testing.T) {
	const secret = "test-secret"
	r := gin.New()
	r.Use(middleware.AdminAuth(secret))
	r.GET("/admin", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(domain.KeyAdminSub)))
	})

	exp := time.Now().Add(time.Hour).Unix()
	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signed(t, "other", jwt.MapClaims{"sub": "ops", "role": "admin", "exp": exp}, jwt.SigningMethodHS256), http.StatusUnauthorized},
		{"not admin", "Bearer " + signed(t, secret, jwt.MapClaims{"sub": "ops", "role": "viewer", "exp": exp}, jwt.SigningMethodHS256), http.StatusUnauthorized},
		{"no expiry", "Bearer " + signed(t, secret, jwt.MapClaims{"sub": "ops", "role": "admin"}, jwt.SigningMethodHS256), http.StatusUnauthorized},
		{"expired", "Bearer " + signed(t, secret, jwt.MapClaims{"sub": "ops", "role": "admin", "exp": time.Now().Add(-time.Minute).Unix()}, jwt.SigningMethodHS256), http.StatusUnauthorized},
		{"wrong alg", "Bearer " + signed(t, secret, jwt.MapClaims{"sub": "ops", "role": "admin", "exp": exp}, jwt.SigningMethodHS512), http.StatusUnauthorized},
		{"ok", "Bearer " + signed(t, secret, jwt.MapClaims{"sub": "ops", "role": "admin", "exp": exp}, jwt.SigningMethodHS256), http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusOK {
				assert.Equal(t, "ops", w.Body.String())
				return
			}
			assert.False(t, decode(t, w).Success)
		})
	}
}

func TestSpamWatch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tracker := security.NewSpamTracker(security.SpamTrackerConfig{Threshold: 2, Window: time.Minute}, nil,
		security.NewSecurityLogger(zap.New(core), "pondpatrol-web", "test"))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	watch := middleware.SpamWatch(tracker)
	r.POST("/pending", watch, func(c *gin.Context) {
		_ = c.Error(apperror.Unprocessable("Validation failed", nil))
	})
	r.POST("/rendered", watch, func(c *gin.Context) {
		c.String(http.StatusUnprocessableEntity, "invalid")
	})
	r.POST("/ok", watch, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.POST("/bad", watch, func(c *gin.Context) {
		_ = c.Error(apperror.BadRequest("Invalid request body"))
	})

	for _, path := range []string{"/ok", "/bad", "/ok"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	}
	assert.Zero(t, logs.Len())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pending", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, logs.Len())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rendered", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	entries := logs.FilterMessage("spam_suspected").AllUntimed()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["details"], `"endpoint":"/rendered"`)
}
