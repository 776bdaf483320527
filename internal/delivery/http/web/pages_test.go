package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"pondpatrol-web/internal/delivery/http/middleware"
	"pondpatrol-web/internal/delivery/http/web"
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/form"
	"pondpatrol-web/internal/usecase"
	"pondpatrol-web/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const resetDelay = 5 * time.Second

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	security.SetDefault(security.NewSecurityLogger(zap.NewNop(), "pondpatrol-web", "test"))
	os.Exit(m.Run())
}

type site struct {
	router  *gin.Engine
	forms   *form.Store
	clock   *form.ManualClock
	cookies map[string]*http.Cookie
}

func newSite(t *testing.T) *site {
	t.Helper()
	validate := usecase.NewFormValidator()
	contactUC := usecase.NewContactUsecase(validate, nil, nil)
	clock := form.NewManualClock()
	forms := form.NewStore(func() *form.Form {
		return form.New(contactUC, clock, resetDelay)
	}, time.Minute)
	t.Cleanup(forms.Close)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	web.RegisterStatic(r)
	pages := r.Group("")
	pages.Use(middleware.CSRFMiddleware(false))
	web.NewPageHandler(pages, forms, usecase.NewNewsletterUsecase(validate, nil), web.Options{ResetAfter: resetDelay})

	return &site{router: r, forms: forms, clock: clock, cookies: map[string]*http.Cookie{}}
}

// do sends a request carrying the cookies collected so far, like a browser
func (s *site) do(t *testing.T, method, path string, body url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		s.cookies[c.Name] = c
	}
	return w
}

func (s *site) token() string {
	if c, ok := s.cookies[middleware.CSRFTokenCookieName]; ok {
		return c.Value
	}
	return ""
}

func (s *site) session(t *testing.T) *form.Form {
	t.Helper()
	c, ok := s.cookies[web.SessionCookieName]
	require.True(t, ok, "no session cookie")
	f, ok := s.forms.Peek(c.Value)
	require.True(t, ok)
	return f
}

func (s *site) contact(t *testing.T, req domain.ContactRequest) *httptest.ResponseRecorder {
	return s.do(t, http.MethodPost, "/contact", url.Values{
		middleware.CSRFTokenFormField: {s.token()},
		"name":                        {req.Name},
		"email":                       {req.Email},
		"phone":                       {req.Phone},
		"farmSize":                    {req.FarmSize},
		"message":                     {req.Message},
	})
}

func validContact() domain.ContactRequest {
	return domain.ContactRequest{
		Name:     "Meena",
		Email:    "meena@ponds.in",
		Phone:    "98765 43210",
		FarmSize: "5-10",
		Message:  "Herons at dawn",
	}
}

func TestLanding(t *testing.T) {
	s := newSite(t)
	w := s.do(t, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "Stop Birds Before They Land, Not After They Feed")
	assert.Contains(t, body, `value="`+s.token()+`"`)
	assert.NotEmpty(t, s.token())

	// viewing the page does not start a session
	assert.NotContains(t, s.cookies, web.SessionCookieName)
	assert.Zero(t, s.forms.Len())

	require.Equal(t, http.StatusUnprocessableEntity, s.contact(t, domain.ContactRequest{}).Code)
	session := s.cookies[web.SessionCookieName]
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, 1, s.forms.Len())

	// the same visitor keeps the same form
	w = s.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, 1, s.forms.Len())
	assert.Contains(t, w.Body.String(), "Name is required")
}

func TestLanding_CookielessViewsHoldNoForms(t *testing.T) {
	s := newSite(t)
	for i := 0; i < 200; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if i%2 == 1 {
			// forged or stale session ids are not adopted either
			req.AddCookie(&http.Cookie{Name: web.SessionCookieName, Value: uuid.NewString()})
		}
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Zero(t, s.forms.Len())
}

func TestSubmitContact_AllEmpty(t *testing.T) {
	s := newSite(t)
	s.do(t, http.MethodGet, "/", nil)

	w := s.contact(t, domain.ContactRequest{})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	for _, msg := range []string{"Name is required", "Email is required", "Phone number is required", "Farm size is required", "Message is required"} {
		assert.Contains(t, body, msg)
	}
	assert.Len(t, s.session(t).Snapshot().Errors, 5)
}

func TestSubmitContact_SuccessThenReset(t *testing.T) {
	s := newSite(t)
	s.do(t, http.MethodGet, "/", nil)

	w := s.contact(t, validContact())
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/#contact", w.Header().Get("Location"))

	w = s.do(t, http.MethodGet, "/", nil)
	assert.Contains(t, w.Body.String(), "Thank You!")
	assert.Contains(t, w.Body.String(), `data-reset-after="5000"`)
	assert.NotContains(t, w.Body.String(), `id="contact-form"`)

	s.clock.Advance(resetDelay)

	w = s.do(t, http.MethodGet, "/", nil)
	assert.NotContains(t, w.Body.String(), "Thank You!")
	assert.Contains(t, w.Body.String(), `id="contact-form"`)
	assert.Equal(t, domain.ContactRequest{}, s.session(t).Snapshot().Values)
}

func TestEditContact_ClearsOnlyThatError(t *testing.T) {
	s := newSite(t)
	s.do(t, http.MethodGet, "/", nil)

	req := validContact()
	req.Email = "not-an-email"
	req.Phone = "123"
	require.Equal(t, http.StatusUnprocessableEntity, s.contact(t, req).Code)

	w := s.do(t, http.MethodPost, "/contact/edit", url.Values{
		middleware.CSRFTokenFormField: {s.token()},
		"field":                       {"email"},
		"value":                       {"meena@ponds"},
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	snap := s.session(t).Snapshot()
	assert.NotContains(t, snap.Errors, domain.FieldEmail)
	assert.Equal(t, "Please enter a valid 10-digit phone number", snap.Errors[domain.FieldPhone])
	assert.Equal(t, "meena@ponds", snap.Values.Email)

	w = s.do(t, http.MethodPost, "/contact/edit", url.Values{
		middleware.CSRFTokenFormField: {s.token()},
		"field":                       {"password"},
		"value":                       {"x"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitContact_RequiresCSRF(t *testing.T) {
	s := newSite(t)
	s.do(t, http.MethodGet, "/", nil)

	body := url.Values{"name": {"x"}}
	w := s.do(t, http.MethodPost, "/contact", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNewsletter(t *testing.T) {
	s := newSite(t)
	s.do(t, http.MethodGet, "/", nil)

	w := s.do(t, http.MethodPost, "/newsletter", url.Values{
		middleware.CSRFTokenFormField: {s.token()},
		"email":                       {"bad"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?newsletter=invalid#newsletter", w.Header().Get("Location"))

	w = s.do(t, http.MethodPost, "/newsletter", url.Values{
		middleware.CSRFTokenFormField: {s.token()},
		"email":                       {"grower@example.com"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?newsletter=subscribed#newsletter", w.Header().Get("Location"))

	w = s.do(t, http.MethodGet, "/?newsletter=subscribed", nil)
	assert.Contains(t, w.Body.String(), "Thanks for subscribing!")

	// unknown statuses are ignored
	w = s.do(t, http.MethodGet, "/?newsletter=%3Cb%3E", nil)
	assert.NotContains(t, w.Body.String(), "data-newsletter-status")
}

func TestNewsletter_MalformedBody(t *testing.T) {
	s := newSite(t)
	s.do(t, http.MethodGet, "/", nil)

	req := httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader("email=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(middleware.CSRFTokenHeaderName, s.token())
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid form submission")
}

func TestStaticAssets(t *testing.T) {
	s := newSite(t)
	w := s.do(t, http.MethodGet, "/static/site.js", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "data-reveal")
	// same one-shot rule as reveal.Latch: reach the threshold once, then stop observing
	assert.Contains(t, w.Body.String(), "entry.intersectionRatio >= threshold")
	assert.Contains(t, w.Body.String(), "observer.unobserve(entry.target)")
}

func TestStoreClosed(t *testing.T) {
	s := newSite(t)
	s.do(t, http.MethodGet, "/", nil)
	s.forms.Close()

	// the page still renders, posting to the form does not
	w := s.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.contact(t, validContact())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
