// Package web serves the server-rendered landing page and its plain HTML
// form posts.
package web

import (
	"errors"
	"net/http"
	"time"

	"pondpatrol-web/internal/components"
	"pondpatrol-web/internal/delivery/http/middleware"
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/form"
	"pondpatrol-web/pkg/apperror"
	"pondpatrol-web/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	g "maragu.dev/gomponents"
)

// SessionCookieName identifies the visitor's contact form
const SessionCookieName = "pp_session"

type Options struct {
	// SecureCookies sets the Secure flag on the session cookie
	SecureCookies bool
	// ResetAfter is how long the thank-you panel shows; echoed to the script
	ResetAfter   time.Duration
	AssetVersion string
}

type PageHandler struct {
	forms        *form.Store
	newsletterUC domain.NewsletterUsecase
	opts         Options
}

// NewPageHandler registers the landing page routes. submit wraps the routes
// that accept data, typically a rate limiter.
func NewPageHandler(pages *gin.RouterGroup, forms *form.Store, newsletterUC domain.NewsletterUsecase, opts Options, submit ...gin.HandlerFunc) {
	h := &PageHandler{
		forms:        forms,
		newsletterUC: newsletterUC,
		opts:         opts,
	}

	pages.GET("/", h.Landing)
	pages.POST("/contact", withSubmit(submit, h.SubmitContact)...)
	pages.POST("/contact/edit", h.EditContact)
	pages.POST("/newsletter", withSubmit(submit, h.Subscribe)...)
}

func withSubmit(submit []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(submit)+1)
	out = append(out, submit...)
	return append(out, h)
}

// Landing renders the full page with the visitor's current form state. A
// visitor without a session sees an empty form; the session is only created
// once they post to the form.
func (h *PageHandler) Landing(c *gin.Context) {
	var snap form.Snapshot
	if id, ok := sessionID(c); ok {
		if f, found := h.forms.Lookup(id); found {
			snap = f.Snapshot()
		}
	}

	status := c.Query("newsletter")
	if status != components.NewsletterSubscribed && status != components.NewsletterInvalid {
		status = ""
	}
	h.render(c, http.StatusOK, snap, status)
}

// SubmitContact handles the no-JS form post. Success redirects so a refresh
// does not resubmit; validation errors re-render the page with the messages.
func (h *PageHandler) SubmitContact(c *gin.Context) {
	f := h.session(c)
	if f == nil {
		return
	}

	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid form submission"))
		return
	}

	f.Load(req)
	_, err := f.Submit(c.Request.Context(), middleware.SubmitMeta(c, domain.SourceForm))

	var verrs domain.ValidationErrors
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/#contact")
	case errors.As(err, &verrs):
		h.render(c, http.StatusUnprocessableEntity, f.Snapshot(), "")
	case errors.Is(err, form.ErrClosed):
		_ = c.Error(apperror.Unavailable("Service is shutting down. Please try again.", err))
	default:
		_ = c.Error(apperror.Internal(err))
	}
}

type editRequest struct {
	Field string `form:"field" binding:"required"`
	Value string `form:"value"`
}

// EditContact mirrors one keystroke-level edit into the session form so a
// field's error clears as soon as the visitor changes it.
func (h *PageHandler) EditContact(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBind(&req); err != nil || !domain.IsContactField(req.Field) {
		_ = c.Error(apperror.BadRequest("Unknown field"))
		return
	}

	f := h.session(c)
	if f == nil {
		return
	}
	f.Edit(req.Field, req.Value)
	c.Status(http.StatusNoContent)
}

// Subscribe handles the footer newsletter form
func (h *PageHandler) Subscribe(c *gin.Context) {
	var req domain.NewsletterRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid form submission"))
		return
	}

	err := h.newsletterUC.Subscribe(c.Request.Context(), &req, middleware.SubmitMeta(c, domain.SourceForm))

	var verrs domain.ValidationErrors
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/?newsletter="+components.NewsletterSubscribed+"#newsletter")
	case errors.As(err, &verrs):
		c.Redirect(http.StatusSeeOther, "/?newsletter="+components.NewsletterInvalid+"#newsletter")
	default:
		_ = c.Error(apperror.Internal(err))
	}
}

// session returns the visitor's form, issuing a session cookie when needed.
// It returns nil after writing an error when the store is shut down.
func (h *PageHandler) session(c *gin.Context) *form.Form {
	id, ok := sessionID(c)
	if !ok {
		id = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, id, 0, "/", "", h.opts.SecureCookies, true)
	}
	c.Set(string(domain.KeySessionID), id)

	f := h.forms.Get(id)
	if f == nil {
		_ = c.Error(apperror.Unavailable("Service is shutting down. Please try again.", form.ErrClosed))
		return nil
	}
	return f
}

// sessionID returns the visitor's session cookie when it holds a valid uuid
func sessionID(c *gin.Context) (string, bool) {
	id, err := c.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	c.Set(string(domain.KeySessionID), id)
	return id, true
}

func (h *PageHandler) render(c *gin.Context, code int, snap form.Snapshot, newsletterStatus string) {
	csrf := middleware.CSRFToken(c)
	page := components.LandingPage(components.LandingView{
		Page: components.PageConfig{AssetVersion: h.opts.AssetVersion},
		Contact: components.ContactView{
			Form:       snap,
			CSRFToken:  csrf,
			ResetAfter: h.opts.ResetAfter,
		},
		Newsletter: components.NewsletterState{
			CSRFToken: csrf,
			Status:    newsletterStatus,
		},
	})
	h.write(c, code, page)
}

func (h *PageHandler) write(c *gin.Context, code int, page g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("Cache-Control", "no-store")
	c.Status(code)
	if err := page.Render(c.Writer); err != nil {
		logger.Log.Error("Failed to render page", "error", err.Error(), "path", c.FullPath())
	}
}
