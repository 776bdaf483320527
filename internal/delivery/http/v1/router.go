package v1

import (
	"net/http"
	"strings"

	"pondpatrol-web/config"
	"pondpatrol-web/internal/delivery/http/middleware"
	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/internal/delivery/http/web"
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/form"
	"pondpatrol-web/internal/usecase"
	"pondpatrol-web/pkg/apperror"
	"pondpatrol-web/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC    domain.ContactUsecase
	NewsletterUC domain.NewsletterUsecase
	InquiryUC    domain.InquiryUsecase // nil when inquiries are not persisted
	HealthUC     usecase.HealthUsecase
	Forms        *form.Store
	Redis        *goredis.Client // nil uses the in-memory rate limiter
	Spam         *security.SpamTracker
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	origins := append([]string{cfg.SiteURL}, cfg.AllowedOrigins...)

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(origins, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware(strings.HasPrefix(cfg.SiteURL, "https://")))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindow(), deps.Redis)))

	// One submit budget per client across the page forms and the JSON API
	spam := deps.Spam
	if spam == nil {
		spam = security.NewSpamTracker(security.DefaultSpamTrackerConfig(), deps.Redis, nil)
	}
	submit := []gin.HandlerFunc{
		middleware.RateLimitMiddleware(middleware.SubmitRateLimitConfig(cfg.RateLimitSubmitThreshold, cfg.RateLimitWindow(), deps.Redis)),
		middleware.SpamWatch(spam),
	}

	// Landing page
	web.RegisterStatic(r)
	pages := r.Group("")
	pages.Use(middleware.CSRFMiddleware(cfg.SecureCookies))
	web.NewPageHandler(pages, deps.Forms, deps.NewsletterUC, web.Options{
		SecureCookies: cfg.SecureCookies,
		ResetAfter:    cfg.ContactResetDelay,
	}, submit...)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		msg := "System operational"
		if status["status"] != "ok" {
			msg = "System degraded"
		}
		response.Success(c, http.StatusOK, msg, status)
	})

	// Public routes
	NewContactHandler(v1, deps.ContactUC, submit...)
	NewNewsletterHandler(v1, deps.NewsletterUC, submit...)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin routes exist only with both a signing secret and inquiry storage
	if cfg.AdminJWTSecret != "" && deps.InquiryUC != nil {
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.AdminJWTSecret))
		NewAdminHandler(admin, deps.InquiryUC)
	}

	// API clients get the JSON envelope; everything else a plain 404
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
			_ = c.Error(apperror.NotFound("Resource not found"))
			return
		}
		c.String(http.StatusNotFound, "404 page not found")
	})

	return r
}

// chain returns submit followed by h without aliasing submit's backing array
func chain(submit []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(submit)+1)
	out = append(out, submit...)
	return append(out, h)
}
