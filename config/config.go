package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	SiteURL  string
	// Extra CORS origins on top of SiteURL (comma separated)
	AllowedOrigins []string
	// Contact form behaviour
	ContactResetDelay time.Duration
	SessionTTL        time.Duration
	// Cookies carry the Secure flag (HTTPS deployments)
	SecureCookies bool
	// Optional persistence for inquiries and newsletter subscribers
	DBUrl string
	// SMTP Configuration (optional inquiry notification)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSubmitThreshold int
	RateLimitGlobalThreshold int
	// Admin API (inquiry listing). Empty disables the admin routes.
	AdminJWTSecret string
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; production injects real env vars
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SiteURL:        strings.TrimRight(getEnv("SITE_URL", "http://localhost:8080"), "/"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
		// 5s matches the thank-you panel duration
		ContactResetDelay: getEnvDuration("CONTACT_RESET_SECONDS", 5*time.Second, time.Second),
		SessionTTL:        getEnvDuration("SESSION_TTL_MINUTES", 30*time.Minute, time.Minute),
		SecureCookies:     getEnvBool("SECURE_COOKIES", false),
		DBUrl:             getEnv("DATABASE_URL", ""),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "noreply@pondpatrol.in"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "contact@pondpatrol.in"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		AdminJWTSecret:           getEnv("ADMIN_JWT_SECRET", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("INFO: DATABASE_URL not set. Inquiries will be logged only.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("INFO: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// RateLimitWindow returns the configured window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration reads an integer count of unit. Non-positive values fall back.
func getEnvDuration(key string, fallback, unit time.Duration) time.Duration {
	n := getEnvInt(key, 0)
	if n <= 0 {
		return fallback
	}
	return time.Duration(n) * unit
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
