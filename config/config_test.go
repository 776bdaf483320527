package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONTACT_RESET_SECONDS", "")
	t.Setenv("SESSION_TTL_MINUTES", "-4")
	t.Setenv("SITE_URL", "https://pondpatrol.in/")
	t.Setenv("ALLOWED_ORIGINS", " https://www.pondpatrol.in/ ,,https://preview.pondpatrol.in")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ContactResetDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "https://pondpatrol.in", cfg.SiteURL)
	assert.Equal(t, []string{"https://www.pondpatrol.in", "https://preview.pondpatrol.in"}, cfg.AllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CONTACT_RESET_SECONDS", "2")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")
	t.Setenv("SECURE_COOKIES", "true")
	t.Setenv("GIN_MODE", "release")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.ContactResetDelay)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow())
	assert.True(t, cfg.SecureCookies)
	assert.True(t, cfg.IsProduction())
}
