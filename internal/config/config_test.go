package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("SUMMARY_MAX_TOKENS", "")
	t.Setenv("AI_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 1000, cfg.SummaryMaxTokens)
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
	assert.Equal(t, "https://api.anthropic.com", cfg.AnthropicBaseURL)
	assert.Empty(t, cfg.AnthropicAPIKey)
	assert.Equal(t, "demo@acme.com", cfg.DemoEmail)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SUMMARY_MAX_TOKENS", "250")
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")
	t.Setenv("APP_ENV", "development")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 250, cfg.SummaryMaxTokens)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.True(t, cfg.IsDevelopment())
}

func TestSummaryLocationFallsBackToUTC(t *testing.T) {
	cfg := &Config{SummaryTimezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.SummaryLocation())

	cfg.SummaryTimezone = "UTC"
	assert.Equal(t, "UTC", cfg.SummaryLocation().String())
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
