package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT carries identity only; role and tenant are re-read per request.
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Text generation (activity summaries)
	AnthropicAPIKey  string
	AnthropicBaseURL string
	AnthropicModel   string
	AnthropicVersion string
	SummaryMaxTokens int
	SummaryTimezone  string
	AITimeout        time.Duration

	// Demo account
	DemoEmail      string
	DemoPassword   string
	DemoTenantName string

	// Server
	Port        string
	CORSOrigins string
	AppEnv      string

	// Observability
	SentryDSN    string
	OTelEndpoint string
	OTelInsecure bool

	// Optional Redis for shared rate limiting
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Optional seed data applied at startup
	SeedFile string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "dashboard_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		AnthropicVersion: getEnv("ANTHROPIC_VERSION", "2023-06-01"),
		SummaryMaxTokens: parseInt(getEnv("SUMMARY_MAX_TOKENS", "1000"), 1000),
		SummaryTimezone:  getEnv("SUMMARY_TIMEZONE", "UTC"),
		AITimeout:        parseDuration(getEnv("AI_TIMEOUT", "60s"), 60*time.Second),

		DemoEmail:      getEnv("DEMO_EMAIL", "demo@acme.com"),
		DemoPassword:   getEnv("DEMO_PASSWORD", "demo123456"),
		DemoTenantName: getEnv("DEMO_TENANT_NAME", "Acme Corporation"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		AppEnv:      getEnv("APP_ENV", "production"),

		SentryDSN:    getEnv("SENTRY_DSN", ""),
		OTelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTelInsecure: getEnv("OTEL_EXPORTER_OTLP_INSECURE", "") == "true",

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       parseInt(getEnv("REDIS_DB", "0"), 0),

		SeedFile: getEnv("SEED_FILE", ""),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// IsDevelopment reports whether error details may be echoed to clients.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// SummaryLocation resolves SummaryTimezone, falling back to UTC.
func (c *Config) SummaryLocation() *time.Location {
	loc, err := time.LoadLocation(c.SummaryTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
