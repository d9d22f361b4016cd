package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Dashboard holds the settings of the server-rendered dashboard.
type Dashboard struct {
	Port         string
	APIBaseURL   string
	APITimeout   time.Duration
	GinMode      string
	LogLevel     string
	CookieSecure bool
}

// Legacy holds the settings of the standalone reservation form.
type Legacy struct {
	Port       string
	APIBaseURL string
	APITimeout time.Duration
}

// DevAPI holds the settings of the reference REST API.
type DevAPI struct {
	Port          string
	DBDriver      string
	DBDSN         string
	JWTSecret     string
	RequireAuth   bool
	AdminEmail    string
	AdminPassword string
	CORSOrigin    string
}

type Config struct {
	Dashboard Dashboard
	Legacy    Legacy
	DevAPI    DevAPI
}

// Load reads .env (when present) and the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, bool) {
	loaded := godotenv.Load() == nil

	return &Config{
		Dashboard: Dashboard{
			Port:         getEnvString("PORT", "8080"),
			APIBaseURL:   strings.TrimRight(getEnvString("API_BASE_URL", "http://localhost:5000"), "/"),
			APITimeout:   getEnvDuration("API_TIMEOUT", 30*time.Second),
			GinMode:      getEnvString("GIN_MODE", "debug"),
			LogLevel:     getEnvString("LOG_LEVEL", "info"),
			CookieSecure: getEnvBool("COOKIE_SECURE", false),
		},
		Legacy: Legacy{
			Port:       getEnvString("LEGACY_PORT", "5500"),
			APIBaseURL: strings.TrimRight(getEnvString("LEGACY_API_URL", "http://127.0.0.1:5000"), "/"),
			APITimeout: getEnvDuration("API_TIMEOUT", 30*time.Second),
		},
		DevAPI: DevAPI{
			Port:          getEnvString("DEVAPI_PORT", "5000"),
			DBDriver:      getEnvString("DB_DRIVER", "sqlite"),
			DBDSN:         getEnvString("DB_DSN", "reservas.db"),
			JWTSecret:     getEnvString("JWT_SECRET", ""),
			RequireAuth:   getEnvBool("REQUIRE_AUTH", false),
			AdminEmail:    getEnvString("ADMIN_EMAIL", "admin@restaurante.com"),
			AdminPassword: getEnvString("ADMIN_PASSWORD", "admin123"),
			CORSOrigin:    getEnvString("CORS_ORIGIN", "*"),
		},
	}, loaded
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
