package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// MinSimulatedDelay is the lower bound for every artificial delay.
const MinSimulatedDelay = time.Second

// Config holds all application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Redis       RedisConfig
	Geolocation GeolocationConfig
	Booking     BookingConfig
	Emergency   EmergencyConfig
	RateLimit   RateLimitConfig
	OTEL        OTELConfig
}

// AppConfig holds process-wide settings
type AppConfig struct {
	Env             string
	DefaultLanguage string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// GeolocationConfig holds location provider configuration
type GeolocationConfig struct {
	Provider   string
	DefaultLat float64
	DefaultLon float64
	Timeout    time.Duration
}

// BookingConfig holds booking flow configuration
type BookingConfig struct {
	ConfirmationDelay time.Duration
}

// EmergencyConfig holds emergency matching configuration
type EmergencyConfig struct {
	SearchDelay time.Duration
	Surcharge   int64
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:             getEnv("APP_ENV", "development"),
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		},
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Geolocation: GeolocationConfig{
			Provider:   getEnv("GEOLOCATION_PROVIDER", "mock"),
			DefaultLat: getEnvAsFloat("GEOLOCATION_DEFAULT_LAT", 23.8103),
			DefaultLon: getEnvAsFloat("GEOLOCATION_DEFAULT_LON", 90.4125),
			Timeout:    getEnvAsDuration("LOCATION_TIMEOUT", 5*time.Second),
		},
		Booking: BookingConfig{
			ConfirmationDelay: atLeast(getEnvAsDuration("BOOKING_CONFIRMATION_DELAY", 3*time.Second), MinSimulatedDelay),
		},
		Emergency: EmergencyConfig{
			SearchDelay: atLeast(getEnvAsDuration("EMERGENCY_SEARCH_DELAY", 2*time.Second), MinSimulatedDelay),
			Surcharge:   int64(getEnvAsInt("EMERGENCY_SURCHARGE", 250)),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "nursecare-storefront"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}

	switch cfg.Geolocation.Provider {
	case "mock", "device":
	default:
		return nil, fmt.Errorf("unsupported GEOLOCATION_PROVIDER %q (want mock or device)", cfg.Geolocation.Provider)
	}

	return cfg, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Addr returns the HTTP listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func atLeast(d, floor time.Duration) time.Duration {
	if d < floor {
		return floor
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
