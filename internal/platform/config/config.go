package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                  string
	Environment           string
	JWTSecret             string
	SessionTimeout        time.Duration
	AllowedNetworks       []string
	CORSOrigins           []string
	MaxBodyBytes          int64
	RateLimitPerMinute    int
	MetricsEnabled        bool
	LeaveDeductOnApproval bool
	SeedDemoData          bool
}

func Load() Config {
	// Best effort; a missing .env file is not an error.
	_ = godotenv.Load()

	return Config{
		Addr:                  getEnv("APP_ADDR", ":8080"),
		Environment:           getEnv("APP_ENV", "development"),
		JWTSecret:             getEnv("JWT_SECRET", "dev-insecure-secret"),
		SessionTimeout:        getEnvDuration("SESSION_TIMEOUT", 5*time.Minute),
		AllowedNetworks:       getEnvList("ALLOWED_NETWORKS", []string{"127.0.0.1/32", "192.168.1.0/24", "10.0.0.0/8", "::1/128"}),
		CORSOrigins:           getEnvList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		MaxBodyBytes:          int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:    getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		MetricsEnabled:        getEnvBool("METRICS_ENABLED", true),
		LeaveDeductOnApproval: getEnvBool("LEAVE_DEDUCT_ON_APPROVAL", true),
		SeedDemoData:          getEnvBool("SEED_DEMO_DATA", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func (c Config) Validate() error {
	if c.Environment == "production" && c.JWTSecret == "dev-insecure-secret" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.SessionTimeout < time.Minute {
		return fmt.Errorf("SESSION_TIMEOUT must be at least 1m")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	for _, cidr := range c.AllowedNetworks {
		if _, err := netip.ParsePrefix(cidr); err != nil {
			return fmt.Errorf("ALLOWED_NETWORKS entry %q is not a valid CIDR prefix", cidr)
		}
	}
	return nil
}
