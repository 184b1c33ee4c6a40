package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SecretKey string
	Algorithm string
	TokenTTL  time.Duration

	PostgresURI string
	MongoURI    string
	RedisURI    string // optional; empty disables the history cache

	DiabetesModelPath string
	CardiacModelPath  string

	Port           string
	AllowedOrigins []string

	// AdminUsernames gates the unfiltered /historial endpoint. Empty list
	// disables it entirely.
	AdminUsernames []string

	// RequireAuthForPredictions is the auth policy for the predict endpoints,
	// expressed as an explicit flag instead of divergent endpoint copies.
	RequireAuthForPredictions bool
}

func Load() *Config {
	ttlMinutes := 30
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttlMinutes = parsed
		}
	}

	requireAuth := true
	if v := os.Getenv("REQUIRE_AUTH_FOR_PREDICTIONS"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			requireAuth = parsed
		}
	}

	return &Config{
		SecretKey:                 os.Getenv("SECRET_KEY"),
		Algorithm:                 getEnv("ALGORITHM", "HS256"),
		TokenTTL:                  time.Duration(ttlMinutes) * time.Minute,
		PostgresURI:               getEnv("POSTGRES_URI", "postgres://localhost:5432/salud?sslmode=disable"),
		MongoURI:                  getEnv("MONGO_URI", "mongodb://localhost:27017/salud"),
		RedisURI:                  os.Getenv("REDIS_URI"),
		DiabetesModelPath:         getEnv("DIABETES_MODEL_PATH", "artifacts/modelo_diabetes.json"),
		CardiacModelPath:          getEnv("CARDIAC_MODEL_PATH", "artifacts/modelo_cardiaco.json"),
		Port:                      getEnv("PORT", "8000"),
		AllowedOrigins:            splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		AdminUsernames:            splitList(os.Getenv("ADMIN_USERNAMES")),
		RequireAuthForPredictions: requireAuth,
	}
}

// Validate enforces the fail-fast startup contract: the service refuses to
// start without a signing key or with an unsupported signing algorithm.
// Model artifact paths are validated when the artifacts are loaded.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	if c.Algorithm != "HS256" {
		return fmt.Errorf("unsupported signing algorithm %q (only HS256 is supported)", c.Algorithm)
	}
	if c.DiabetesModelPath == "" || c.CardiacModelPath == "" {
		return errors.New("DIABETES_MODEL_PATH and CARDIAC_MODEL_PATH are required")
	}
	return nil
}

// IsAdmin reports whether username is in the admin allowlist.
func (c *Config) IsAdmin(username string) bool {
	for _, admin := range c.AdminUsernames {
		if admin == username {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
