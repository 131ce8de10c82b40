package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string
	StaticDir  string

	// Allowed CORS origins; empty allows any origin
	CORSAllowedOrigins []string

	// Food table sources
	FoodDatabasePath      string
	FoodSheet             string
	GoogleSheetID         string
	GoogleCredentialsFile string

	// JSON stores
	CustomFoodsFile string
	MealsFile       string

	FoodOptionsLimit int

	// Redis configuration, used for rate limiting when set
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	RateLimitPerMinute int

	AWSRegion string

	// Logging
	LogLevel string
	LogFile  string
}

// LoadConfig reads the configuration with Load and validates it
func LoadConfig(envFiles ...string) (*Config, error) {
	cfg, err := Load(envFiles...)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Load reads an optional .env file and builds the configuration from
// environment variables and Docker secrets without validating it, so callers
// can apply overrides first
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		// A missing .env file is fine; the environment may already be populated.
		_ = godotenv.Load()
	}

	env := GetEnvironment()
	cfg := &Config{
		ServerHost:            getEnvWithDefault("SERVER_HOST", "0.0.0.0"),
		ServerPort:            getEnvWithDefault("SERVER_PORT", "3000"),
		StaticDir:             getEnvWithDefault("STATIC_DIR", "static"),
		CORSAllowedOrigins:    splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		FoodDatabasePath:      getEnvWithDefault("FOOD_DATABASE_PATH", "Food Calculator.xlsx"),
		FoodSheet:             getEnvWithDefault("FOOD_DATABASE_SHEET", "DATABASE"),
		GoogleSheetID:         os.Getenv("GOOGLE_SHEET_ID"),
		GoogleCredentialsFile: getEnvWithDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		CustomFoodsFile:       getEnvWithDefault("CUSTOM_FOODS_FILE", "custom_foods.json"),
		MealsFile:             getEnvWithDefault("MEALS_FILE", "saved_meals.json"),
		RedisURL:              os.Getenv("REDIS_URL"),
		RedisHost:             os.Getenv("REDIS_HOST"),
		RedisPort:             getEnvWithDefault("REDIS_PORT", "6379"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		AWSRegion:             os.Getenv("AWS_REGION"),
		LogFile:               os.Getenv("LOG_FILE"),
	}

	if cfg.RedisPassword == "" {
		cfg.RedisPassword = readSecret("redis_password")
	}

	defaultLevel := "info"
	if env == Production {
		defaultLevel = "warn"
	}
	cfg.LogLevel = strings.ToLower(getEnvWithDefault("LOG_LEVEL", defaultLevel))

	var errs []string
	var err error
	if cfg.FoodOptionsLimit, err = getIntEnv("FOOD_OPTIONS_LIMIT", 50); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.RedisDB, err = getIntEnv("REDIS_DB", 0); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.RateLimitPerMinute, err = getIntEnv("RATE_LIMIT_PER_MINUTE", 60); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to load %s configuration:\n%s", env, strings.Join(errs, "\n"))
	}

	return cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RedisEnabled reports whether a Redis server is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// getEnvWithDefault fetches an environment variable with a default fallback.
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList splits a comma-separated value, dropping blank entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("must be an integer, got %q", value)}
	}
	return n, nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
