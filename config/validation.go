package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks every setting and reports all problems at once
func ValidateConfig(cfg *Config) error {
	var errs []string
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg}.Error())
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		add("SERVER_PORT", fmt.Sprintf("must be a port number between 1 and 65535, got %q", cfg.ServerPort))
	}

	required := map[string]string{
		"FOOD_DATABASE_SHEET": cfg.FoodSheet,
		"CUSTOM_FOODS_FILE":   cfg.CustomFoodsFile,
		"MEALS_FILE":          cfg.MealsFile,
	}
	if cfg.GoogleSheetID == "" {
		required["FOOD_DATABASE_PATH"] = cfg.FoodDatabasePath
	} else {
		required["GOOGLE_CREDENTIALS_FILE"] = cfg.GoogleCredentialsFile
	}
	for _, field := range sortedKeys(required) {
		if strings.TrimSpace(required[field]) == "" {
			add(field, "must not be empty")
		}
	}

	if cfg.FoodOptionsLimit <= 0 {
		add("FOOD_OPTIONS_LIMIT", "must be greater than zero")
	}
	if cfg.RateLimitPerMinute <= 0 {
		add("RATE_LIMIT_PER_MINUTE", "must be greater than zero")
	}
	if cfg.RedisDB < 0 {
		add("REDIS_DB", "must not be negative")
	}

	if GetEnvironment() == Production && strings.HasPrefix(cfg.FoodDatabasePath, "s3://") && cfg.AWSRegion == "" {
		add("AWS_REGION", "is required when FOOD_DATABASE_PATH points to S3 in production")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		add("LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.LogLevel))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
