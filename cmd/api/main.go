package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/pageza/macro-service/backend/config"
	"github.com/pageza/macro-service/backend/internal/api"
	"github.com/pageza/macro-service/backend/internal/database"
	"github.com/pageza/macro-service/backend/internal/logging"
	"github.com/pageza/macro-service/backend/internal/middleware"
	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/server"
	"github.com/pageza/macro-service/backend/internal/service"
	"github.com/pageza/macro-service/backend/internal/spreadsheet"
	"github.com/pageza/macro-service/backend/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	EnvFile string `help:"Load environment variables from this file." type:"path" optional:""`
	Port    string `help:"Override SERVER_PORT."`
	Debug   bool   `help:"Log at debug level."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("macro-service"),
		kong.Description("Food catalog, meal store and per-meal macro targets over HTTP"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var envFiles []string
	if CLI.EnvFile != "" {
		envFiles = append(envFiles, CLI.EnvFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	if CLI.Port != "" {
		cfg.ServerPort = CLI.Port
	}
	if CLI.Debug {
		cfg.LogLevel = "debug"
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	closer, err := logging.Setup(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		Production: config.IsProduction(),
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := spreadsheet.NewSource(ctx, cfg)
	if err != nil {
		return err
	}
	base, hasType, err := spreadsheet.LoadFoods(ctx, src, spreadsheet.DefaultColumns)
	if err != nil {
		return err
	}

	foods, err := service.NewFoodService(base, hasType, store.NewJSONFile[[]models.FoodRecord](cfg.CustomFoodsFile))
	if err != nil {
		return err
	}
	meals, err := service.NewMealService(store.NewJSONFile[models.MealBook](cfg.MealsFile))
	if err != nil {
		return err
	}

	deps := api.Deps{
		Foods:     foods,
		Meals:     meals,
		Macros:    service.NewMacroService(foods, cfg.FoodOptionsLimit),
		StaticDir: cfg.StaticDir,
	}

	if cfg.RedisEnabled() {
		var redisClient *redis.Client
		redisClient, err = database.NewRedisClient(ctx, cfg)
		if err != nil {
			// Continue without rate limiting if Redis is not available
			log.Warn().Err(err).Msg("Rate limiting disabled")
		} else {
			defer redisClient.Close()
			deps.Limiter = middleware.NewWriteRateLimiter(redisClient, cfg.RateLimitPerMinute)
		}
	}

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}
