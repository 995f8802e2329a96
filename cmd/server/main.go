package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/tilegame-go/internal/api"
	"github.com/mcoot/tilegame-go/internal/factory"
	redisstorage "github.com/mcoot/tilegame-go/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		RulesPath:   os.Getenv("TILEGAME_RULES"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg, err := redisstorage.ConfigFromEnv(os.Getenv)
		if err != nil {
			logger.Error("invalid redis config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		DefaultConfig:  app.DefaultConfig,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)

	serverConfig := api.DefaultServerConfig()
	if err := serverConfig.ApplyEnv(os.Getenv); err != nil {
		logger.Error("invalid server config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if closer, ok := app.Storage.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("closing storage", slog.String("error", err.Error()))
		}
	}
	logger.Info("server stopped")
}
