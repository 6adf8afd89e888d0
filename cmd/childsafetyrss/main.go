package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/di"
	pipelineService "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/pipeline/service"
	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/shared/config"
	httpServer "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	command := "run"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "run":
		runOnce(injector)
	case "serve":
		serve(injector)
	default:
		slog.Error("Unknown command", "command", command)
		slog.Info("Usage: childsafetyrss [run|serve]")
		os.Exit(1)
	}
}

// runOnce executes a single generation pass and exits. The process succeeds
// whenever the degradation chain resolved, including the runs that preserved
// the old artifact or published a placeholder.
func runOnce(injector do.Injector) {
	pipeline := do.MustInvoke[*pipelineService.Service](injector)

	if err := pipeline.Run(context.Background()); err != nil {
		slog.Error("Feed generation failed", "error", err)
		os.Exit(1)
	}
}

// serve keeps the feed fresh on an interval and exposes it over HTTP until
// interrupted.
func serve(injector do.Injector) {
	cfg := do.MustInvoke[*config.Config](injector)
	pipeline := do.MustInvoke[*pipelineService.Service](injector)
	server := do.MustInvoke[*httpServer.Server](injector)

	// Refresh the feed immediately and then on every update interval
	pipeline.Start()

	// Start HTTP server
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Application started", "port", cfg.HTTPPort)
	slog.Info("Press Ctrl+C to stop")

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	slog.Info("Shutting down...")
}
