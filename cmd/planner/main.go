package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"planner/internal/config"
	"planner/internal/core"
	"planner/internal/seed"
	"planner/internal/server"
	"planner/internal/storage"
	"planner/internal/storage/jsonfile"
	"planner/internal/storage/sqlite"
	"planner/internal/util"
)

func main() {
	configFlag := flag.String("config", util.EnvOrDefault("PLANNER_CONFIG", "planner.yaml"), "Path to YAML config file")
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides config)")
	dataFlag := flag.String("data", "", "Storage root directory (overrides config)")
	backendFlag := flag.String("backend", "", "Storage backend: file or sqlite (overrides config)")
	seedFlag := flag.Bool("seed", false, "Seed demo data and exit")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *dataFlag != "" {
		cfg.DataDir = *dataFlag
	}
	if *backendFlag != "" {
		cfg.Backend = *backendFlag
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	backend, err := openBackend(cfg)
	if err != nil {
		logger.Error("unable to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := storage.Open(backend, logger)
	if err != nil {
		logger.Error("unable to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	planner := core.New(store, cfg.ExportDir, logger)

	if *seedFlag {
		result, err := seed.Run(planner)
		if err != nil {
			logger.Error("seeding failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		out, _ := json.MarshalIndent(result, "", "  ")
		logger.Info("seed done")
		os.Stdout.Write(append(out, '\n'))
		return
	}

	srv := server.New(planner, logger)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr), slog.String("backend", cfg.Backend))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

// openBackend picks the durable medium the store writes through.
func openBackend(cfg config.Config) (storage.Backend, error) {
	if cfg.Backend == config.BackendSQLite {
		return sqlite.Open(filepath.Join(cfg.DataDir, "planner.db"))
	}
	return jsonfile.New(cfg.DataDir), nil
}
