// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package main is the entry point for the flightmap server.
//
// The server exposes regional UAV flight statistics as JSON, colors the
// region map from them, and serves the browser dashboard from the asset
// root.
//
// # Startup
//
//  1. Configuration: defaults, config.yaml, environment (koanf v2)
//  2. Logging: zerolog, level and format from configuration
//  3. Dataset: embedded fixtures, plus the legacy /update document if configured
//  4. Router: chi middleware in front of the ordered route table
//  5. Supervisor: suture tree running the HTTP service
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The HTTP service stops
// accepting connections and drains in-flight requests within
// SHUTDOWN_TIMEOUT, then the process exits 0.
//
// # Example Usage
//
//	HTTP_PORT=8080 ASSETS_ROOT=./web ./flightmap
//
//	LEGACY_UPDATE_PATH=/srv/flightmap/update.json LOG_FORMAT=console ./flightmap
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lctflights/flightmap/internal/api"
	"github.com/lctflights/flightmap/internal/config"
	"github.com/lctflights/flightmap/internal/dataset"
	"github.com/lctflights/flightmap/internal/logging"
	"github.com/lctflights/flightmap/internal/supervisor"
	"github.com/lctflights/flightmap/internal/supervisor/services"
)

const idleTimeout = 60 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Str("asset_root", cfg.Assets.Root).
		Bool("legacy_update", cfg.Data.LegacyUpdatePath != "").
		Msg("Starting flightmap")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Str("allow_origin", cfg.CORS.AllowOrigin).
			Msg("Wildcard CORS origin in production; set CORS_ALLOW_ORIGIN")
	}

	store, err := newStore(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	if info, err := os.Stat(cfg.Assets.Root); err != nil || !info.IsDir() {
		logging.Warn().Str("asset_root", cfg.Assets.Root).Msg("Asset root is not a directory; static requests will return 404")
	}

	router, err := api.NewRouter(cfg, store, os.DirFS(cfg.Assets.Root))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build router")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, draining")
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Flightmap stopped")
}

func newStore(cfg *config.Config) (*dataset.Store, error) {
	var opts []dataset.Option
	if path := cfg.Data.LegacyUpdatePath; path != "" {
		doc, err := dataset.LoadLegacy(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dataset.WithLegacyDocument(doc))
		logging.Info().Str("path", path).Int("bytes", len(doc)).Msg("Legacy /update document loaded")
	}
	return dataset.New(opts...)
}
