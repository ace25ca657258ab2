// Command viz serves the interactive 3D geomagnetic storm dashboard.
//
// It reads one OMNI-style .lst file eagerly at startup, then serves the
// dashboard page, a JSON API for the browser-side controls, and the usual
// operational endpoints. If the dataset cannot be loaded the process exits
// without ever starting the interactive view.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/omni-storm-viz/internal/adapter/http"
	"github.com/couchcryptid/omni-storm-viz/internal/adapter/lst"
	"github.com/couchcryptid/omni-storm-viz/internal/config"
	"github.com/couchcryptid/omni-storm-viz/internal/observability"
	"github.com/couchcryptid/omni-storm-viz/internal/render"
	"github.com/couchcryptid/omni-storm-viz/internal/viz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Load the dataset once, before anything interactive exists. A file that
	// cannot be turned into a dataset is terminal: no dashboard is started.
	parser := lst.NewParser(logger)
	ds, stats, err := parser.Parse(cfg.DataPath)
	if err != nil {
		logger.Error("dataset unavailable, not starting dashboard",
			"path", cfg.DataPath, "error", err)
		os.Exit(1)
	}

	metrics.DatasetRows.Set(float64(ds.Len()))
	metrics.RowsSkipped.Set(float64(stats.Skipped))
	metrics.NullTimestamps.Set(float64(stats.NullTimestamps))
	metrics.DatasetLoadedAt.Set(float64(ds.LoadedAt.Unix()))

	opts := render.Options{MarkerSize: cfg.MarkerSize, ColorScale: cfg.ColorScale}
	svc := viz.New(ds, opts, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
