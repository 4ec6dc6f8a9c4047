package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/user/canvas-replay/internal/adapter/history"
	"github.com/user/canvas-replay/internal/adapter/metrics"
	"github.com/user/canvas-replay/internal/adapter/progress"
	"github.com/user/canvas-replay/internal/analysis"
	"github.com/user/canvas-replay/internal/domain"
	"github.com/user/canvas-replay/internal/pkg/config"
	"github.com/user/canvas-replay/internal/pkg/logger"
	"github.com/user/canvas-replay/internal/render"
	"github.com/user/canvas-replay/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel).With("run_id", uuid.NewString())
	slog.SetDefault(log)

	reg := prometheus.NewRegistry()
	m := metrics.NewReplayMetrics(reg)

	// --- Optional Metrics Server ---
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		metricsServer := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			log.Info("starting metrics server", "addr", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server failed", "error", err)
			}
		}()
		defer metricsServer.Close()
	}

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src := history.NewFileSource(cfg.HistoryPath, cfg.SkipHeader, log)

	log.Info("starting replay",
		"history", cfg.HistoryPath,
		"analysis", cfg.Analysis,
		"output", cfg.OutputPath,
	)

	start := time.Now()
	img, err := run(ctx, cfg, log, m, src)
	m.ReplayDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.ReplaysTotal.WithLabelValues("error").Inc()
		log.Error("replay failed", "error", err)
		os.Exit(1)
	}
	m.ReplaysTotal.WithLabelValues("ok").Inc()
	log.Info("replay finished", "duration", time.Since(start).Round(time.Millisecond))

	if img == nil {
		return // analysis produced no renderable result
	}

	if cfg.PreviewScale > 1 {
		img = render.Downscale(img, cfg.PreviewScale)
	}
	if err := render.SavePNG(cfg.OutputPath, img); err != nil {
		log.Error("failed to save output image", "error", err)
		os.Exit(1)
	}
	log.Info("wrote output image", "path", cfg.OutputPath)
}

// run dispatches to the selected analysis and renders its aggregate array.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger, m *metrics.ReplayMetrics, src domain.HistorySource) (image.Image, error) {
	switch cfg.Analysis {
	case "heatmap":
		counts, err := replayWith(ctx, cfg, log, m, src, analysis.NewHeatmap())
		if err != nil {
			return nil, err
		}
		return render.Intensity(counts)
	case "recency":
		times, err := replayWith(ctx, cfg, log, m, src, analysis.NewRecency())
		if err != nil {
			return nil, err
		}
		return render.Intensity(times)
	case "lastcolor":
		cells, err := replayWith(ctx, cfg, log, m, src, analysis.NewLastColor())
		if err != nil {
			return nil, err
		}
		return render.Raster(cells, func(c color.NRGBA) color.NRGBA { return c })
	case "discard":
		_, err := replayWith(ctx, cfg, log, m, src, domain.Discard{})
		return nil, err
	default:
		return nil, fmt.Errorf("unknown analysis %q", cfg.Analysis)
	}
}

// replayWith runs the replay with the progress and metrics decorators
// composed around the selected analysis.
func replayWith[R any](ctx context.Context, cfg *config.Config, log *slog.Logger, m *metrics.ReplayMetrics, src domain.HistorySource, a domain.Analysis[R]) (R, error) {
	opts := []progress.Option{progress.WithInterval(cfg.ProgressInterval)}
	if cfg.ProgressStyle == "log" {
		opts = append(opts, progress.WithReporter(progress.NewLogReporter(log, cfg.ProgressLogEvery)))
	}

	wrapped := metrics.Instrument(progress.New(a, os.Stderr, opts...), m)
	return usecase.Replay(ctx, src, wrapped)
}
