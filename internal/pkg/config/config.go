package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// HistoryPath points at the placement history file. Compression is
	// chosen from the extension (.gz, .zst, or none).
	HistoryPath string `env:"HISTORY_PATH" envDefault:"timestamp_sorted_history.csv.gz"`

	// SkipHeader discards the first record of the history. The published
	// dataset carries a header row.
	SkipHeader bool `env:"HISTORY_SKIP_HEADER" envDefault:"true"`

	// Analysis selects the aggregation to run: heatmap, lastcolor,
	// recency, or discard.
	Analysis string `env:"ANALYSIS" envDefault:"heatmap"`

	OutputPath string `env:"OUTPUT_PATH" envDefault:"canvas.png"`

	// PreviewScale shrinks the output image by an integer factor;
	// 1 keeps the full 2000x2000 canvas.
	PreviewScale int `env:"PREVIEW_SCALE" envDefault:"1"`

	// ProgressInterval is the number of rows between console progress
	// updates.
	ProgressInterval int64 `env:"PROGRESS_INTERVAL" envDefault:"10000"`

	// ProgressStyle is "console" for an in-place status line or "log" for
	// throttled structured log lines.
	ProgressStyle string `env:"PROGRESS_STYLE" envDefault:"console"`

	// ProgressLogEvery throttles progress when it goes to the structured
	// log instead of the console status line.
	ProgressLogEvery time.Duration `env:"PROGRESS_LOG_EVERY" envDefault:"5s"`

	// MetricsAddr enables the Prometheus listener when non-empty.
	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
