package dash

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/midbel/animcharts"
	"github.com/midbel/animcharts/frame"
)

// Settings holds the timings of the animated elements of a board.
type Settings struct {
	FPS             int           `env:"ANIM_FPS,default=60"`
	LineDuration    time.Duration `env:"ANIM_LINE_DURATION,default=1s"`
	BarDuration     time.Duration `env:"ANIM_BAR_DURATION,default=900ms"`
	CounterDuration time.Duration `env:"ANIM_COUNTER_DURATION,default=900ms"`
	LogLevel        string        `env:"ANIM_LOG_LEVEL,default=info"`
}

func Default() Settings {
	return Settings{
		FPS:             frame.DefaultFPS,
		LineDuration:    charts.DefaultLineDuration,
		BarDuration:     charts.DefaultBarDuration,
		CounterDuration: charts.DefaultCounterDuration,
		LogLevel:        "info",
	}
}

// Load reads the settings from the environment.
func Load(ctx context.Context) (Settings, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

func LoadFrom(ctx context.Context, lookup envconfig.Lookuper) (Settings, error) {
	var set Settings
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &set,
		Lookuper: lookup,
	})
	if err != nil {
		return set, fmt.Errorf("failed to process settings: %w", err)
	}
	if set.FPS <= 0 {
		return set, fmt.Errorf("invalid frame rate: %d", set.FPS)
	}
	return set, nil
}

func (s Settings) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
