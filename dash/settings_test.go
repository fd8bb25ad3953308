package dash

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadSettings(t *testing.T) {
	set, err := LoadFrom(context.Background(), envconfig.MapLookuper(nil))
	if err != nil {
		t.Fatal(err)
	}
	if set != Default() {
		t.Errorf("defaults mismatched: want %+v, got %+v", Default(), set)
	}

	env := map[string]string{
		"ANIM_FPS":              "30",
		"ANIM_LINE_DURATION":    "2s",
		"ANIM_COUNTER_DURATION": "150ms",
		"ANIM_LOG_LEVEL":        "DEBUG",
	}
	set, err = LoadFrom(context.Background(), envconfig.MapLookuper(env))
	if err != nil {
		t.Fatal(err)
	}
	if set.FPS != 30 {
		t.Errorf("fps: want 30, got %d", set.FPS)
	}
	if set.LineDuration != 2*time.Second || set.CounterDuration != 150*time.Millisecond {
		t.Errorf("durations not loaded: %s, %s", set.LineDuration, set.CounterDuration)
	}
	if set.BarDuration != 900*time.Millisecond {
		t.Errorf("bar duration: want default, got %s", set.BarDuration)
	}
	if set.Level() != slog.LevelDebug {
		t.Errorf("level: want debug, got %s", set.Level())
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []map[string]string{
		{"ANIM_FPS": "0"},
		{"ANIM_FPS": "fast"},
		{"ANIM_BAR_DURATION": "soon"},
	}
	for _, env := range tests {
		if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(env)); err == nil {
			t.Errorf("%v: expected error", env)
		}
	}
}
