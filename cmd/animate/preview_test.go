package main

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/midbel/animcharts"
	"github.com/midbel/animcharts/dash"
	"github.com/midbel/animcharts/frame"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		Samples  []float64
		Progress float64
		Want     string
	}{
		{Samples: []float64{1, 2, 3, 4}, Progress: 1, Want: "▁▃▅█"},
		{Samples: []float64{1, 2, 3, 4}, Progress: 0.5, Want: "▁▃  "},
		{Samples: []float64{1, 2, 3, 4}, Progress: 0, Want: "    "},
		{Samples: []float64{5, 5, 5}, Progress: 1, Want: "▁▁▁"},
		{Samples: nil, Progress: 1, Want: ""},
	}
	for _, tt := range tests {
		if got := sparkline(tt.Samples, tt.Progress); got != tt.Want {
			t.Errorf("sparkline(%v, %v): want %q, got %q", tt.Samples, tt.Progress, tt.Want, got)
		}
	}
}

func TestGauge(t *testing.T) {
	if got := gauge(0.5, 10); got != strings.Repeat("█", 5)+strings.Repeat(" ", 5) {
		t.Errorf("half gauge: got %q", got)
	}
	if got := gauge(2, 4); got != strings.Repeat("█", 4) {
		t.Errorf("overflowing gauge: got %q", got)
	}
}

func TestSampleScreens(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range sampleScreens() {
		if seen[s.Name] {
			t.Errorf("%s: duplicate screen", s.Name)
		}
		seen[s.Name] = true
		for _, i := range s.Lines {
			if len(i.Samples) < 2 {
				t.Errorf("%s/%s: not enough samples", s.Name, i.Name)
			}
		}
		for _, b := range s.Bars {
			if len(b.Stacks) == 0 {
				t.Errorf("%s/%s: no stacks", s.Name, b.Name)
			}
		}
	}
}

type discard struct{}

func (discard) Line(string, charts.LineFrame) {}

func (discard) Bar(string, charts.BarFrame) {}

func (discard) Counter(string, float64, string) {}

func testPreview() preview {
	board := dash.NewBoard(dash.Default(), discard{}, sampleScreens()...)
	board.Scheduler = frame.Manual{}
	return newPreview(context.Background(), board)
}

func TestPreviewSwitchOrder(t *testing.T) {
	p := testPreview()
	next, showAudience := p.switchTo(1)
	next, showSources := next.(preview).switchTo(2)

	showSources()
	showAudience()
	if got := p.board.Active(); got != "sources" {
		t.Errorf("older switch should be dropped: want sources, got %s", got)
	}
	if got := next.(preview).screens[next.(preview).index].Name; got != "sources" {
		t.Errorf("tab shown: want sources, got %s", got)
	}
}

func TestPreviewSwitchConcurrent(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := testPreview()
		next, fst := p.switchTo(1)
		_, snd := next.(preview).switchTo(2)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			fst()
		}()
		go func() {
			defer wg.Done()
			snd()
		}()
		wg.Wait()
		if got := p.board.Active(); got != "sources" {
			t.Fatalf("iteration %d: screen running does not match the tab shown: got %s", i, got)
		}
	}
}
