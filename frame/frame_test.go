package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestInterval(t *testing.T) {
	tests := []struct {
		FPS  int
		Want time.Duration
	}{
		{FPS: 60, Want: time.Second / 60},
		{FPS: 25, Want: 40 * time.Millisecond},
		{FPS: 0, Want: time.Second / DefaultFPS},
		{FPS: -1, Want: time.Second / DefaultFPS},
	}
	for _, tt := range tests {
		if got := Interval(tt.FPS); got != tt.Want {
			t.Errorf("interval at %d fps: want %s, got %s", tt.FPS, tt.Want, got)
		}
	}
}

func TestManual(t *testing.T) {
	m := Frames(epoch, 100*time.Millisecond, 10)
	if len(m.Times) != 10 {
		t.Fatalf("frames: want 10, got %d", len(m.Times))
	}
	if last := m.Times[9]; !last.Equal(epoch.Add(900 * time.Millisecond)) {
		t.Errorf("last frame: want %s, got %s", epoch.Add(900*time.Millisecond), last)
	}

	var seen []time.Time
	err := m.Run(context.Background(), func(now time.Time) bool {
		seen = append(seen, now)
		return len(seen) < 4
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 4 {
		t.Errorf("settled step should stop the loop: got %d frames", len(seen))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var called bool
	if err := m.Run(ctx, func(time.Time) bool { called = true; return true }); err != nil {
		t.Errorf("cancelled loop should not report an error: %v", err)
	}
	if called {
		t.Errorf("cancelled loop should not deliver frames")
	}
}

func TestTickerSettle(t *testing.T) {
	var (
		count int32
		tick  = Ticker{FPS: 1000, Clock: At(epoch)}
	)
	err := tick.Run(context.Background(), func(now time.Time) bool {
		if !now.Equal(epoch) {
			t.Errorf("frame time should come from the clock: got %s", now)
		}
		return atomic.AddInt32(&count, 1) < 3
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("frames: want 3, got %d", count)
	}
}

func TestTickerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var (
		count int32
		done  = make(chan error, 1)
	)
	go func() {
		done <- NewTicker(1000).Run(ctx, func(time.Time) bool {
			atomic.AddInt32(&count, 1)
			return true
		})
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("cancelled loop should not report an error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("loop not stopped after cancellation")
	}
	if atomic.LoadInt32(&count) == 0 {
		t.Errorf("no frame delivered before cancellation")
	}
}

type blocking struct{}

func (blocking) Run(ctx context.Context, step Step) error {
	step(epoch)
	<-ctx.Done()
	return nil
}

func TestGroup(t *testing.T) {
	g := NewGroup(context.Background(), Frames(epoch, time.Millisecond, 5))
	var count int32
	for i := 0; i < 3; i++ {
		g.Go(func(time.Time) bool {
			atomic.AddInt32(&count, 1)
			return true
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if count != 15 {
		t.Errorf("frames: want 15, got %d", count)
	}

	g = NewGroup(context.Background(), blocking{})
	var started int32
	for i := 0; i < 3; i++ {
		g.Go(func(time.Time) bool {
			atomic.AddInt32(&started, 1)
			return true
		})
	}
	for atomic.LoadInt32(&started) < 3 {
		time.Sleep(time.Millisecond)
	}
	if err := g.Cancel(); err != nil {
		t.Errorf("cancelled group should not report an error: %v", err)
	}
}
