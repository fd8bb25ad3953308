package dash

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/midbel/animcharts"
	"github.com/midbel/animcharts/frame"
)

var ErrScreen = errors.New("screen not found")

// Board shows one screen at a time. Showing a screen tears down the elements
// of the screen shown before, cancelling their pending frames.
type Board struct {
	Screens  []Screen
	Settings Settings
	Theme    charts.Theme
	Sink     Sink
	Clock    frame.Clock
	Logger   *slog.Logger

	// Scheduler overrides the ticker built from Settings.FPS.
	Scheduler frame.Scheduler

	mu      sync.Mutex
	active  string
	group   *frame.Group
	running []element
}

func NewBoard(set Settings, sink Sink, screens ...Screen) *Board {
	return &Board{
		Screens:  screens,
		Settings: set,
		Theme:    charts.DefaultTheme(),
		Sink:     sink,
		Clock:    frame.SystemClock{},
	}
}

func (b *Board) Active() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

func (b *Board) Names() []string {
	var list []string
	for _, s := range b.Screens {
		list = append(list, s.Name)
	}
	return list
}

// Show starts the elements of the named screen after having torn down the
// ones currently running.
func (b *Board) Show(ctx context.Context, name string) error {
	scr, ok := b.lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrScreen)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.teardown(); err != nil {
		return err
	}
	var (
		now   = b.now()
		elems = scr.elements(b.Settings, b.Theme, b.Sink)
	)
	for _, e := range elems {
		if err := e.start(now); err != nil {
			return err
		}
	}
	b.group = frame.NewGroup(ctx, b.scheduler())
	b.running = elems
	b.active = scr.Name
	for _, e := range elems {
		b.group.Go(e.step)
	}
	b.logger().Debug("screen shown", "screen", scr.Name, "elements", len(elems))
	return nil
}

// Wait blocks until every element of the active screen settled.
func (b *Board) Wait() error {
	b.mu.Lock()
	g := b.group
	b.mu.Unlock()
	if g == nil {
		return nil
	}
	return g.Wait()
}

// Close tears down the active screen.
func (b *Board) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.teardown()
}

func (b *Board) teardown() error {
	if b.group == nil {
		return nil
	}
	err := b.group.Cancel()
	for _, e := range b.running {
		e.stop()
	}
	b.logger().Debug("screen torn down", "screen", b.active)
	b.group, b.running, b.active = nil, nil, ""
	return err
}

func (b *Board) lookup(name string) (Screen, bool) {
	for _, s := range b.Screens {
		if s.Name == name {
			return s, true
		}
	}
	return Screen{}, false
}

func (b *Board) scheduler() frame.Scheduler {
	if b.Scheduler != nil {
		return b.Scheduler
	}
	t := frame.NewTicker(b.Settings.FPS)
	if b.Clock != nil {
		t.Clock = b.Clock
	}
	return t
}

func (b *Board) now() time.Time {
	if b.Clock == nil {
		return time.Now()
	}
	return b.Clock.Now()
}

func (b *Board) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b.Logger
}
