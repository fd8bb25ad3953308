// Package frame schedules the per-frame callbacks of animated elements.
//
// Every element runs its own loop: there is no scheduler shared between
// elements. A loop ends when its step reports that the element settled or
// when its context is cancelled, which is how an element is torn down.
package frame

import (
	"context"
	"time"
)

const DefaultFPS = 60

// Step is called once per frame with the time of the frame. It returns false
// once the element has nothing left to animate.
type Step func(now time.Time) bool

type Scheduler interface {
	Run(context.Context, Step) error
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// At returns a clock stopped at t.
func At(t time.Time) Clock {
	return ClockFunc(func() time.Time {
		return t
	})
}

// Interval returns the time between two frames at the given rate.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Ticker calls a Step at a fixed rate.
type Ticker struct {
	FPS   int
	Clock Clock
}

func NewTicker(fps int) Ticker {
	return Ticker{
		FPS:   fps,
		Clock: SystemClock{},
	}
}

// Run calls step on every tick until it returns false or ctx is done. The
// first frame is delivered right away. Cancellation is not reported as an
// error: a torn down animation is simply dropped.
func (t Ticker) Run(ctx context.Context, step Step) error {
	clock := t.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	if ctx.Err() != nil {
		return nil
	}
	if !step(clock.Now()) {
		return nil
	}
	tick := time.NewTicker(Interval(t.FPS))
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if ctx.Err() != nil {
				return nil
			}
			if !step(clock.Now()) {
				return nil
			}
		}
	}
}

// Manual replays a fixed list of frame times. It stops early when the step
// settles or ctx is done.
type Manual struct {
	Times []time.Time
}

// Frames returns count frame times spaced by every, starting at t0.
func Frames(t0 time.Time, every time.Duration, count int) Manual {
	var m Manual
	for i := 0; i < count; i++ {
		m.Times = append(m.Times, t0.Add(time.Duration(i)*every))
	}
	return m
}

func (m Manual) Run(ctx context.Context, step Step) error {
	for _, t := range m.Times {
		if ctx.Err() != nil {
			return nil
		}
		if !step(t) {
			return nil
		}
	}
	return nil
}
