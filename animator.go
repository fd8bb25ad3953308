package charts

import (
	"time"
)

// State is the lifecycle of an animated element.
type State int

const (
	StateIdle State = iota
	StateAnimating
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Animator drives a progress value from 0 to 1 over Duration. The zero value
// uses EaseOutCubic and completes immediately since its Duration is zero.
type Animator struct {
	Duration time.Duration
	Easing   Easing

	start   time.Time
	running bool
	pinned  bool
}

func NewAnimator(d time.Duration) *Animator {
	return &Animator{
		Duration: d,
		Easing:   EaseOutCubic,
	}
}

// Start (re)starts the animation at t0. Any animation in flight is dropped.
func (a *Animator) Start(t0 time.Time) {
	a.start = t0
	a.running = true
	a.pinned = false
}

// Tick returns the eased progress at now. Once the animation is complete the
// animator stops running and Tick keeps returning 1 until the next Start.
func (a *Animator) Tick(now time.Time) float64 {
	if a.Duration <= 0 || a.pinned {
		a.running = false
		return 1
	}
	if !a.running {
		return 0
	}
	var (
		elapsed = float64(now.Sub(a.start))
		linear  = clamp(elapsed/float64(a.Duration), 0, 1)
		ease    = a.Easing
	)
	if ease == nil {
		ease = EaseOutCubic
	}
	p := clamp(ease(linear), 0, 1)
	if linear >= 1 {
		p = 1
	}
	if Done(p) {
		a.running = false
		a.pinned = true
	}
	return p
}

// Stop cancels the animation in flight and pins the progress at 1.
func (a *Animator) Stop() {
	a.running = false
	a.pinned = true
}

func (a *Animator) Running() bool {
	return a.running
}

// Done reports whether p marks a completed animation.
func Done(p float64) bool {
	return p >= 1
}
