package charts

import (
	"time"
)

const DefaultCounterDuration = 900 * time.Millisecond

// Counter animates a displayed number from its previous target to a new one.
// The first target is counted up from 0.
type Counter struct {
	Duration time.Duration
	Format   Formatter
	Easing   Easing

	anim    Animator
	anchor  float64
	target  float64
	display float64
}

func NewCounter(format Formatter) *Counter {
	return &Counter{
		Duration: DefaultCounterDuration,
		Format:   format,
		Easing:   EaseOutCubic,
	}
}

// Set starts counting towards value at now. The count starts from the last
// target reached, dropping any count still in flight. Setting the current
// target again leaves the counter untouched.
func (c *Counter) Set(value float64, now time.Time) {
	if value == c.target {
		return
	}
	c.target = value
	c.display = c.anchor
	c.anim = Animator{
		Duration: c.Duration,
		Easing:   c.Easing,
	}
	c.anim.Start(now)
}

// Tick returns the value to display at now and its text.
func (c *Counter) Tick(now time.Time) (float64, string) {
	if c.anim.Running() {
		p := c.anim.Tick(now)
		c.display = c.anchor + (c.target-c.anchor)*p
		if Done(p) {
			c.settle()
		}
	}
	return c.display, c.Text()
}

func (c *Counter) Value() float64 {
	return c.display
}

func (c *Counter) Target() float64 {
	return c.target
}

func (c *Counter) Text() string {
	format := c.Format
	if format == nil {
		format = Compact
	}
	return format(c.display)
}

func (c *Counter) Running() bool {
	return c.anim.Running()
}

// Stop cancels the count in flight. The counter jumps to its target so the
// next Set starts from it.
func (c *Counter) Stop() {
	c.anim.Stop()
	c.settle()
}

func (c *Counter) settle() {
	c.display = c.target
	c.anchor = c.target
}
