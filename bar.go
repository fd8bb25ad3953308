package charts

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultBarWidth    = 500.0
	DefaultBarHeight   = 180.0
	DefaultBarPadding  = 20.0
	DefaultBarInset    = 10.0
	DefaultBarGutter   = 2.0
	DefaultBarRadius   = 2.0
	DefaultBarDuration = 900 * time.Millisecond
)

// Layout tells how the two magnitudes of a Stack are placed in their slot.
type Layout int

const (
	LayoutStacked Layout = iota
	LayoutGrouped
)

// Stack holds the two magnitudes drawn at one index of a bar chart.
type Stack struct {
	A float64
	B float64
}

func (s Stack) Total() float64 {
	return magnitude(s.A) + magnitude(s.B)
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   string
}

type Bar struct {
	Index int
	A     Rect
	B     Rect
}

// BarFrame describes a bar chart at a given progress of its growth.
type BarFrame struct {
	Width    float64
	Height   float64
	Radius   float64
	Bars     []Bar
	Progress float64
}

// BarChart draws one bar per Stack. With LayoutStacked, B sits on top of A;
// with LayoutGrouped, A and B stand side by side. All bars grow together.
type BarChart struct {
	ColorA   string
	ColorB   string
	Width    float64
	Height   float64
	Padding  float64
	Inset    float64
	Gutter   float64
	Radius   float64
	Layout   Layout
	Animate  bool
	Duration time.Duration
	Easing   Easing

	anim     Animator
	state    State
	data     []Stack
	progress float64
}

func NewBarChart(colorA, colorB string) *BarChart {
	return &BarChart{
		ColorA:   colorA,
		ColorB:   colorB,
		Width:    DefaultBarWidth,
		Height:   DefaultBarHeight,
		Padding:  DefaultBarPadding,
		Inset:    DefaultBarInset,
		Gutter:   DefaultBarGutter,
		Radius:   DefaultBarRadius,
		Layout:   LayoutStacked,
		Animate:  true,
		Duration: DefaultBarDuration,
		Easing:   EaseOutCubic,
	}
}

// Update sets the stacks drawn by the chart, restarting the growth at now when
// they differ from the current ones.
func (c *BarChart) Update(data []Stack, now time.Time) error {
	if len(data) == 0 {
		return fmt.Errorf("bar chart: %w", ErrNoData)
	}
	if c.state != StateIdle && sameStacks(c.data, data) {
		return nil
	}
	c.data = append(c.data[:0], data...)
	c.anim = Animator{
		Duration: c.Duration,
		Easing:   c.Easing,
	}
	if !c.Animate {
		c.anim.Stop()
		c.settle()
		return nil
	}
	c.progress = 0
	c.state = StateAnimating
	c.anim.Start(now)
	return nil
}

func (c *BarChart) Tick(now time.Time) BarFrame {
	if c.state == StateAnimating {
		c.progress = c.anim.Tick(now)
		if Done(c.progress) {
			c.settle()
		}
	}
	return c.Frame()
}

func (c *BarChart) Frame() BarFrame {
	var (
		width, height = c.viewport()
		frame         = BarFrame{
			Width:    width,
			Height:   height,
			Radius:   math.Max(c.Radius, 0),
			Progress: c.progress,
		}
	)
	if len(c.data) == 0 {
		return frame
	}
	var (
		inset    = math.Max(c.Inset, 0)
		gutter   = math.Max(c.Gutter, 0)
		padding  = math.Max(c.Padding, 0)
		baseline = height - inset
		avail    = math.Max(height-2*inset, 0)
		slot     = math.Max(width-2*padding, 0) / float64(len(c.data))
		bw       = math.Max(slot-gutter, 0)
		max      = c.maxValue()
	)
	frame.Bars = make([]Bar, len(c.data))
	for i, s := range c.data {
		var (
			x  = padding + float64(i)*slot + gutter/2
			ah = magnitude(s.A) / 2 / max * avail * c.progress
			bh = magnitude(s.B) / 2 / max * avail * c.progress
			b  = Bar{Index: i}
		)
		switch c.Layout {
		case LayoutGrouped:
			half := bw / 2
			b.A = Rect{X: x, Y: baseline - ah, Width: half, Height: ah, Fill: c.ColorA}
			b.B = Rect{X: x + half, Y: baseline - bh, Width: half, Height: bh, Fill: c.ColorB}
		default:
			b.A = Rect{X: x, Y: baseline - ah, Width: bw, Height: ah, Fill: c.ColorA}
			b.B = Rect{X: x, Y: baseline - ah - bh, Width: bw, Height: bh, Fill: c.ColorB}
		}
		frame.Bars[i] = b
	}
	return frame
}

func (c *BarChart) State() State {
	return c.state
}

// Stop cancels the growth in flight and leaves the bars at their full height.
func (c *BarChart) Stop() {
	c.anim.Stop()
	if c.state != StateIdle {
		c.settle()
	}
}

func (c *BarChart) settle() {
	c.progress = 1
	c.state = StateSettled
}

func (c *BarChart) viewport() (float64, float64) {
	width, height := c.Width, c.Height
	if width <= 0 {
		width = DefaultBarWidth
	}
	if height <= 0 {
		height = DefaultBarHeight
	}
	return width, height
}

// maxValue returns half the denominator of the bar heights: the largest total
// for stacked bars, the largest single magnitude for grouped bars. Magnitudes
// are halved so the sum of two of them never overflows. It is never 0.
func (c *BarChart) maxValue() float64 {
	var max float64
	for _, s := range c.data {
		v := magnitude(s.A)/2 + magnitude(s.B)/2
		if c.Layout == LayoutGrouped {
			v = math.Max(magnitude(s.A), magnitude(s.B)) / 2
		}
		max = math.Max(max, v)
	}
	if max == 0 || !isFinite(max) {
		return FlatExtent
	}
	return max
}

func magnitude(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}

func sameStacks(prev, next []Stack) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if prev[i] != next[i] {
			return false
		}
	}
	return true
}
