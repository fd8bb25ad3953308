package charts

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultLineWidth    = 400.0
	DefaultLineHeight   = 60.0
	DefaultLineMargin   = 4.0
	DefaultLineDuration = time.Second
	DefaultStrokeWidth  = 2.0
)

// LineFrame describes a line chart at a given progress of its reveal.
type LineFrame struct {
	Width  float64
	Height float64
	Color  string

	Points []Pos
	Geometry

	StrokeWidth float64
	DashArray   float64
	DashOffset  float64
	Progress    float64

	GradientTop    float64
	GradientBottom float64
}

// GradientID is the identifier of the fill gradient of the area below the line.
func (f LineFrame) GradientID() string {
	return "grad_" + strings.TrimPrefix(f.Color, "#")
}

// LineChart draws a series of samples as a polyline over a gradient filled
// area. The stroke is revealed from left to right by moving its dash offset
// along the length of the path.
type LineChart struct {
	Color    string
	Width    float64
	Height   float64
	Margin   float64
	Animate  bool
	Duration time.Duration
	Easing   Easing

	anim     Animator
	state    State
	samples  []float64
	points   []Pos
	geo      Geometry
	width    float64
	height   float64
	progress float64
}

func NewLineChart(color string) *LineChart {
	return &LineChart{
		Color:    color,
		Width:    DefaultLineWidth,
		Height:   DefaultLineHeight,
		Margin:   DefaultLineMargin,
		Animate:  true,
		Duration: DefaultLineDuration,
		Easing:   EaseOutCubic,
	}
}

// Update sets the samples drawn by the chart. The reveal restarts at now when
// the samples differ from the current ones; giving the same samples again
// leaves the animation untouched.
func (c *LineChart) Update(samples []float64, now time.Time) error {
	if len(samples) < 2 {
		return fmt.Errorf("line chart: %w: got %d", ErrTooFewSamples, len(samples))
	}
	if c.state != StateIdle && sameSamples(c.samples, samples) {
		return nil
	}
	c.samples = append(c.samples[:0], samples...)
	if err := c.layout(); err != nil {
		return err
	}
	c.restart(now)
	return nil
}

// Resize changes the viewport of the chart. The geometry is computed again
// but the animation in flight goes on.
func (c *LineChart) Resize(width, height float64) error {
	c.Width, c.Height = width, height
	if c.state == StateIdle {
		return nil
	}
	return c.layout()
}

// Tick advances the reveal to now and returns the frame to draw. A settled
// chart returns the same frame whatever the value of now.
func (c *LineChart) Tick(now time.Time) LineFrame {
	if c.state == StateAnimating {
		c.progress = c.anim.Tick(now)
		if Done(c.progress) {
			c.settle()
		}
	}
	return c.Frame()
}

func (c *LineChart) Frame() LineFrame {
	f := LineFrame{
		Width:          c.width,
		Height:         c.height,
		Color:          c.Color,
		Points:         c.points,
		Geometry:       c.geo,
		StrokeWidth:    DefaultStrokeWidth,
		DashArray:      c.geo.Length,
		DashOffset:     c.geo.Length * (1 - c.progress),
		Progress:       c.progress,
		GradientTop:    0.25,
		GradientBottom: 0,
	}
	if c.state == StateSettled {
		f.DashOffset = 0
	}
	return f
}

func (c *LineChart) State() State {
	return c.state
}

// Stop cancels the reveal in flight and leaves the line fully drawn.
func (c *LineChart) Stop() {
	c.anim.Stop()
	if c.state != StateIdle {
		c.settle()
	}
}

func (c *LineChart) restart(now time.Time) {
	c.anim = Animator{
		Duration: c.Duration,
		Easing:   c.Easing,
	}
	if !c.Animate {
		c.anim.Stop()
		c.settle()
		return
	}
	c.progress = 0
	c.state = StateAnimating
	c.anim.Start(now)
}

func (c *LineChart) settle() {
	c.progress = 1
	c.state = StateSettled
}

func (c *LineChart) layout() error {
	var (
		width  = c.Width
		height = c.Height
		margin = c.Margin
	)
	if width <= 0 {
		width = DefaultLineWidth
	}
	if height <= 0 {
		height = DefaultLineHeight
	}
	if margin < 0 {
		margin = 0
	}
	points, err := Scale(c.samples, width, height, margin)
	if err != nil {
		return err
	}
	geo, err := BuildPath(points, height)
	if err != nil {
		return err
	}
	c.points, c.geo = points, geo
	c.width, c.height = width, height
	return nil
}

func sameSamples(prev, next []float64) bool {
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
