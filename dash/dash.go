package dash

import (
	"fmt"
	"time"

	"github.com/midbel/animcharts"
)

// Sink receives the frames produced by the elements of a screen. It is called
// from the loop of each element and must be safe for concurrent use.
type Sink interface {
	Line(string, charts.LineFrame)
	Bar(string, charts.BarFrame)
	Counter(string, float64, string)
}

type LineSpec struct {
	Name    string
	Color   string
	Height  float64
	Static  bool
	Samples []float64
}

type BarSpec struct {
	Name    string
	ColorA  string
	ColorB  string
	Height  float64
	Grouped bool
	Stacks  []charts.Stack
}

type CounterSpec struct {
	Name   string
	Label  string
	Value  float64
	Format charts.Formatter
}

// Screen is the definition of one tab of the dashboard. New elements are
// built from it every time the screen is shown.
type Screen struct {
	Name     string
	Lines    []LineSpec
	Bars     []BarSpec
	Counters []CounterSpec
}

type element interface {
	start(time.Time) error
	step(time.Time) bool
	stop()
}

func (s Screen) elements(set Settings, theme charts.Theme, sink Sink) []element {
	var list []element
	for _, c := range s.Counters {
		ctr := charts.NewCounter(c.Format)
		ctr.Duration = set.CounterDuration
		list = append(list, &counterElement{
			spec:    c,
			counter: ctr,
			sink:    sink,
		})
	}
	for j, i := range s.Lines {
		ch := charts.NewLineChart(pick(theme, i.Color, j))
		ch.Duration = set.LineDuration
		ch.Animate = !i.Static
		if i.Height > 0 {
			ch.Height = i.Height
		}
		list = append(list, &lineElement{
			spec:  i,
			chart: ch,
			sink:  sink,
		})
	}
	for j, b := range s.Bars {
		ch := charts.NewBarChart(pick(theme, b.ColorA, 2*j), pick(theme, b.ColorB, 2*j+1))
		ch.Duration = set.BarDuration
		if b.Height > 0 {
			ch.Height = b.Height
		}
		if b.Grouped {
			ch.Layout = charts.LayoutGrouped
		}
		list = append(list, &barElement{
			spec:  b,
			chart: ch,
			sink:  sink,
		})
	}
	return list
}

// pick resolves color against the theme. Elements without a color get the
// i-th color of the dashboard palette.
func pick(theme charts.Theme, color string, i int) string {
	if color == "" {
		return charts.Dashboard.At(i)
	}
	return theme.Color(color)
}

type lineElement struct {
	spec  LineSpec
	chart *charts.LineChart
	sink  Sink
}

func (e *lineElement) start(now time.Time) error {
	if err := e.chart.Update(e.spec.Samples, now); err != nil {
		return fmt.Errorf("%s: %w", e.spec.Name, err)
	}
	return nil
}

func (e *lineElement) step(now time.Time) bool {
	e.sink.Line(e.spec.Name, e.chart.Tick(now))
	return e.chart.State() == charts.StateAnimating
}

func (e *lineElement) stop() {
	e.chart.Stop()
}

type barElement struct {
	spec  BarSpec
	chart *charts.BarChart
	sink  Sink
}

func (e *barElement) start(now time.Time) error {
	if err := e.chart.Update(e.spec.Stacks, now); err != nil {
		return fmt.Errorf("%s: %w", e.spec.Name, err)
	}
	return nil
}

func (e *barElement) step(now time.Time) bool {
	e.sink.Bar(e.spec.Name, e.chart.Tick(now))
	return e.chart.State() == charts.StateAnimating
}

func (e *barElement) stop() {
	e.chart.Stop()
}

type counterElement struct {
	spec    CounterSpec
	counter *charts.Counter
	sink    Sink
}

func (e *counterElement) start(now time.Time) error {
	e.counter.Set(e.spec.Value, now)
	return nil
}

func (e *counterElement) step(now time.Time) bool {
	v, str := e.counter.Tick(now)
	e.sink.Counter(e.spec.Name, v, str)
	return e.counter.Running()
}

func (e *counterElement) stop() {
	e.counter.Stop()
}
