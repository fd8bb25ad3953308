package charts

import (
	"fmt"
	"math"
)

// FlatExtent is the extent used by a domain whose bounds are equal.
var FlatExtent = 1.0

// Pos is a point in the logical viewport of a chart.
type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

type Domain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		fst: f,
		lst: t,
	}
}

// DomainOf returns the domain spanned by the finite values of the given samples.
func DomainOf(values []float64) Domain {
	var (
		dom  Domain
		seen bool
	)
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		if !seen || v < dom.fst {
			dom.fst = v
		}
		if !seen || v > dom.lst {
			dom.lst = v
		}
		seen = true
	}
	return dom
}

func (d Domain) Min() float64 {
	return d.fst
}

func (d Domain) Max() float64 {
	return d.lst
}

func (d Domain) Diff(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v - d.fst
}

func (d Domain) Flat() bool {
	return d.lst == d.fst
}

// Extend returns the width of the domain. A flat domain reports FlatExtent.
func (d Domain) Extend() float64 {
	ext := d.lst - d.fst
	if ext == 0 || !isFinite(ext) {
		return FlatExtent
	}
	return ext
}

// Ratio returns the position of v in the domain: 0 at its lower bound and 1
// at its upper bound. Bounds too far apart for their difference to be finite
// are halved before being subtracted.
func (d Domain) Ratio(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	ext := d.lst - d.fst
	if math.IsInf(ext, 0) {
		return (v/2 - d.fst/2) / (d.lst/2 - d.fst/2)
	}
	return d.Diff(v) / d.Extend()
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

// Scaler maps values of a Domain linearly onto a Range.
type Scaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s Scaler) Scale(v float64) float64 {
	return s.F + s.Ratio(v)*s.Len()
}

// Scale maps samples into a viewport of width w and height h, keeping margin
// pixels free at the top and the bottom. Samples are evenly spaced on x from 0
// to w, the lowest value lands at h-margin and the highest at margin. A series
// whose values are all equal is drawn on the vertical middle of the viewport.
func Scale(samples []float64, w, h, margin float64) ([]Pos, error) {
	n := len(samples)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}
	var (
		dom  = DomainOf(samples)
		ys   = NumberScaler(dom, NewRange(h-margin, margin))
		step = w / float64(n-1)
		list = make([]Pos, n)
	)
	for i, v := range samples {
		x := float64(i) * step
		if i == n-1 {
			x = w
		}
		y := ys.Scale(v)
		if dom.Flat() {
			y = h / 2
		}
		list[i] = NewPos(x, y)
	}
	return list, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
