package charts

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Render writes the frame as a standalone SVG document.
func (f LineFrame) Render(w io.Writer) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	canvas := svg.New(bw)
	startCanvas(canvas, f.Width, f.Height)

	id := f.GradientID()
	canvas.Def()
	canvas.LinearGradient(id, 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: f.Color, Opacity: f.GradientTop},
		{Offset: 100, Color: f.Color, Opacity: f.GradientBottom},
	})
	canvas.DefEnd()

	if f.Area != "" {
		canvas.Path(f.Area, fmt.Sprintf(`fill="url(#%s)"`, id))
	}
	if f.Stroke != "" {
		style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-linecap:round;stroke-dasharray:%s;stroke-dashoffset:%s",
			f.Color,
			formatFloat(f.StrokeWidth),
			formatFloat(f.DashArray),
			formatFloat(f.DashOffset),
		)
		canvas.Path(f.Stroke, style)
	}
	canvas.End()
}

// Render writes the frame as a standalone SVG document.
func (f BarFrame) Render(w io.Writer) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	canvas := svg.New(bw)
	startCanvas(canvas, f.Width, f.Height)
	for _, b := range f.Bars {
		canvas.Gid(fmt.Sprintf("bar-%d", b.Index))
		for _, r := range []Rect{b.A, b.B} {
			if r.Height <= 0 || r.Width <= 0 {
				continue
			}
			canvas.Path(RoundedRect(r, f.Radius), "fill:"+r.Fill)
		}
		canvas.Gend()
	}
	canvas.End()
}

func startCanvas(canvas *svg.SVG, width, height float64) {
	var (
		view   = fmt.Sprintf(`viewBox="0 0 %s %s"`, formatFloat(width), formatFloat(height))
		aspect = `preserveAspectRatio="none"`
	)
	canvas.Start(int(math.Ceil(width)), int(math.Ceil(height)), view, aspect)
}
