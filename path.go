package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/midbel/slices"
)

// Geometry is the drawable outline of a line chart.
type Geometry struct {
	Stroke string
	Area   string
	Length float64
}

// BuildPath returns the stroke and area paths going through points, together
// with the length of the stroke. The area closes the stroke on the baseline
// at height.
func BuildPath(points []Pos, height float64) (Geometry, error) {
	var geo Geometry
	if len(points) < 2 {
		return geo, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(points))
	}
	var (
		str strings.Builder
		ori = slices.Fst(points)
	)
	writeCommand(&str, 'M', ori)
	for _, pos := range slices.Rest(points) {
		str.WriteByte(' ')
		writeCommand(&str, 'L', pos)
		geo.Length += math.Hypot(pos.X-ori.X, pos.Y-ori.Y)
		ori = pos
	}
	geo.Stroke = str.String()

	str.WriteByte(' ')
	writeCommand(&str, 'L', NewPos(slices.Lst(points).X, height))
	str.WriteByte(' ')
	writeCommand(&str, 'L', NewPos(0, height))
	str.WriteString(" Z")
	geo.Area = str.String()

	return geo, nil
}

func writeCommand(str *strings.Builder, cmd byte, pos Pos) {
	str.WriteByte(cmd)
	str.WriteString(formatFloat(pos.X))
	str.WriteByte(',')
	str.WriteString(formatFloat(pos.Y))
}

func formatFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RoundedRect returns the outline of r with corners of the given radius. The
// radius shrinks to fit rectangles smaller than twice its value.
func RoundedRect(r Rect, radius float64) string {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		return fmt.Sprintf("M%s,%s h%s v%s h%s Z",
			formatFloat(r.X), formatFloat(r.Y), formatFloat(r.Width), formatFloat(r.Height), formatFloat(-r.Width))
	}
	var (
		w   = r.Width - 2*radius
		h   = r.Height - 2*radius
		rad = formatFloat(radius)
		arc = func(dx, dy float64) string {
			return fmt.Sprintf("a%s,%s 0 0 1 %s,%s", rad, rad, formatFloat(dx), formatFloat(dy))
		}
	)
	return fmt.Sprintf("M%s,%s h%s %s v%s %s h%s %s v%s %s Z",
		formatFloat(r.X+radius), formatFloat(r.Y),
		formatFloat(w), arc(radius, radius),
		formatFloat(h), arc(-radius, radius),
		formatFloat(-w), arc(-radius, -radius),
		formatFloat(-h), arc(radius, -radius),
	)
}
