package charts

import (
	"strings"
)

// Palette is an ordered list of colors cycled through by series.
type Palette []string

// Dashboard holds the accent, green, red, blue and orange tokens of the
// default theme in that order.
var Dashboard Palette

func init() {
	Dashboard = splitColorString("f5c8423de8a0f05f5f5b8deff5914a")
}

// At returns the color for the i-th series, wrapping around the palette.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return currentColor
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

const currentColor = "currentColor"

// Theme is the set of color tokens used by the dashboard. It is passed by
// value to whatever needs it and never changed after construction.
type Theme struct {
	Background string
	Surface    string
	Card       string
	Border     string
	Accent     string
	Green      string
	Red        string
	Blue       string
	Orange     string
	Text       string
	TextMid    string
	TextDim    string
}

func DefaultTheme() Theme {
	return Theme{
		Background: "#0d0f14",
		Surface:    "#141720",
		Card:       "#1a1e2e",
		Border:     "#252a3a",
		Accent:     "#f5c842",
		Green:      "#3de8a0",
		Red:        "#f05f5f",
		Blue:       "#5b8def",
		Orange:     "#f5914a",
		Text:       "#e8eaf0",
		TextMid:    "#8a90a8",
		TextDim:    "#505570",
	}
}

// Color resolves a token name such as "accent" or "text-mid". Anything that
// is not a token is returned as is, so literal colors can be used too.
func (t Theme) Color(name string) string {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "bg", "background":
		return t.Background
	case "surface":
		return t.Surface
	case "card":
		return t.Card
	case "border":
		return t.Border
	case "accent":
		return t.Accent
	case "green":
		return t.Green
	case "red":
		return t.Red
	case "blue":
		return t.Blue
	case "orange":
		return t.Orange
	case "text":
		return t.Text
	case "textmid":
		return t.TextMid
	case "textdim":
		return t.TextDim
	default:
		return name
	}
}
