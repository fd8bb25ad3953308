package charts

import (
	"errors"
	"testing"
)

func TestBuildPath(t *testing.T) {
	points := []Pos{
		NewPos(0, 0),
		NewPos(3, 4),
		NewPos(6, 0),
	}
	geo, err := BuildPath(points, 10)
	if err != nil {
		t.Fatal(err)
	}
	if want := "M0,0 L3,4 L6,0"; geo.Stroke != want {
		t.Errorf("stroke: want %q, got %q", want, geo.Stroke)
	}
	if want := "M0,0 L3,4 L6,0 L6,10 L0,10 Z"; geo.Area != want {
		t.Errorf("area: want %q, got %q", want, geo.Area)
	}
	if geo.Length != 10 {
		t.Errorf("length: want 10, got %v", geo.Length)
	}

	again, _ := BuildPath(points, 10)
	if again != geo {
		t.Errorf("geometry should only depend on its input")
	}
}

func TestBuildPathFromSamples(t *testing.T) {
	points, err := Scale([]float64{10, 20, 15, 30}, 400, 60, 4)
	if err != nil {
		t.Fatal(err)
	}
	geo, err := BuildPath(points, 60)
	if err != nil {
		t.Fatal(err)
	}
	want := "M0,56 L133.33333333333334,30 L266.6666666666667,43 L400,4"
	if geo.Stroke != want {
		t.Errorf("stroke: want %q, got %q", want, geo.Stroke)
	}
	if want := want + " L400,60 L0,60 Z"; geo.Area != want {
		t.Errorf("area: want %q, got %q", want, geo.Area)
	}
}

func TestBuildPathTooFewPoints(t *testing.T) {
	_, err := BuildPath([]Pos{NewPos(1, 1)}, 10)
	if !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("want ErrTooFewSamples, got %v", err)
	}
}

func TestRoundedRect(t *testing.T) {
	tests := []struct {
		Rect   Rect
		Radius float64
		Want   string
	}{
		{
			Rect:   Rect{X: 1, Y: 2, Width: 10, Height: 20},
			Radius: 0,
			Want:   "M1,2 h10 v20 h-10 Z",
		},
		{
			Rect:   Rect{X: 0, Y: 0, Width: 10, Height: 20},
			Radius: 2,
			Want:   "M2,0 h6 a2,2 0 0 1 2,2 v16 a2,2 0 0 1 -2,2 h-6 a2,2 0 0 1 -2,-2 v-16 a2,2 0 0 1 2,-2 Z",
		},
		{
			Rect:   Rect{X: 0, Y: 0, Width: 10, Height: 2},
			Radius: 2,
			Want:   "M1,0 h8 a1,1 0 0 1 1,1 v0 a1,1 0 0 1 -1,1 h-8 a1,1 0 0 1 -1,-1 v0 a1,1 0 0 1 1,-1 Z",
		},
	}
	for _, tt := range tests {
		if got := RoundedRect(tt.Rect, tt.Radius); got != tt.Want {
			t.Errorf("%+v: want %q, got %q", tt.Rect, tt.Want, got)
		}
	}
}
