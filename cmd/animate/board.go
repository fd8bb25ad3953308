package main

import (
	"github.com/midbel/animcharts"
	"github.com/midbel/animcharts/dash"
)

func sampleScreens() []dash.Screen {
	overview := dash.Screen{
		Name: "overview",
		Counters: []dash.CounterSpec{
			{Name: "streams", Label: "Streams", Value: 1_284_530, Format: charts.Compact},
			{Name: "listeners", Label: "Listeners", Value: 184_200, Format: charts.Compact},
			{Name: "saves", Label: "Save rate", Value: 7.8, Format: charts.Percent(false)},
		},
		Lines: []dash.LineSpec{
			{Name: "streams-trend", Color: "accent", Height: 36, Samples: []float64{42, 48, 45, 53, 61, 58, 66, 72, 70, 79}},
			{Name: "listeners-trend", Color: "green", Height: 36, Samples: []float64{12, 13, 13, 15, 14, 17, 19, 18, 21, 22}},
		},
		Bars: []dash.BarSpec{
			{
				Name:   "royalty",
				ColorA: "accent",
				ColorB: "red",
				Height: 160,
				Stacks: []charts.Stack{{A: 31, B: 4}, {A: 35, B: 5}, {A: 33, B: 6}, {A: 40, B: 5}, {A: 44, B: 7}, {A: 47, B: 6}},
			},
		},
	}
	audience := dash.Screen{
		Name: "audience",
		Counters: []dash.CounterSpec{
			{Name: "returning", Label: "Returning", Value: 61.3, Format: charts.Percent(false)},
			{Name: "growth", Label: "Growth", Value: 12.4, Format: charts.Percent(true)},
		},
		Lines: []dash.LineSpec{
			{Name: "retention", Color: "green", Height: 100, Samples: []float64{100, 72, 58, 49, 44, 41, 39, 38}},
		},
		Bars: []dash.BarSpec{
			{
				Name:    "new-vs-returning",
				ColorA:  "accent",
				ColorB:  "blue",
				Height:  120,
				Grouped: true,
				Stacks:  []charts.Stack{{A: 120, B: 80}, {A: 140, B: 95}, {A: 160, B: 120}, {A: 150, B: 140}, {A: 180, B: 160}},
			},
		},
	}
	sources := dash.Screen{
		Name: "sources",
		Counters: []dash.CounterSpec{
			{Name: "radio", Label: "Radio", Value: 52, Format: charts.Fixed(0, "%")},
			{Name: "collection", Label: "Collection", Value: 44, Format: charts.Fixed(0, "%")},
			{Name: "search", Label: "Search", Value: 4, Format: charts.Fixed(0, "%")},
		},
		Lines: []dash.LineSpec{
			{Name: "search-trend", Color: "blue", Height: 80, Samples: []float64{5, 5.7, 6.4, 7.1, 7.8, 8.5}},
		},
	}
	return []dash.Screen{overview, audience, sources}
}
