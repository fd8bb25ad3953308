package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/midbel/animcharts"
	"github.com/midbel/animcharts/dash"
	"github.com/midbel/animcharts/frame"
)

type chartFlags struct {
	color   string
	colorB  string
	height  float64
	col     int
	colB    int
	grouped bool
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.color, "color", "accent", "line color or color of the lower segment")
	cmd.Flags().StringVar(&f.colorB, "color-b", "red", "color of the upper/second bar segment")
	cmd.Flags().Float64Var(&f.height, "height", 0, "logical height of the chart")
	cmd.Flags().IntVar(&f.col, "col", 0, "column of the samples (or of the first segment)")
	cmd.Flags().IntVar(&f.colB, "col-b", 1, "column of the second bar segment")
	cmd.Flags().BoolVar(&f.grouped, "grouped", false, "draw bar segments side by side")
}

func (f *chartFlags) screen(kind, file string) (dash.Screen, error) {
	scr := dash.Screen{
		Name: dash.Name(file),
	}
	switch kind {
	case "line":
		samples, err := dash.LoadSamples(file, f.col)
		if err != nil {
			return scr, err
		}
		scr.Lines = append(scr.Lines, dash.LineSpec{
			Name:    scr.Name,
			Color:   f.color,
			Height:  f.height,
			Samples: samples,
		})
	case "bar":
		stacks, err := dash.LoadStacks(file, f.col, f.colB)
		if err != nil {
			return scr, err
		}
		scr.Bars = append(scr.Bars, dash.BarSpec{
			Name:    scr.Name,
			ColorA:  f.color,
			ColorB:  f.colorB,
			Height:  f.height,
			Grouped: f.grouped,
			Stacks:  stacks,
		})
	default:
		return scr, fmt.Errorf("%s: unsupported chart type", kind)
	}
	return scr, nil
}

func renderCommand(opts *options) *cobra.Command {
	var (
		flags  chartFlags
		at     time.Duration
		output string
	)
	cmd := &cobra.Command{
		Use:   "render line|bar FILE",
		Short: "Write one frame of a chart as SVG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, err := flags.screen(args[0], args[1])
			if err != nil {
				return err
			}
			var (
				t0   = time.Now()
				sink = &snapshotSink{}
				set  = opts.settings
			)
			if at < 0 {
				at = 0
			}
			board := dash.NewBoard(set, sink, scr)
			board.Logger = opts.logger
			board.Scheduler = frame.Manual{Times: []time.Time{t0.Add(at)}}
			board.Clock = frame.At(t0)
			if err := board.Show(cmd.Context(), scr.Name); err != nil {
				return err
			}
			if err := board.Wait(); err != nil {
				return err
			}
			return writeOutput(output, sink.render)
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&at, "at", time.Hour, "time elapsed since the start of the animation")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func framesCommand(opts *options) *cobra.Command {
	var (
		flags chartFlags
		dir   string
	)
	cmd := &cobra.Command{
		Use:   "frames line|bar FILE",
		Short: "Write every frame of a chart animation as SVG files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, err := flags.screen(args[0], args[1])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			sink := &fileSink{
				dir:   dir,
				count: make(map[string]int),
			}
			board := dash.NewBoard(opts.settings, sink, scr)
			board.Logger = opts.logger
			if err := board.Show(cmd.Context(), scr.Name); err != nil {
				return err
			}
			if err := board.Wait(); err != nil {
				return err
			}
			if sink.err != nil {
				return sink.err
			}
			opts.logger.Info("frames written", "dir", dir, "frames", sink.count[scr.Name])
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&dir, "dir", "d", "frames", "output directory")
	return cmd
}

type renderer interface {
	Render(io.Writer)
}

// snapshotSink keeps the last frame received.
type snapshotSink struct {
	mu   sync.Mutex
	last renderer
}

func (s *snapshotSink) Line(_ string, f charts.LineFrame) {
	s.keep(f)
}

func (s *snapshotSink) Bar(_ string, f charts.BarFrame) {
	s.keep(f)
}

func (s *snapshotSink) Counter(string, float64, string) {}

func (s *snapshotSink) keep(r renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = r
}

func (s *snapshotSink) render(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return fmt.Errorf("no frame rendered")
	}
	s.last.Render(w)
	return nil
}

// fileSink writes every frame received in its own file.
type fileSink struct {
	dir string

	mu    sync.Mutex
	count map[string]int
	err   error
}

func (s *fileSink) Line(name string, f charts.LineFrame) {
	s.write(name, f)
}

func (s *fileSink) Bar(name string, f charts.BarFrame) {
	s.write(name, f)
}

func (s *fileSink) Counter(string, float64, string) {}

func (s *fileSink) write(name string, r renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	s.count[name]++
	file := filepath.Join(s.dir, fmt.Sprintf("%s-%04d.svg", name, s.count[name]))
	w, err := os.Create(file)
	if err != nil {
		s.err = err
		return
	}
	r.Render(w)
	s.err = w.Close()
}

func writeOutput(file string, render func(io.Writer) error) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return render(w)
}
