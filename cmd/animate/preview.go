package main

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/midbel/animcharts"
	"github.com/midbel/animcharts/dash"
)

func previewCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Play the sample dashboard in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				sink  = &programSink{}
				board = dash.NewBoard(opts.settings, sink, sampleScreens()...)
			)
			board.Logger = opts.logger
			defer board.Close()

			m := newPreview(cmd.Context(), board)
			p := tea.NewProgram(m)
			sink.program = p
			_, err := p.Run()
			return err
		},
	}
}

type counterMsg struct {
	name string
	text string
}

type progressMsg struct {
	name     string
	progress float64
}

type shownMsg struct {
	name string
	err  error
}

// programSink forwards the frames of the board to the terminal program.
type programSink struct {
	program *tea.Program
}

func (s *programSink) Line(name string, f charts.LineFrame) {
	s.program.Send(progressMsg{name: name, progress: f.Progress})
}

func (s *programSink) Bar(name string, f charts.BarFrame) {
	s.program.Send(progressMsg{name: name, progress: f.Progress})
}

func (s *programSink) Counter(name string, _ float64, text string) {
	s.program.Send(counterMsg{name: name, text: text})
}

type styles struct {
	tab    lipgloss.Style
	active lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	track  lipgloss.Style
	err    lipgloss.Style
}

func newStyles(theme charts.Theme) styles {
	return styles{
		tab:    lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(theme.TextMid)),
		active: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color(theme.Background)).Background(lipgloss.Color(theme.Accent)),
		label:  lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color(theme.TextMid)),
		value:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Text)),
		track:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextDim)),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Red)),
	}
}

// switcher shows screens on the board in the order they were requested.
// Switch commands run on their own goroutines, so a request older than the
// last one shown is dropped.
type switcher struct {
	mu    sync.Mutex
	board *dash.Board
	last  int
}

func (s *switcher) show(ctx context.Context, seq int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.last {
		return nil
	}
	s.last = seq
	return s.board.Show(ctx, name)
}

type preview struct {
	ctx      context.Context
	board    *dash.Board
	switcher *switcher
	seq      int
	screens  []dash.Screen
	index    int
	theme    charts.Theme
	styles   styles

	texts    map[string]string
	progress map[string]float64
	err      error
}

func newPreview(ctx context.Context, board *dash.Board) preview {
	return preview{
		ctx:      ctx,
		board:    board,
		switcher: &switcher{board: board},
		screens:  board.Screens,
		theme:    board.Theme,
		styles:   newStyles(board.Theme),
		texts:    make(map[string]string),
		progress: make(map[string]float64),
	}
}

func (p preview) Init() tea.Cmd {
	return p.show()
}

// show switches the board in a command: tearing down a screen waits for its
// loops, which may themselves be waiting for the program to read a message.
func (p preview) show() tea.Cmd {
	var (
		name = p.screens[p.index].Name
		seq  = p.seq
	)
	return func() tea.Msg {
		return shownMsg{
			name: name,
			err:  p.switcher.show(p.ctx, seq, name),
		}
	}
}

func (p preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case "tab", "right", "l":
			return p.switchTo(p.index + 1)
		case "shift+tab", "left", "h":
			return p.switchTo(p.index - 1)
		}
	case counterMsg:
		p.texts[msg.name] = msg.text
	case progressMsg:
		p.progress[msg.name] = msg.progress
	case shownMsg:
		if msg.name == p.screens[p.index].Name {
			p.err = msg.err
		}
	}
	return p, nil
}

func (p preview) switchTo(index int) (tea.Model, tea.Cmd) {
	n := len(p.screens)
	p.index = ((index % n) + n) % n
	p.seq++
	p.texts = make(map[string]string)
	p.progress = make(map[string]float64)
	return p, p.show()
}

func (p preview) View() string {
	var (
		str  strings.Builder
		scr  = p.screens[p.index]
		tabs []string
	)
	for i, s := range p.screens {
		if i == p.index {
			tabs = append(tabs, p.styles.active.Render(s.Name))
		} else {
			tabs = append(tabs, p.styles.tab.Render(s.Name))
		}
	}
	str.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	str.WriteString("\n\n")

	for _, c := range scr.Counters {
		text, ok := p.texts[c.Name]
		if !ok {
			text = "-"
		}
		str.WriteString(p.styles.label.Render(c.Label))
		str.WriteString(p.styles.value.Render(text))
		str.WriteString("\n")
	}
	str.WriteString("\n")
	for _, i := range scr.Lines {
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(p.theme.Color(i.Color)))
		str.WriteString(p.styles.label.Render(i.Name))
		str.WriteString(color.Render(sparkline(i.Samples, p.progress[i.Name])))
		str.WriteString("\n")
	}
	for _, b := range scr.Bars {
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(p.theme.Color(b.ColorA)))
		str.WriteString(p.styles.label.Render(b.Name))
		str.WriteString(color.Render(gauge(p.progress[b.Name], 30)))
		str.WriteString(p.styles.track.Render(fmt.Sprintf(" %3.0f%%", p.progress[b.Name]*100)))
		str.WriteString("\n")
	}
	if p.err != nil {
		str.WriteString("\n")
		str.WriteString(p.styles.err.Render(p.err.Error()))
		str.WriteString("\n")
	}
	str.WriteString(p.styles.track.Render("\ntab: next screen  q: quit\n"))
	return str.String()
}

var blocks = []rune("▁▂▃▄▅▆▇█")

// sparkline draws the samples revealed up to progress. Samples are revealed
// by index, a coarse stand-in for the reveal of the chart along its length.
func sparkline(samples []float64, progress float64) string {
	if len(samples) == 0 {
		return ""
	}
	var (
		dom   = charts.DomainOf(samples)
		count = int(math.Ceil(progress * float64(len(samples))))
		str   strings.Builder
	)
	for i, v := range samples {
		if i >= count {
			str.WriteRune(' ')
			continue
		}
		ix := int(dom.Ratio(v) * float64(len(blocks)-1))
		str.WriteRune(blocks[max(0, min(ix, len(blocks)-1))])
	}
	return str.String()
}

func gauge(progress float64, width int) string {
	n := int(math.Round(progress * float64(width)))
	n = max(0, min(n, width))
	return strings.Repeat("█", n) + strings.Repeat(" ", width-n)
}
