package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Interactive reports whether f is a terminal.
func Interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TickMsg advances a Model by one engine step.
type TickMsg time.Time

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the bubbletea model of one live generation. Each TickMsg runs
// one Iterate; space pauses, s steps once while paused, q quits.
//
// Model is driven by the bubbletea event loop and must not be shared
// between goroutines.
type Model struct {
	s        session
	interval time.Duration
	paused   bool
	done     bool
	res      Result
	err      error
}

// NewModel opens a live generation with the configured seed.
func (r *Runner) NewModel(ctx context.Context) (Model, error) {
	s, err := r.open(ctx, r.Config.Seed, true)
	if err != nil {
		return Model{}, err
	}

	return Model{s: s, interval: r.Config.Interval}, nil
}

// Done reports whether the generation has ended.
func (m Model) Done() bool { return m.done }

// Paused reports whether ticks are ignored.
func (m Model) Paused() bool { return m.paused }

// Result returns the finished run and the error that ended it, if any.
func (m Model) Result() (Result, error) { return m.res, m.err }

func (m Model) tick() tea.Cmd {
	d := m.interval
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return m.tick() }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case TickMsg:
		if m.paused {
			return m, nil
		}
		return m.advance()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.stop(context.Canceled)
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused {
				return m, m.tick()
			}
		case "s":
			if m.paused {
				m, _ = m.step()
			}
		}
	}

	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m, ended := m.step()
	if ended {
		return m, tea.Quit
	}
	return m, m.tick()
}

func (m Model) step() (Model, bool) {
	done, err := m.s.step()
	if err != nil || done {
		m.stop(err)
		return m, true
	}
	return m, false
}

func (m *Model) stop(err error) {
	if m.done {
		return
	}
	m.done = true
	m.err = err
	m.res = m.s.finish(err)
}

// View implements tea.Model.
func (m Model) View() string {
	steps, remaining, cells := m.s.progress()
	state := "running"
	switch {
	case m.done && m.err != nil:
		state = "stopped"
	case m.done:
		state = "done"
	case m.paused:
		state = "paused"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("wfc  step %d  open %d/%d  %s", steps, remaining, cells, state)))
	b.WriteString("\n\n")
	b.WriteString(m.s.frame())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("space pause · s step · q quit"))
	b.WriteString("\n")

	return b.String()
}

// TUI runs one generation in a bubbletea program reading keys from in and
// drawing to out. Config.Output is written as in Generate.
func (r *Runner) TUI(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	m, err := r.NewModel(ctx)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, perr := p.Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	if !m.done {
		if perr == nil {
			perr = context.Canceled
		}
		m.stop(perr)
	}

	res, runErr := m.Result()
	if r.Config.Output != "" {
		if err := WriteGrid(r.Config.Output, res); err != nil && runErr == nil {
			runErr = err
		}
	}

	return res, runErr
}
