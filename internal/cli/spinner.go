package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sofiebrandt/prepdeck/internal/cli/formatter"
)

type workDoneMsg struct {
	err error
}

// spinnerModel animates a dot spinner while one gateway call runs. The work
// function executes as a tea command so the program owns its lifetime.
type spinnerModel struct {
	spinner spinner.Model
	message string
	work    func() error
	err     error
}

func newSpinnerModel(message string, work func() error) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return spinnerModel{spinner: s, message: message, work: work}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return workDoneMsg{err: m.work()} },
	)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		// The call is not cancelable from the keyboard; swallow input.
		return m, nil
	}
	return m, nil
}

func (m spinnerModel) View() string {
	return fmt.Sprintf("  %s%s\n", m.spinner.View(), formatter.Dim(m.message))
}

// runWithSpinner executes work while animating a spinner with the given
// message. work runs at most once: if the program fails after dispatching
// the work command, re-running it here would double-submit the call, so the
// failure is surfaced instead.
func runWithSpinner(ctx context.Context, message string, work func() error) error {
	p := tea.NewProgram(
		newSpinnerModel(message, work),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if m, ok := final.(spinnerModel); ok {
		return m.err
	}
	return nil
}
