package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginStatusMsg struct {
	label string
}

type loginDoneMsg struct{}

type loginSpinnerModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newLoginSpinnerModel(label string) loginSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
	)

	return loginSpinnerModel{
		spinner: s,
		label:   label,
	}
}

func (m loginSpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m loginSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loginStatusMsg:
		m.label = msg.label
		return m, nil
	case loginDoneMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m loginSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// loginSpinner starts on the first poll status so it never draws over the
// QR code printed before polling begins.
type loginSpinner struct {
	ctx      context.Context
	output   io.Writer
	program  *tea.Program
	finished chan struct{}
}

func newLoginSpinner(ctx context.Context, output io.Writer) *loginSpinner {
	return &loginSpinner{ctx: ctx, output: output}
}

func (s *loginSpinner) Update(status domain.PollStatus) {
	label := pollStatusLabel(status)
	if s.program != nil {
		s.program.Send(loginStatusMsg{label: label})
		return
	}

	s.program = tea.NewProgram(
		newLoginSpinnerModel(label),
		tea.WithInput(nil),
		tea.WithOutput(s.output),
		tea.WithContext(s.ctx),
	)
	s.finished = make(chan struct{})
	go func() {
		defer close(s.finished)
		_, _ = s.program.Run()
	}()
}

func (s *loginSpinner) Stop() {
	if s.program == nil {
		return
	}
	s.program.Send(loginDoneMsg{})
	<-s.finished
}

func pollStatusLabel(status domain.PollStatus) string {
	switch status {
	case domain.PollStatusNotScanned:
		return "Waiting for the QR code to be scanned..."
	case domain.PollStatusScanned:
		return "Scanned. Confirm the login in the bilibili app..."
	default:
		return "Waiting for confirmation..."
	}
}
