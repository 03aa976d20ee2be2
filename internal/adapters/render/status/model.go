package status

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

// profileRow is a profile already classified for display.
type profileRow struct {
	status application.ProfileStatus
	stale  bool
	noCSRF bool
}

type model struct {
	rows       []profileRow
	staleCount int
	opts       RenderOptions
	styles     styles
	output     string
}

func newModel(profiles []application.ProfileStatus, opts RenderOptions) model {
	m := model{
		rows:   make([]profileRow, 0, len(profiles)),
		opts:   opts,
		styles: newStyles(),
	}
	for _, profile := range profiles {
		row := profileRow{
			status: profile,
			stale:  isStale(profile, opts.StaleAfter),
			noCSRF: profile.Summary.Credential.BiliJct == "",
		}
		if row.stale {
			m.staleCount++
		}
		m.rows = append(m.rows, row)
	}
	return m
}

// isStale needs a known write time; legacy entries without updated_at never count.
func isStale(profile application.ProfileStatus, staleAfter time.Duration) bool {
	if staleAfter <= 0 || profile.Summary.UpdatedAt.IsZero() {
		return false
	}
	return profile.Age > staleAfter
}

func (m model) empty() bool {
	return len(m.rows) == 0
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(renderReadyMsg); ok {
		m.output = renderView(m)
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	return m.output
}

// Render draws the profile listing once, without a terminal.
func Render(profiles []application.ProfileStatus, opts RenderOptions) (string, error) {
	final, err := tea.NewProgram(
		newModel(profiles, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	).Run()
	if err != nil {
		return "", fmt.Errorf("render profiles: %w", err)
	}

	rendered, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}
	return rendered.output, nil
}
