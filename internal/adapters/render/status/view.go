package status

import (
	"fmt"
	"math"
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	StorePath string
	// StaleAfter flags profiles whose credential was written longer ago.
	// Zero disables the marker.
	StaleAfter time.Duration
}

func renderView(m model) string {
	s := m.styles
	lines := []string{s.title.Render("bilibili profiles")}
	if m.opts.StorePath != "" {
		lines = append(lines, s.header.Render("store: "+m.opts.StorePath))
	}

	count := fmt.Sprintf("profiles: %d", len(m.rows))
	if m.staleCount > 0 {
		count += fmt.Sprintf(" (%d stale, run `ba login` to refresh)", m.staleCount)
	}
	lines = append(lines, s.header.Render(count))

	if m.empty() {
		lines = append(lines, s.empty.Render("No stored credentials. Run `ba login` to add one."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, row := range m.rows {
		lines = append(lines, s.section.Render(renderProfile(row, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfile(row profileRow, s styles) string {
	summary := row.status.Summary
	jct := secretValue(summary.Credential.BiliJct, s)
	if row.noCSRF {
		jct = s.missing.Render("not set (read-only)")
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.profile.Render(string(summary.Name)),
		field("sessdata", secretValue(summary.Credential.SessData, s), s),
		field("bili_jct", jct, s),
		field("updated", updatedValue(row, s), s),
	)
}

func field(name, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(fmt.Sprintf("  %-9s", name+":")), " ", value)
}

func secretValue(value string, s styles) string {
	if value == "" {
		return s.missing.Render("not set")
	}
	return s.detail.Render(domain.MaskSecret(value))
}

func updatedValue(row profileRow, s styles) string {
	updatedAt := row.status.Summary.UpdatedAt
	if updatedAt.IsZero() {
		return s.missing.Render("unknown")
	}

	line := s.detail.Render(fmt.Sprintf("%s (%s)", updatedAt.UTC().Format("2006-01-02 15:04 UTC"), formatAge(row.status.Age)))
	if row.stale {
		line += " " + s.warning.Render("[stale]")
	}
	return line
}

func formatAge(age time.Duration) string {
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return plural(int(age.Minutes()), "minute") + " ago"
	case age < 24*time.Hour:
		return plural(int(age.Hours()), "hour") + " ago"
	default:
		return plural(int(math.Floor(age.Hours()/24)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
