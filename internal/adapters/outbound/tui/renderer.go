package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/casestudypilot/casepilot/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	infoStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)

	statusColors = map[domain.Severity]lipgloss.Color{
		domain.SeverityPass:     success,
		domain.SeverityInfo:     info,
		domain.SeverityWarning:  warning,
		domain.SeverityCritical: danger,
	}

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult renders a validation result as a styled TUI string. The kind
// names the validator that produced it ("transcript", "format", ...).
func RenderResult(kind string, result domain.ValidationResult) string {
	var b strings.Builder

	title := headerStyle.Render("casepilot")
	subtitle := dimStyle.Render(kind + " validation")
	statusStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(result.Status)).
		Render(string(result.Status))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + statusStyled))
	b.WriteString("\n\n")

	for _, c := range result.Checks {
		b.WriteString("  " + renderCheck(c) + "\n")
	}

	if failed := result.FailedChecks(); len(failed) > 0 {
		b.WriteString("\n" + separatorLine + "\n")
		for _, c := range failed {
			if c.Message != "" {
				b.WriteString("  " + severityTag(c.Severity) + " " + c.Message + "\n")
			}
		}
	}

	return b.String()
}

func renderCheck(c domain.ValidationCheck) string {
	marker := passStyle.Render("●")
	if !c.Passed {
		switch c.Severity {
		case domain.SeverityCritical:
			marker = failStyle.Render("●")
		case domain.SeverityWarning:
			marker = warnStyle.Render("●")
		default:
			marker = infoStyle.Render("●")
		}
	}
	return fmt.Sprintf("%s %s", marker, titleStyle.Render(c.Name))
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return failStyle.Bold(true).Render("[CRITICAL]")
	case domain.SeverityWarning:
		return warnStyle.Bold(true).Render("[WARNING]")
	default:
		return infoStyle.Render("[" + string(s) + "]")
	}
}

func statusColor(s domain.Severity) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return dim
}

// RenderHistory renders recorded validation runs, newest last.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("No validation history recorded yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Validation History") + "\n\n")
	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 8 {
			hash = hash[:8]
		}
		line := fmt.Sprintf("  %s  %-12s %-24s %s",
			statusBadge(e.Status), e.Validator, e.Target, dimStyle.Render(e.Timestamp))
		if hash != "" {
			line += "  " + faintStyle.Render(hash)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func statusBadge(s domain.Severity) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(statusColor(s))
	return style.Render(fmt.Sprintf("%-8s", string(s)))
}
