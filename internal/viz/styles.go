package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/floq/internal/floquet"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(10)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Pass = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))

	Fail = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff4444"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

func metricLine(label string, value any) string {
	return MetricLabel.Render(label) + MetricValue.Render(fmt.Sprint(value))
}

// RenderParams draws the parameters of one problem in a panel.
func RenderParams(title string, p *floquet.Params) string {
	lines := []string{
		Title.Render(title),
		metricLine("dim", p.Dim()),
		metricLine("nz", p.Nz()),
		metricLine("zones", fmt.Sprintf("%d .. %d", p.NzMin(), p.NzMax())),
		metricLine("k_dim", p.KDim()),
		metricLine("nc", p.Nc()),
		metricLine("np", p.Np()),
		metricLine("omega", p.Omega()),
		metricLine("t", p.T()),
		metricLine("period", fmt.Sprintf("%.6g", p.Period())),
		metricLine("decimals", p.Decimals()),
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

// RenderCheck formats a PASS/FAIL line for a named check.
func RenderCheck(name string, ok bool, detail string) string {
	status := Pass.Render("PASS")
	if !ok {
		status = Fail.Render("FAIL")
	}
	line := status + " " + name
	if detail != "" {
		line += " " + Subtle.Render(detail)
	}
	return line
}
