package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// View renders the TUI interface
func (m Model) View() string {
	// 60% list, 40% detail
	listWidth := int(float64(m.width) * 0.6)
	detailWidth := m.width - listWidth - 4 // -4 for borders and padding
	if listWidth < 40 {
		listWidth = 40
	}
	if detailWidth < 30 {
		detailWidth = 30
	}

	leftPanel := m.renderListPanel(listWidth)
	rightPanel := m.renderDetailPanel(detailWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
}

func (m Model) renderListPanel(width int) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("📈 Benchmark Runs") + "\n\n")

	if len(m.runs) == 0 {
		s.WriteString("No runs with an artifacts_dir in this summary.\n")
		return panelStyle.Width(width).Render(s.String())
	}

	s.WriteString(fmt.Sprintf("%d runs\n\n", len(m.runs)))

	header := fmt.Sprintf("%-28s %10s %10s", "RUN", "CPU%", "MEM%")
	s.WriteString(headerStyle.Render(header) + "\n")

	for i, run := range m.runs {
		name := truncate(filepath.Base(run.ArtifactsDir), 28)

		var cpu, mem string
		if run.HasStats {
			cpu = fmt.Sprintf("%10.2f", run.MaxCPUPerc)
			mem = fmt.Sprintf("%10.2f", run.MaxMemPerc)
		} else {
			cpu = fmt.Sprintf("%10s", "-")
			mem = fmt.Sprintf("%10s", "-")
		}

		line := fmt.Sprintf("%-28s %s %s", name, cpu, mem)
		if i == m.cursor {
			s.WriteString(selectedStyle.Render("> " + line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
	}

	help := "\n[↑/k] up  [↓/j] down  [g/G] first/last  [q] quit"
	s.WriteString(helpStyle.Render(help))

	return panelStyle.Width(width).Render(s.String())
}

func (m Model) renderDetailPanel(width int) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("📊 Peak Utilization") + "\n\n")

	if len(m.runs) == 0 {
		return panelStyle.Width(width).Render(s.String())
	}

	run := m.runs[m.cursor]
	s.WriteString(labelStyle.Render("Artifacts: "))
	s.WriteString(valueStyle.Render(truncate(run.ArtifactsDir, width-14)))
	s.WriteString("\n\n")

	if !run.HasStats {
		s.WriteString(missingStyle.Render("No utilization recorded for this run."))
		return panelStyle.Width(width).Render(s.String())
	}

	barWidth := width - 24
	if barWidth < 10 {
		barWidth = 10
	}

	s.WriteString(labelStyle.Render("CPU:    "))
	s.WriteString(renderProgressBar(run.MaxCPUPerc, 100, barWidth))
	s.WriteString(fmt.Sprintf(" %.2f%%\n", run.MaxCPUPerc))

	s.WriteString(labelStyle.Render("Memory: "))
	s.WriteString(renderProgressBar(run.MaxMemPerc, 100, barWidth))
	s.WriteString(fmt.Sprintf(" %.2f%%\n\n", run.MaxMemPerc))

	s.WriteString(labelStyle.Render("Peak memory used: "))
	s.WriteString(valueStyle.Render(humanize.IBytes(uint64(run.MaxMemUsedBytes))))
	s.WriteString("\n")

	return panelStyle.Width(width).Render(s.String())
}

// renderProgressBar draws an ASCII bar scaled to value/max.
func renderProgressBar(value, max float64, width int) string {
	if max == 0 {
		max = 1
	}

	percent := value / max
	if percent > 1 {
		percent = 1
	}
	if percent < 0 {
		percent = 0
	}

	filled := int(percent * float64(width))
	empty := width - filled

	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", empty) + "]"
	return progressBarStyle.Render(bar)
}

// truncate shortens a string to a maximum length
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
