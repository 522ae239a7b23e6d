// Package tui is a read-only browser for a patched summary table:
// a run list on the left, the selected run's peak utilization on the
// right.
package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/bench-backfill/internal/backfill"
	"github.com/rusenback/bench-backfill/internal/summary"
)

// Run is one summary row worth displaying.
type Run struct {
	ArtifactsDir    string
	MaxCPUPerc      float64
	MaxMemPerc      float64
	MaxMemUsedBytes float64
	// HasStats is false for rows whose utilization columns were empty.
	HasStats bool
}

// Model represents the TUI application state
type Model struct {
	runs   []Run
	cursor int
	width  int
	height int
}

// NewModel builds the viewer state from a summary table. Rows without
// an artifacts_dir are skipped; rows with blank utilization columns
// are kept but flagged so the detail panel can say so.
func NewModel(table *summary.Table) Model {
	var runs []Run
	for i := range table.Rows {
		art := table.Get(i, "artifacts_dir")
		if art == "" {
			continue
		}
		r := Run{ArtifactsDir: art}
		cpu, okCPU := parseCell(table.Get(i, backfill.ColMaxCPUPerc))
		mem, okMem := parseCell(table.Get(i, backfill.ColMaxMemPerc))
		used, okUsed := parseCell(table.Get(i, backfill.ColMaxMemUsedBytes))
		r.MaxCPUPerc = cpu
		r.MaxMemPerc = mem
		r.MaxMemUsedBytes = used
		r.HasStats = okCPU || okMem || okUsed
		runs = append(runs, r)
	}
	return Model{runs: runs}
}

func parseCell(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Init implements tea.Model; the viewer has no background work.
func (m Model) Init() tea.Cmd {
	return nil
}
