// Package backfill recomputes the utilization columns of a benchmark
// summary table from each run's raw sampling file.
package backfill

import (
	"fmt"
	"math"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/rusenback/bench-backfill/internal/stats"
	"github.com/rusenback/bench-backfill/internal/summary"
)

// StatsFileName is the raw sampling file expected inside each run's
// artifacts directory.
const StatsFileName = "docker_stats.csv"

// Columns managed by the backfill, appended in this order when absent.
const (
	ColMaxCPUPerc      = "max_cpu_perc"
	ColMaxMemPerc      = "max_mem_perc"
	ColMaxMemUsedBytes = "max_mem_used_bytes"
)

// Result describes one completed backfill.
type Result struct {
	OutputPath string
	// Patched collects the utilization recorded per artifacts_dir for
	// rows whose raw sampling file existed.
	Patched map[string]stats.Utilization
}

// Run reads the summary table at summaryPath, recomputes the three
// utilization columns for every row with an artifacts_dir, and writes
// the table to outPath. An empty outPath overwrites the input.
//
// Rows without an artifacts directory pass through untouched, and a
// missing raw sampling file leaves that row's existing cell values
// exactly as they were.
func Run(summaryPath, outPath string) (*Result, error) {
	if outPath == "" {
		outPath = summaryPath
	}

	table, err := summary.Read(summaryPath)
	if err != nil {
		return nil, err
	}

	table.EnsureColumn(ColMaxCPUPerc)
	table.EnsureColumn(ColMaxMemPerc)
	table.EnsureColumn(ColMaxMemUsedBytes)

	res := &Result{
		OutputPath: outPath,
		Patched:    make(map[string]stats.Utilization),
	}

	for i := range table.Rows {
		art := table.Get(i, "artifacts_dir")
		if art == "" {
			continue
		}

		u := stats.FromFile(filepath.Join(art, StatsFileName))
		if u.Missing() {
			log.Debugf("no %s under %s, leaving row as-is", StatsFileName, art)
		}
		setIfKnown(table, i, ColMaxCPUPerc, u.MaxCPUPerc, 6)
		setIfKnown(table, i, ColMaxMemPerc, u.MaxMemPerc, 6)
		setIfKnown(table, i, ColMaxMemUsedBytes, u.MaxMemUsedBytes, 0)
		if !u.Missing() {
			res.Patched[art] = u
			log.Debugf("run %s: cpu=%.6f%% mem=%.6f%% used=%.0fB",
				art, u.MaxCPUPerc, u.MaxMemPerc, u.MaxMemUsedBytes)
		}
	}

	if err := table.Write(outPath); err != nil {
		return nil, err
	}
	return res, nil
}

// setIfKnown overwrites the cell unless the statistic is the NaN
// no-data sentinel, in which case any existing value is kept.
func setIfKnown(t *summary.Table, row int, col string, v float64, prec int) {
	if math.IsNaN(v) {
		return
	}
	t.Set(row, col, fmt.Sprintf("%.*f", prec, v))
}
