// Package stats reduces a per-run docker_stats.csv sampling file to
// peak utilization figures.
package stats

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rusenback/bench-backfill/internal/units"
)

// Utilization holds the running maxima computed from one raw sampling
// file. All three are NaN when the file does not exist, which is
// distinct from a file that exists but contains no data rows (zeros).
type Utilization struct {
	MaxCPUPerc      float64
	MaxMemPerc      float64
	MaxMemUsedBytes float64
}

// Missing reports whether the utilization is the no-data sentinel.
func (u Utilization) Missing() bool {
	return math.IsNaN(u.MaxCPUPerc)
}

// FromFile scans a docker stats CSV and returns the peak CPU percent,
// peak memory percent, and peak memory bytes used across all samples.
//
// Rows are: ts,container,name,cpu_perc,mem_usage,mem_perc,net_io,block_io,pids.
// Header rows are detected by the first field starting with "ts", not
// by position, so a data row whose timestamp begins with "ts" is also
// skipped. Malformed rows contribute zero instead of failing the scan;
// the reported mem_perc column is not trusted and is recomputed from
// mem_usage.
func FromFile(path string) Utilization {
	f, err := os.Open(path)
	if err != nil {
		return Utilization{
			MaxCPUPerc:      math.NaN(),
			MaxMemPerc:      math.NaN(),
			MaxMemUsedBytes: math.NaN(),
		}
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true

	var u Utilization
	for {
		row, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Rows the reader cannot parse contribute nothing.
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			break
		}
		if len(row) == 0 || strings.HasPrefix(row[0], "ts") {
			continue
		}

		u.MaxCPUPerc = math.Max(u.MaxCPUPerc, cpuPercent(row))

		used, total := memUsage(row)
		usedBytes := units.ToBytes(used)
		totalBytes := units.ToBytes(total)
		u.MaxMemUsedBytes = math.Max(u.MaxMemUsedBytes, usedBytes)
		if totalBytes > 0 {
			u.MaxMemPerc = math.Max(u.MaxMemPerc, usedBytes/totalBytes*100)
		}
	}
	return u
}

// cpuPercent parses the cpu_perc field, e.g. "12.34%". Anything
// unparsable counts as 0.
func cpuPercent(row []string) float64 {
	if len(row) < 4 {
		return 0
	}
	s := strings.TrimSuffix(strings.TrimSpace(row[3]), "%")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// memUsage splits the mem_usage field, e.g. "3.77MiB / 187.4GiB", into
// its used and total tokens. A row without a slash yields two empty
// tokens, which parse to 0 bytes.
func memUsage(row []string) (used, total string) {
	if len(row) < 5 {
		return "", ""
	}
	used, total, ok := strings.Cut(row[4], "/")
	if !ok {
		return "", ""
	}
	return strings.TrimSpace(used), strings.TrimSpace(total)
}
