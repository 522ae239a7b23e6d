package backfill

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/bench-backfill/internal/summary"
)

// newRun creates an artifacts directory holding a docker_stats.csv.
func newRun(t *testing.T, statsContent string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StatsFileName), []byte(statsContent), 0644))
	return dir
}

func writeSummary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun(t *testing.T) {
	t.Run("EndToEnd", func(t *testing.T) {
		art := newRun(t,
			"ts,container,name,cpu_perc,mem_usage,mem_perc,net_io,block_io,pids\n"+
				"1,abc,c1,5.00%,100MiB / 1GiB,10.0,0,0,1\n")
		path := writeSummary(t, fmt.Sprintf("name,artifacts_dir\nrun-a,%s\n", art))

		res, err := Run(path, "")
		require.NoError(t, err)
		assert.Equal(t, path, res.OutputPath)

		table, err := summary.Read(path)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"name", "artifacts_dir", ColMaxCPUPerc, ColMaxMemPerc, ColMaxMemUsedBytes},
			table.Columns)
		assert.Equal(t, "5.000000", table.Get(0, ColMaxCPUPerc))
		assert.Equal(t, "9.765625", table.Get(0, ColMaxMemPerc))
		assert.Equal(t, "104857600", table.Get(0, ColMaxMemUsedBytes))

		u, ok := res.Patched[art]
		require.True(t, ok)
		assert.Equal(t, 5.0, u.MaxCPUPerc)
	})

	t.Run("Idempotent", func(t *testing.T) {
		art := newRun(t, "1,abc,c1,12.34%,1MiB / 4MiB,25.0,0,0,1\n")
		path := writeSummary(t, fmt.Sprintf("name,artifacts_dir\nrun-a,%s\n", art))

		_, err := Run(path, "")
		require.NoError(t, err)
		first, err := os.ReadFile(path)
		require.NoError(t, err)

		_, err = Run(path, "")
		require.NoError(t, err)
		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("SeparateOutputLeavesInput", func(t *testing.T) {
		art := newRun(t, "1,abc,c1,1.00%,1MiB / 4MiB,25.0,0,0,1\n")
		in := writeSummary(t, fmt.Sprintf("name,artifacts_dir\nrun-a,%s\n", art))
		original, err := os.ReadFile(in)
		require.NoError(t, err)

		out := filepath.Join(t.TempDir(), "out.csv")
		res, err := Run(in, out)
		require.NoError(t, err)
		assert.Equal(t, out, res.OutputPath)

		after, err := os.ReadFile(in)
		require.NoError(t, err)
		assert.Equal(t, original, after)

		table, err := summary.Read(out)
		require.NoError(t, err)
		assert.Equal(t, "1.000000", table.Get(0, ColMaxCPUPerc))
	})

	t.Run("EmptyArtifactsDirPassesThrough", func(t *testing.T) {
		path := writeSummary(t, "name,artifacts_dir,max_cpu_perc\nrun-a,,7.5\n")

		_, err := Run(path, "")
		require.NoError(t, err)

		table, err := summary.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "7.5", table.Get(0, ColMaxCPUPerc))
	})

	t.Run("MissingStatsFileLeavesCells", func(t *testing.T) {
		art := t.TempDir() // no docker_stats.csv inside
		path := writeSummary(t, fmt.Sprintf(
			"name,artifacts_dir,max_cpu_perc,max_mem_perc,max_mem_used_bytes\nrun-a,%s,3.14,2.71,1024\n", art))

		res, err := Run(path, "")
		require.NoError(t, err)
		assert.Empty(t, res.Patched)

		table, err := summary.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "3.14", table.Get(0, ColMaxCPUPerc))
		assert.Equal(t, "2.71", table.Get(0, ColMaxMemPerc))
		assert.Equal(t, "1024", table.Get(0, ColMaxMemUsedBytes))
	})

	t.Run("MissingSummaryErrors", func(t *testing.T) {
		_, err := Run(filepath.Join(t.TempDir(), "absent.csv"), "")
		assert.Error(t, err)
	})
}
