package summary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRead(t *testing.T) {
	t.Run("HeaderAndRows", func(t *testing.T) {
		table, err := Read(writeCSV(t, "name,artifacts_dir\nrun-a,/tmp/a\nrun-b,/tmp/b\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "artifacts_dir"}, table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "/tmp/a", table.Get(0, "artifacts_dir"))
		assert.Equal(t, "run-b", table.Get(1, "name"))
	})

	t.Run("RaggedRowsPadded", func(t *testing.T) {
		table, err := Read(writeCSV(t, "name,artifacts_dir,extra\nrun-a,/tmp/a\n"))
		require.NoError(t, err)
		assert.Equal(t, "", table.Get(0, "extra"))
	})

	t.Run("MissingFileErrors", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "absent.csv"))
		assert.Error(t, err)
	})
}

func TestEnsureColumn(t *testing.T) {
	t.Run("AppendsAtEnd", func(t *testing.T) {
		table, err := Read(writeCSV(t, "name,artifacts_dir\nrun-a,/tmp/a\n"))
		require.NoError(t, err)

		table.EnsureColumn("max_cpu_perc")
		assert.Equal(t, []string{"name", "artifacts_dir", "max_cpu_perc"}, table.Columns)
		assert.Equal(t, "", table.Get(0, "max_cpu_perc"))
	})

	t.Run("ExistingColumnKeepsPosition", func(t *testing.T) {
		table, err := Read(writeCSV(t, "max_cpu_perc,name\n1.5,run-a\n"))
		require.NoError(t, err)

		table.EnsureColumn("max_cpu_perc")
		assert.Equal(t, []string{"max_cpu_perc", "name"}, table.Columns)
		assert.Equal(t, "1.5", table.Get(0, "max_cpu_perc"))
	})
}

func TestWrite(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		path := writeCSV(t, "name,artifacts_dir\nrun-a,/tmp/a\n")
		table, err := Read(path)
		require.NoError(t, err)

		table.EnsureColumn("max_mem_perc")
		table.Set(0, "max_mem_perc", "42.000000")

		out := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, table.Write(out))

		again, err := Read(out)
		require.NoError(t, err)
		assert.Equal(t, table.Columns, again.Columns)
		assert.Equal(t, "42.000000", again.Get(0, "max_mem_perc"))
	})

	t.Run("QuotedFieldsSurvive", func(t *testing.T) {
		path := writeCSV(t, "name,artifacts_dir\n\"a,b\",/tmp/a\n")
		table, err := Read(path)
		require.NoError(t, err)
		assert.Equal(t, "a,b", table.Get(0, "name"))

		out := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, table.Write(out))

		again, err := Read(out)
		require.NoError(t, err)
		assert.Equal(t, "a,b", again.Get(0, "name"))
	})
}
