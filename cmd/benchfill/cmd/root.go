// Package cmd holds the benchfill command tree.
package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rusenback/bench-backfill/internal/backfill"
	"github.com/rusenback/bench-backfill/internal/storage"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	var (
		summaryPath string
		outPath     string
		dbPath      string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "benchfill",
		Short: "Backfill peak utilization columns in a benchmark summary CSV.",
		Long: `benchfill recomputes max_cpu_perc, max_mem_perc and max_mem_used_bytes
for every run in a summary CSV by re-reading docker_stats.csv from each
run's artifacts directory, and patches the columns back into the table.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			res, err := backfill.Run(summaryPath, outPath)
			if err != nil {
				return err
			}

			if dbPath != "" {
				store, err := storage.Open(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Record(res.Patched); err != nil {
					return err
				}
				log.Debugf("recorded %d runs in %s", len(res.Patched), dbPath)
			}

			fmt.Printf("[backfill] wrote %s\n", res.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&summaryPath, "summary", "", "path to the summary CSV (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default: overwrite input)")
	cmd.Flags().StringVar(&dbPath, "db", "", "optional SQLite database to append run history to")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagRequired("summary")

	cmd.AddCommand(viewCmd())

	return cmd
}
