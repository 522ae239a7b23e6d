package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rusenback/bench-backfill/internal/summary"
	"github.com/rusenback/bench-backfill/internal/tui"
)

func viewCmd() *cobra.Command {
	var summaryPath string

	cmd := &cobra.Command{
		Use:          "view",
		Short:        "Browse a summary table's peak utilization interactively.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := summary.Read(summaryPath)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewModel(table), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&summaryPath, "summary", "", "path to the summary CSV (required)")
	cmd.MarkFlagRequired("summary")

	return cmd
}
