package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show history statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	if !jsonOutput() {
		fmt.Fprintf(cmd.OutOrStdout(), "database: %s (%s)\nruns: %d\ntime saved: %.2f seconds\naverage deviation: %.1f seconds\n",
			stats.DBPath, stats.DBSize, stats.TotalRuns, stats.TotalSaved, stats.AvgDeviation)
		for _, in := range stats.TopInputs {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-7s x%d -> %s\n", in.Input, in.Count, in.Digits)
		}
		return
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
