package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rcliao/microcombo/internal/model"
	"github.com/rcliao/microcombo/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Run:   runHistory,
	}

	cmd.Flags().StringP("input", "i", "", "Only runs for this exact input, e.g. 5:30")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)

	show := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one recorded run",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(show)
}

func runHistory(cmd *cobra.Command, args []string) {
	input, _ := cmd.Flags().GetString("input")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	runs, err := s.List(cmd.Context(), store.ListParams{
		Input: strings.TrimSpace(input),
		Limit: limit,
	})
	if err != nil {
		exitErr("history", err)
	}

	if jsonOutput() {
		if runs == nil {
			runs = []model.Run{}
		}
		b, _ := json.MarshalIndent(runs, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}

	now := time.Now()
	for _, r := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s -> %-5s saved %.2fs  %s\n",
			r.ID, r.Input, r.Digits, r.TimeSaved(), humanize.RelTime(r.CreatedAt, now, "ago", "from now"))
	}
}

func runShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	run, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("show", err)
	}

	b, _ := json.MarshalIndent(run, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
