package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/microcombo/internal/logger"
	"github.com/rcliao/microcombo/internal/model"
	"github.com/rcliao/microcombo/internal/optimizer"
	"github.com/rcliao/microcombo/internal/report"
	"github.com/rcliao/microcombo/internal/store"
	"github.com/rcliao/microcombo/internal/timeparse"
)

func init() {
	cmd := &cobra.Command{
		Use:     "optimize [m:ss]",
		Aliases: []string{"opt"},
		Short:   "Find the quickest combination near a cook time",
		Long:    "Find the quickest combination near a cook time. Minutes and seconds are separated by ':' or '.'.",
		Args:    cobra.ExactArgs(1),
		Run:     runOptimize,
	}

	cmd.Flags().BoolP("compact", "c", false, "One-line output")
	cmd.Flags().BoolP("stats", "s", false, "Show savings against the original entry")
	cmd.Flags().IntP("parallel", "p", 0, "Evaluate candidates on N goroutines")
	cmd.Flags().Float64("percent", 0, "Allowed deviation as a fraction of the target (default from config)")
	cmd.Flags().Int("base", 0, "Allowed deviation in flat seconds (default from config)")
	cmd.Flags().Float64("move-time", 0, "Seconds to move one key (default from config)")
	cmd.Flags().Bool("no-save", false, "Do not record the run in history")

	RootCmd.AddCommand(cmd)
}

func runOptimize(cmd *cobra.Command, args []string) {
	compact, _ := cmd.Flags().GetBool("compact")
	showStats, _ := cmd.Flags().GetBool("stats")
	workers, _ := cmd.Flags().GetInt("parallel")
	noSave, _ := cmd.Flags().GetBool("no-save")

	target, err := timeparse.Parse(args[0])
	if err != nil {
		exitErr("parse time", err)
	}

	opts := cfg.Options()
	if cmd.Flags().Changed("percent") {
		opts.Allowance.Percent, _ = cmd.Flags().GetFloat64("percent")
	}
	if cmd.Flags().Changed("base") {
		opts.Allowance.Base, _ = cmd.Flags().GetInt("base")
	}
	if cmd.Flags().Changed("move-time") {
		opts.MoveTime, _ = cmd.Flags().GetFloat64("move-time")
	}
	if err := validateOptions(opts); err != nil {
		exitErr("optimize", err)
	}

	summary := summarize(args[0], target, opts, workers)
	logger.Global.Debug("target %ds window [%d, %d] -> %ds",
		summary.TargetSeconds, summary.Window.Lower, summary.Window.Upper, summary.Result.TotalSeconds)

	err = report.Write(cmd.OutOrStdout(), summary, report.Options{
		Compact: compact,
		Stats:   showStats,
		JSON:    jsonOutput(),
	})
	if err != nil {
		exitErr("write", err)
	}

	if noSave {
		return
	}
	if err := record(cmd, summary); err != nil {
		logger.Global.Warn("recording run: %v", err)
	}
}

// validateOptions checks options after flag overrides, before any search runs.
func validateOptions(opts optimizer.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.MoveTime <= 0 {
		return fmt.Errorf("move time must be positive, got %v", opts.MoveTime)
	}
	return nil
}

func summarize(input string, target model.TimeValue, opts optimizer.Options, workers int) report.Summary {
	total := target.TotalSeconds()
	var best model.CandidateResult
	if workers > 1 {
		best = optimizer.OptimizeParallel(target, opts, workers)
	} else {
		best = optimizer.Optimize(target, opts)
	}
	st := report.NewStats(total, optimizer.Evaluate(total, opts), best)

	return report.Summary{
		Input:         input,
		Target:        target,
		TargetSeconds: total,
		Window:        optimizer.Window(target, opts),
		Result:        best,
		Stats:         &st,
	}
}

func record(cmd *cobra.Command, s report.Summary) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.Record(cmd.Context(), store.RecordParams{
		Input:          s.Input,
		TargetSeconds:  s.TargetSeconds,
		OriginalDigits: s.Stats.OriginalDigits.String(),
		OriginalCost:   s.Stats.OriginalCost,
		Digits:         s.Result.Digits.String(),
		TotalSeconds:   s.Result.TotalSeconds,
		Cost:           s.Result.Cost,
		WindowLower:    s.Window.Lower,
		WindowUpper:    s.Window.Upper,
	})
	if err != nil {
		return err
	}
	logger.Global.Debug("recorded run %s", run.ID)
	return nil
}
