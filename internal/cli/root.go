// Package cli implements the microcombo CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/microcombo/internal/config"
	"github.com/rcliao/microcombo/internal/logger"
	"github.com/rcliao/microcombo/internal/store"
)

var (
	dbPath      string
	formatFlag  string
	verboseFlag bool

	cfg *config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "microcombo",
	Short: "Find the quickest microwave keypad entry for a cook time",
	Long: "Given a cook time like 5:30, search nearby durations for the one whose digits are " +
		"fastest to type on a microwave keypad.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetGlobal(logger.New(os.Stderr, verboseFlag))
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $MICROCOMBO_DB or ~/.microcombo/history.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug details to stderr")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath
}

func openStore() (*store.SQLiteStore, error) {
	logger.Global.Debug("opening history at %s", getDBPath())
	return store.NewSQLiteStore(getDBPath())
}

func jsonOutput() bool {
	return formatFlag == "json"
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
