package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/microcombo/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export run history as JSON",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	runs, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}
	if runs == nil {
		runs = []model.Run{}
	}

	b, _ := json.MarshalIndent(runs, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
