package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/microcombo/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete recorded runs",
		Args:  cobra.MaximumNArgs(1),
		Run:   runRm,
	}

	cmd.Flags().Bool("all", false, "Delete the whole history (irreversible)")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	all, _ := cmd.Flags().GetBool("all")
	if !all && len(args) == 0 {
		exitErr("rm", fmt.Errorf("an id or --all is required"))
	}

	var id string
	if len(args) > 0 {
		id = args[0]
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Rm(cmd.Context(), store.RmParams{ID: id, All: all})
	if err != nil {
		exitErr("rm", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"deleted":%d}`+"\n", n)
}
