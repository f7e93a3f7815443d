package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pokearena/arena/internal/genmenu"
)

func newRootCmd() *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "menugen <name>",
		Short: "Add a new menu screen to the arena application",
		Long: `menugen splices a new screen into every artifact that declares states:
the state set, the menu definition table, the screen handler tables, and a
fresh screen file. Splices are idempotent; re-running for an existing name
is a no-op.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genmenu.New(root).Run(args[0])
			if err != nil {
				return err
			}
			if len(result.Changed) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to do")
				return nil
			}
			for _, path := range result.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "repository root to modify")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
