package main

import (
	"fmt"

	"github.com/hupe1980/kdgo/persistence"
	"github.com/spf13/cobra"
)

func newStatsCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <tree>",
		Short: "Print the shape of a serialized KD-tree and check its invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, name, err := openStore(ctx, args[0], global.throttle)
			if err != nil {
				return err
			}

			manager := persistence.NewManager(store)
			tree, err := manager.LoadTree(ctx, name)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tree.Stats())

			if err := tree.Validate(); err != nil {
				return fmt.Errorf("invariant check failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "invariants ok")

			return nil
		},
	}

	return cmd
}
