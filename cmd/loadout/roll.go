package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/roll"
	"github.com/KirkDiggler/rpg-loadout/internal/presenter"
)

func (c *cli) rollCmd() *cobra.Command {
	var (
		count int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll random builds from the active roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, c.cfg, presenter.Format(c.flags.format))
			if err != nil {
				return err
			}
			defer a.Close()

			input := &roll.RollBuildsInput{
				ProfileID: c.cfg.Profile,
				Count:     count,
			}
			if cmd.Flags().Changed("seed") {
				input.Seed = &seed
			}

			out, err := a.roll.RollBuilds(ctx, input)
			if err != nil {
				return err
			}

			return a.presenter.Builds(cmd.OutOrStdout(), out.Builds)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of builds to roll")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible roll")

	return cmd
}
