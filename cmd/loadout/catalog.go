package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/generator"
	"github.com/KirkDiggler/rpg-loadout/internal/presenter"
)

func (c *cli) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the loaded catalog",
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Load the catalog and report what builds can draw from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), c.cfg, presenter.Format(c.flags.format))
			if err != nil {
				return err
			}
			defer a.Close()

			all := a.store.Items()
			summary := &presenter.CatalogSummary{
				Characters:    len(a.store.Characters()),
				Items:         len(all),
				Abilities:     len(a.store.Abilities()),
				HighlightPool: len(a.filter.HighlightPool(all)),
				Orphans:       a.store.Orphans(),
			}
			for _, it := range a.filter.MovementItems(all) {
				summary.MovementItems = append(summary.MovementItems, it.Key)
			}

			if err := a.presenter.Catalog(cmd.OutOrStdout(), summary); err != nil {
				return err
			}

			if summary.Characters == 0 {
				return errors.FailedPrecondition("catalog has no characters")
			}
			if len(summary.MovementItems) == 0 {
				return errors.FailedPrecondition("catalog has no movement items")
			}
			if summary.HighlightPool < generator.DefaultHighlightSlots {
				cmd.PrintErrf("warning: highlight pool has %d items, builds will carry fewer than %d\n",
					summary.HighlightPool, generator.DefaultHighlightSlots)
			}
			return nil
		},
	}

	cmd.AddCommand(checkCmd)
	return cmd
}
