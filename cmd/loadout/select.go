package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection"
	"github.com/KirkDiggler/rpg-loadout/internal/presenter"
)

func (c *cli) selectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Manage which characters can be rolled",
	}

	var search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the roster and which characters are active",
		Args:  cobra.NoArgs,
		RunE: c.withSelection(func(cmd *cobra.Command, svc selection.Service, _ []string) (*selection.View, error) {
			out, err := svc.GetSelection(cmd.Context(), &selection.GetSelectionInput{ProfileID: c.cfg.Profile})
			if err != nil {
				return nil, err
			}
			return filterView(out.Selection, search), nil
		}),
	}
	listCmd.Flags().StringVarP(&search, "search", "s", "", "only show characters whose key or name contains this text")

	toggleCmd := &cobra.Command{
		Use:   "toggle <character>",
		Short: "Flip one character",
		Args:  cobra.ExactArgs(1),
		RunE: c.withSelection(func(cmd *cobra.Command, svc selection.Service, args []string) (*selection.View, error) {
			out, err := svc.ToggleCharacter(cmd.Context(), &selection.ToggleCharacterInput{
				ProfileID:    c.cfg.Profile,
				CharacterKey: args[0],
			})
			if err != nil {
				return nil, err
			}
			return out.Selection, nil
		}),
	}

	attrCmd := &cobra.Command{
		Use:       "attr <strength|agility|intelligence>",
		Short:     "Flip every character of a primary attribute",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"strength", "agility", "intelligence"},
		RunE: c.withSelection(func(cmd *cobra.Command, svc selection.Service, args []string) (*selection.View, error) {
			attr, ok := entities.ParseAttribute(args[0])
			if !ok {
				return nil, errors.InvalidArgumentf("unknown attribute %q", args[0])
			}
			out, err := svc.ToggleAttribute(cmd.Context(), &selection.ToggleAttributeInput{
				ProfileID: c.cfg.Profile,
				Attribute: attr,
			})
			if err != nil {
				return nil, err
			}
			return out.Selection, nil
		}),
	}

	roleCmd := &cobra.Command{
		Use:   "role <role>",
		Short: "Flip every character carrying a role",
		Args:  cobra.ExactArgs(1),
		RunE: c.withSelection(func(cmd *cobra.Command, svc selection.Service, args []string) (*selection.View, error) {
			out, err := svc.ToggleRole(cmd.Context(), &selection.ToggleRoleInput{
				ProfileID: c.cfg.Profile,
				Role:      args[0],
			})
			if err != nil {
				return nil, err
			}
			return out.Selection, nil
		}),
	}

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Switch the whole roster on or off",
		Args:  cobra.NoArgs,
		RunE: c.withSelection(func(cmd *cobra.Command, svc selection.Service, _ []string) (*selection.View, error) {
			out, err := svc.ToggleAll(cmd.Context(), &selection.ToggleAllInput{ProfileID: c.cfg.Profile})
			if err != nil {
				return nil, err
			}
			return out.Selection, nil
		}),
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Make every character active again",
		Args:  cobra.NoArgs,
		RunE: c.withSelection(func(cmd *cobra.Command, svc selection.Service, _ []string) (*selection.View, error) {
			out, err := svc.Reset(cmd.Context(), &selection.ResetInput{ProfileID: c.cfg.Profile})
			if err != nil {
				return nil, err
			}
			return out.Selection, nil
		}),
	}

	cmd.AddCommand(listCmd, toggleCmd, attrCmd, roleCmd, allCmd, resetCmd)
	return cmd
}

type selectionFunc func(cmd *cobra.Command, svc selection.Service, args []string) (*selection.View, error)

// withSelection wires the app, runs fn and prints the resulting view
func (c *cli) withSelection(fn selectionFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), c.cfg, presenter.Format(c.flags.format))
		if err != nil {
			return err
		}
		defer a.Close()

		view, err := fn(cmd, a.selection, args)
		if err != nil {
			return err
		}
		return a.presenter.Selection(cmd.OutOrStdout(), view)
	}
}

func filterView(view *selection.View, search string) *selection.View {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return view
	}

	out := *view
	out.Characters = nil
	for _, c := range view.Characters {
		if strings.Contains(strings.ToLower(c.Character.Key), search) ||
			strings.Contains(strings.ToLower(c.Character.Name), search) {
			out.Characters = append(out.Characters, c)
		}
	}
	return &out
}
