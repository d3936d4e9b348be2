package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codepet/internal/pet"
	"codepet/internal/ui"
)

func newInventoryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "List your items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				p := s.game.Snapshot()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconBox, "Inventory"))
				if len(p.Items) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("Empty. Visit the shop with `codepet shop`."))
					return nil
				}
				for _, it := range p.Items {
					fmt.Fprintf(out, "%s %s %s x%d  %s\n", ui.Key.Render(fmt.Sprintf("#%-3d", it.ID)), it.Icon, it.Name, it.Count,
						ui.Muted.Render(fmt.Sprintf("%s +%g", it.Effect, it.Value)))
				}
				return nil
			})
		},
	}
}

func newUseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "use <item-id>",
		Short: "Use one item from your inventory",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])
			return runAction(cmd, opts, fixed(pet.UseItem(id)))
		},
	}
}

func newSellCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sell",
		Short: "Sell items or collectibles for half their value",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "item <item-id>",
			Short: "Sell one unit of an inventory item",
			Args:  oneID,
			RunE: func(cmd *cobra.Command, args []string) error {
				id, _ := parseID(args[0])
				return runAction(cmd, opts, fixed(pet.SellItem(id)))
			},
		},
		&cobra.Command{
			Use:   "collectible <collectible-id>",
			Short: "Sell an owned, tradable collectible",
			Args:  oneID,
			RunE: func(cmd *cobra.Command, args []string) error {
				id, _ := parseID(args[0])
				return runAction(cmd, opts, fixed(pet.SellCollectible(id)))
			},
		},
	)
	return cmd
}
