package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codepet/internal/pet"
	"codepet/internal/ui"
)

func newShopCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "List what the shop sells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				p := s.game.Snapshot()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading("🛒", "Shop")+"  "+ui.LabelValue("Coins", p.Coins))
				for _, item := range pet.Shop(p) {
					fmt.Fprintf(out, "%s %s\n", ui.Key.Render(fmt.Sprintf("#%-4d", item.ID)), ui.ShopLine(item))
				}
				fmt.Fprintln(out, ui.Muted.Render("Buy with `codepet buy <id>`"))
				return nil
			})
		},
	}
}

func newBuyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <shop-id>",
		Short: "Buy a shop item",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])
			return runAction(cmd, opts, func(p *pet.Pet) (pet.Action, error) {
				item, ok := pet.FindShopItem(*p, id)
				if !ok {
					return pet.Action{}, fmt.Errorf("shop item %d: %w", id, pet.ErrInvalidReference)
				}
				return pet.Buy(item), nil
			})
		},
	}
}
