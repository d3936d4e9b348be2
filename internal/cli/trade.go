package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"codepet/internal/pet"
	"codepet/internal/ui"
)

func newTradeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade collectibles with other collectors",
	}
	cmd.AddCommand(
		newTradeListCmd(opts),
		newTradeCreateCmd(opts),
		newTradeRespondCmd(opts, "accept", pet.Accept),
		newTradeRespondCmd(opts, "reject", pet.Reject),
		newTradeAnswerCmd(opts),
		newTradeCancelCmd(opts),
	)
	return cmd
}

func newTradeListCmd(opts *rootOptions) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trade offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				p := s.game.Snapshot()
				out := cmd.OutOrStdout()
				owned, total := collectibleSummary(p)
				fmt.Fprintln(out, ui.Heading(ui.IconTrade, "Trades")+"  "+ui.Muted.Render(fmt.Sprintf("%d/%d collectibles owned", owned, total)))
				shown := 0
				for _, o := range p.TradeOffers {
					if !all && o.Status != pet.TradePending {
						continue
					}
					shown++
					fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render(shortID(o.ID)), ui.TradeLine(o),
						ui.Muted.Render("expires "+o.ExpiresAt.Local().Format("Jan 2 15:04")))
				}
				if shown == 0 {
					fmt.Fprintln(out, ui.Muted.Render("No trade offers."))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include answered and expired offers")
	return cmd
}

func newTradeCreateCmd(opts *rootOptions) *cobra.Command {
	var give, want []int
	cmd := &cobra.Command{
		Use:   "create --give <ids> --want <ids>",
		Short: "Offer owned collectibles for ones you want",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				id, res, err := s.game.CreateTradeOffer(cmd.Context(), give, want)
				printResult(cmd.OutOrStdout(), res)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Offer", shortID(id)))
				return nil
			})
		},
	}
	cmd.Flags().IntSliceVar(&give, "give", nil, "collectible ids you give")
	cmd.Flags().IntSliceVar(&want, "want", nil, "collectible ids you want")
	return cmd
}

func newTradeRespondCmd(opts *rootOptions, use string, decision pet.TradeDecision) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <offer-id>",
		Short: strings.ToUpper(use[:1]) + use[1:] + " a pending offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, func(p *pet.Pet) (pet.Action, error) {
				id, err := resolveOffer(*p, args[0])
				if err != nil {
					return pet.Action{}, err
				}
				return pet.RespondToTrade(id, decision), nil
			})
		},
	}
}

func newTradeAnswerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "respond <offer-id> <accept|reject>",
		Short: "Answer a pending offer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			decision, err := pet.ParseTradeDecision(args[1])
			if err != nil {
				return err
			}
			return runAction(cmd, opts, func(p *pet.Pet) (pet.Action, error) {
				id, err := resolveOffer(*p, args[0])
				if err != nil {
					return pet.Action{}, err
				}
				return pet.RespondToTrade(id, decision), nil
			})
		},
	}
}

func newTradeCancelCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <offer-id>",
		Short: "Withdraw a pending offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, func(p *pet.Pet) (pet.Action, error) {
				id, err := resolveOffer(*p, args[0])
				if err != nil {
					return pet.Action{}, err
				}
				return pet.CancelTrade(id), nil
			})
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveOffer expands a unique id prefix to the full offer id
func resolveOffer(p pet.Pet, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("offer id cannot be empty: %w", pet.ErrInvalidInput)
	}
	var match string
	for _, o := range p.TradeOffers {
		if !strings.HasPrefix(o.ID, prefix) {
			continue
		}
		if o.ID == prefix {
			return o.ID, nil
		}
		if match != "" {
			return "", fmt.Errorf("offer id %q is ambiguous: %w", prefix, pet.ErrInvalidInput)
		}
		match = o.ID
	}
	if match == "" {
		return "", fmt.Errorf("trade offer %q: %w", prefix, pet.ErrInvalidReference)
	}
	return match, nil
}
