package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codepet/internal/pet"
	"codepet/internal/ui"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var card bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your pet's stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts, card)
		},
	}
	cmd.Flags().BoolVar(&card, "card", false, "show the status card full screen")
	return cmd
}

func runStatus(cmd *cobra.Command, opts *rootOptions, card bool) error {
	return withSession(cmd, opts, func(s *session) error {
		p := s.game.Snapshot()
		if card && isTerminal(cmd.OutOrStdout()) {
			return ui.DisplayStats(p)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.RenderCard(p))
		fmt.Fprintln(out, ui.LabelValue("Customizations", fmt.Sprintf("color %s, accessory %s, background %s",
			p.Customizations.Color, p.Customizations.Accessory, p.Customizations.Background)))
		fmt.Fprintln(out, ui.LabelValue("Code sessions", p.CodeSessions))
		if pending := len(p.PendingOffers()); pending > 0 {
			fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s %d trade offer(s) waiting, see `codepet trade list`", ui.IconTrade, pending)))
		}
		if !p.AllDailyTasksDone() {
			fmt.Fprintln(out, ui.Muted.Render("Daily tasks "+p.DailyProgress()+", see `codepet tasks`"))
		}
		return nil
	})
}

func newTasksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List today's daily tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTasks(s.game.Snapshot()))
				return nil
			})
		},
	}
}

func newTrophiesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trophies",
		Short: "List achievements, trophies and skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTrophies(s.game.Snapshot()))
				return nil
			})
		},
	}
}

func newCollectionCmd(opts *rootOptions) *cobra.Command {
	var ownedOnly bool
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "List collectibles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconGem, "Collection"))
				for _, c := range s.game.Snapshot().Collectibles {
					if ownedOnly && !c.Owned {
						continue
					}
					fmt.Fprintln(out, ui.CollectibleLine(c))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&ownedOnly, "owned", false, "only list collectibles you own")
	return cmd
}

// collectibleSummary is used by trade output
func collectibleSummary(p pet.Pet) (owned, total int) {
	for _, c := range p.Collectibles {
		if c.Owned {
			owned++
		}
	}
	return owned, len(p.Collectibles)
}
