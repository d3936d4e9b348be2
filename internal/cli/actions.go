package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codepet/internal/chase"
	"codepet/internal/logger"
	"codepet/internal/pet"
)

var careActions = []struct {
	use    string
	short  string
	action func() pet.Action
}{
	{"code", "Run a coding session for XP, coins and maybe loot", pet.CodeSession},
	{"break", "Take a break to restore energy and happiness", pet.Break},
	{"sleep", "Let your pet sleep to restore energy and health", pet.Sleep},
	{"train", "Train your pet's intelligence", pet.Train},
	{"pet", "Give your pet a cuddle", pet.Cuddle},
	{"feed", "Feed your pet", pet.Feed},
	{"trick", "Ask your pet to perform a trick", pet.Trick},
}

func newActionCmds(opts *rootOptions) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(careActions))
	for _, ca := range careActions {
		action := ca.action
		cmds = append(cmds, &cobra.Command{
			Use:   ca.use,
			Short: ca.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, opts, fixed(action()))
			},
		})
	}
	return cmds
}

func newPlayCmd(opts *rootOptions) *cobra.Command {
	var (
		watch  bool
		target string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play with your pet",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := chase.Targets[target]; !ok {
				return fmt.Errorf("unknown chase target %q: %w", target, pet.ErrInvalidInput)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runAction(cmd, opts, fixed(pet.Play())); err != nil {
				return err
			}
			if !watch || !isTerminal(cmd.OutOrStdout()) {
				return nil
			}
			return watchChase(cmd, opts, chase.Targets[target])
		},
	}
	cmd.Flags().BoolVar(&watch, "chase", false, "watch your pet chase something afterwards")
	cmd.Flags().StringVar(&target, "target", chase.DefaultTarget, "what to chase: bug, butterfly, ball or mouse")
	return cmd
}

func watchChase(cmd *cobra.Command, opts *rootOptions, target chase.Target) error {
	return withSession(cmd, opts, func(s *session) error {
		caught, err := chase.Run(s.game.Snapshot(), target)
		if err != nil {
			logger.Error("chase stopped", "error", err)
			return err
		}
		if caught {
			fmt.Fprintf(cmd.OutOrStdout(), "%s caught the %s!\n", s.game.Snapshot().Name, target.Name)
		}
		return nil
	})
}
