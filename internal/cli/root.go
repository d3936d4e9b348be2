// Package cli wires the codepet commands to the game engine.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"codepet/internal/ui"
)

const Version = "0.1.0"

type rootOptions struct {
	dataDir    string
	configPath string
	store      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "codepet",
		Short: "A virtual pet that grows while you code",
		Long: "codepet keeps a small companion in your terminal. Code sessions earn it XP and coins,\n" +
			"breaks and snacks keep it healthy, and it evolves as it levels up.\n\n" +
			"Without a subcommand codepet opens the game screen, or prints the status card\n" +
			"when stdout is not a terminal.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(cmd.OutOrStdout()) {
				return runGame(cmd, opts)
			}
			return runStatus(cmd, opts, false)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory holding the pet, config and log (default ~/.config/codepet)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default <data-dir>/config.json)")
	flags.StringVar(&opts.store, "store", "", "snapshot backend: file or sqlite")

	cmd.AddCommand(newStatusCmd(opts))
	cmd.AddCommand(newActionCmds(opts)...)
	cmd.AddCommand(
		newPlayCmd(opts),
		newShopCmd(opts),
		newBuyCmd(opts),
		newInventoryCmd(opts),
		newUseCmd(opts),
		newSellCmd(opts),
		newTasksCmd(opts),
		newCollectionCmd(opts),
		newTrophiesCmd(opts),
		newTradeCmd(opts),
		newNameCmd(opts),
		newCustomizeCmd(opts),
		newResetCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	root := newRootCmd()
	root.Version = Version
	root.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runGame(cmd *cobra.Command, opts *rootOptions) error {
	s, cleanup, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	decay, err := s.cfg.DecayInterval()
	if err != nil {
		return err
	}
	idle, err := s.cfg.IdleInterval()
	if err != nil {
		return err
	}
	return ui.Run(cmd.Context(), s.game, ui.Options{DecayInterval: decay, IdleInterval: idle}, s.startup)
}
