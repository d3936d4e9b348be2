package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"codepet/internal/config"
	"codepet/internal/logger"
	"codepet/internal/pet"
	"codepet/internal/storage"
	"codepet/internal/ui"
)

// session is one opened pet: config, backend and the game over it
type session struct {
	cfg     *config.Config
	store   storage.Store
	game    *pet.Game
	startup pet.Result
}

// loadConfig reads the config file and applies the persistent flags on top
func (o *rootOptions) loadConfig() (*config.Config, string, error) {
	path := o.configPath
	if path == "" && o.dataDir != "" {
		path = config.Path(o.dataDir)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if o.store != "" {
		cfg.Store.Backend = o.store
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	if path == "" {
		path = config.Path(cfg.DataDir)
	}
	return cfg, path, nil
}

// openSession loads config, routes logs to the data dir and opens the game.
// The cleanup closes everything in reverse order.
func openSession(cmd *cobra.Command, opts *rootOptions) (*session, func(), error) {
	cfg, _, err := opts.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	var logFile *os.File
	if path := cfg.LogPath(); path != "" {
		// the game screen owns stdout, and plain output stays clean
		if logFile, err = logger.OpenFile(path); err != nil {
			return nil, nil, err
		}
	}
	closeLog := func() {
		if logFile != nil {
			logger.SetOutput(os.Stderr)
			_ = logFile.Close()
		}
	}

	store, err := storage.Open(cmd.Context(), cfg.Store.Backend, cfg.DataDir)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	store = storage.WithKey(store, cfg.Store.Key)

	game, startup, err := pet.Open(cmd.Context(), store, pet.WithNewPetName(cfg.PetName))
	if err != nil {
		_ = store.Close()
		closeLog()
		return nil, nil, err
	}
	logger.Debug("session opened", "backend", cfg.Store.Backend, "data_dir", cfg.DataDir)

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
		closeLog()
	}
	return &session{cfg: cfg, store: store, game: game, startup: startup}, cleanup, nil
}

// withSession opens the pet, prints anything the daily rollover announced, then runs fn
func withSession(cmd *cobra.Command, opts *rootOptions, fn func(*session) error) error {
	s, cleanup, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	printResult(cmd.OutOrStdout(), s.startup)
	return fn(s)
}

// runAction applies one action immediately and prints its outcome
func runAction(cmd *cobra.Command, opts *rootOptions, action func(*pet.Pet) (pet.Action, error)) error {
	return withSession(cmd, opts, func(s *session) error {
		snapshot := s.game.Snapshot()
		a, err := action(&snapshot)
		if err != nil {
			return err
		}
		res, err := s.game.Run(cmd.Context(), a)
		printResult(cmd.OutOrStdout(), res)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), statusLine(s.game.Snapshot()))
		return nil
	})
}

// fixed wraps an action that needs nothing from the snapshot
func fixed(a pet.Action) func(*pet.Pet) (pet.Action, error) {
	return func(*pet.Pet) (pet.Action, error) { return a, nil }
}

// printResult writes notifications and rewards. Errors are left to the caller,
// which returns them to Execute.
func printResult(w io.Writer, res pet.Result) {
	for _, n := range res.Notifications {
		if n.Kind == pet.NoteError {
			continue
		}
		fmt.Fprintln(w, ui.Note(n))
	}
	for _, r := range res.Rewards {
		fmt.Fprintln(w, ui.RewardText(r))
	}
}

// statusLine is the one-line summary printed after every action
func statusLine(p pet.Pet) string {
	return ui.Muted.Render(fmt.Sprintf("%s Lv.%d %s/%d XP • ⚡%.0f ❤️%.0f 😊%.0f 🧠%.0f • %s%d • %s",
		p.GetFormEmoji(), p.Level, p.ExperienceDisplay(), pet.XPThreshold(p.Level),
		p.Energy, p.Health, p.Happiness, p.Intelligence, ui.IconCoin, p.Coins, pet.GetStatus(p)))
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, fmt.Errorf("id %q must be an integer: %w", s, pet.ErrInvalidInput)
	}
	return id, nil
}

// oneID is a cobra Args validator for a single integer id
func oneID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s needs exactly one id", cmd.Name())
	}
	_, err := parseID(args[0])
	return err
}
