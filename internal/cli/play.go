package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/thruflo/streak/internal/config"
	"github.com/thruflo/streak/internal/game"
	"github.com/thruflo/streak/internal/logging"
)

var (
	playSeed    int64
	playVerbose bool
	playNoColor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game session",
	Long: `Starts an interactive game session on the terminal.

The game reads answers line by line from standard input. A session runs
until you win five rounds in a row, fail a round, or answer "no" to the
replay prompt.

Display settings (color, streak bar width) can be set in a .streak.yaml
file in the working directory.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed for a reproducible session (0 picks one)")
	playCmd.Flags().BoolVarP(&playVerbose, "verbose", "v", false, "enable debug logging on stderr")
	playCmd.Flags().BoolVar(&playNoColor, "no-color", false, "disable ANSI colors")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if playVerbose {
		logging.SetLevel(logging.LevelDebug)
	}
	log := logging.With("session", uuid.NewString())
	log.Debug("session starting", "seed", playSeed, "bar_width", cfg.UI.BarWidth)

	g := game.New(game.Options{
		Input:    cmd.InOrStdin(),
		Output:   cmd.OutOrStdout(),
		Rand:     game.NewSource(playSeed),
		Log:      log,
		Color:    !cfg.UI.NoColor && !playNoColor,
		BarWidth: cfg.UI.BarWidth,
	})

	result, err := g.Run()
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Debug("session finished",
		"reason", result.Reason,
		"rounds", result.Rounds,
		"score", result.Session.Score,
		"attempts", result.Session.TotalAttempts,
	)
	return nil
}
