package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "streak",
	Short: "Console number-guessing game",
	Long: `Streak is a console number-guessing game. Each round the game picks
a number between 1 and 10 and you get three guesses with higher/lower
hints. Win five rounds in a row to become the champion; lose a single
round and the session is over.`,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("streak version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
