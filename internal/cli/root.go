// Command-line entry points.
//
// Responsibilities:
//   - Define the root "wordgrid" command; running it bare starts the
//     interactive terminal game.
//   - Load configuration and set the global log level before any
//     subcommand runs.
//   - Build the word bank shared by every subcommand.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mpatters/wordgrid/internal/config"
	"github.com/mpatters/wordgrid/internal/words"
)

// Version is set at build time via ldflags.
var Version = "dev"

// cfg is loaded once in the root PersistentPreRunE and shared by
// subcommands.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wordgrid",
	Short: "A five-letter word guessing game for your terminal",
	Long: `Wordgrid is a word guessing game: six tries to find a five-letter
word, with color feedback after each guess.

Run it bare to play in your terminal, or use "serve" to host the
HTTP API with accounts, stats, and a daily challenge.`,
	RunE: runPlay,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
		return nil
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("wordgrid version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadBank builds the word bank from the configured list files, falling
// back to the embedded lists.
func loadBank() (*words.Bank, error) {
	return words.Load(cfg.AnswersFile, cfg.AllowedFile)
}
