package cli

import (
	"github.com/spf13/cobra"

	"github.com/mpatters/wordgrid/internal/tui"
)

var playTheme string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Starts an interactive game on the current terminal.

Type letters to fill the active row, BACKSPACE to erase, ENTER to
submit a guess. After the game ends, ENTER starts a new one and ESC
quits.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playTheme, "theme", "", "color theme: dark or light (overrides config)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	bank, err := loadBank()
	if err != nil {
		return err
	}
	theme := cfg.Theme
	if playTheme != "" {
		theme = playTheme
	}
	app := tui.NewApp(bank, tui.ThemeByName(theme))
	return app.Run(cmd.Context())
}
