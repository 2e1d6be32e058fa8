package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word list statistics",
	Args:  cobra.NoArgs,
	RunE:  runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	bank, err := loadBank()
	if err != nil {
		return err
	}
	answers, allowed := bank.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "answers: %d\nallowed guesses: %d\n", answers, allowed)
	return nil
}
