package cmd

import (
	"github.com/deckhand/deckhand/internal/deck"
	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Print a fresh, unshuffled deck",
	Run: func(cmd *cobra.Command, args []string) {
		printDeck(deck.New())
	},
}

func init() {
	RootCmd.AddCommand(newCmd)
}
