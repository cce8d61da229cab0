package cmd

import (
	"errors"
	"fmt"

	"github.com/deckhand/deckhand/internal/config"
	"github.com/deckhand/deckhand/internal/deck"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [deck_name]",
	Short: "Display a saved deck",
	Long: `Show loads a saved deck and prints its cards in order.

The deck name is looked up in your deck library (XDG_DATA_HOME/deckhand/decks)
or treated as a literal file path.

Examples:
  deckhand show evening-game
  deckhand show ./table.deck`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, err := config.GetDeckPath(args[0])
		if err != nil {
			return err
		}

		d, err := deck.Load(deckPath)
		if errors.Is(err, deck.ErrNotFound) {
			return fmt.Errorf("deck file does not exist: %s", deckPath)
		}
		if err != nil {
			return err
		}

		printDeck(d)
		fmt.Printf("%d cards.\n", len(d))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
