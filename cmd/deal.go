package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/deckhand/deckhand/internal/config"
	"github.com/deckhand/deckhand/internal/deck"
	"github.com/spf13/cobra"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal [hand_size]",
	Short: "Deal a hand from a saved deck or a freshly shuffled one",
	Long: `Deal splits a deck into a hand and the rest of the deck.

With --from, the deck is loaded from your deck library (or a literal path);
otherwise a fresh deck is shuffled first. The hand size defaults to the
default_hand_size from your config. Sizes beyond the deck are clamped.

Examples:
  deckhand deal 5
  deckhand deal 3 --from evening-game
  deckhand deal 3 --from evening-game --save evening-game`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handSize, err := config.GetDefaultHandSize()
		if err != nil {
			return fmt.Errorf("error reading config: %v", err)
		}
		if len(args) == 1 {
			handSize, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hand size: %s", args[0])
			}
		}

		fromName, _ := cmd.Flags().GetString("from")

		var d deck.Deck
		if fromName == "" {
			d = deck.New().Shuffle()
		} else {
			deckPath, err := config.GetDeckPath(fromName)
			if err != nil {
				return err
			}
			d, err = deck.Load(deckPath)
			if errors.Is(err, deck.ErrNotFound) {
				return fmt.Errorf("deck file does not exist: %s", deckPath)
			}
			if err != nil {
				return err
			}
		}

		hand, rest := d.Deal(handSize)
		printDeck(hand)
		fmt.Printf("%d cards remain in the deck.\n", len(rest))

		saveName, _ := cmd.Flags().GetString("save")
		if saveName != "" {
			savePath, err := config.SavePath(saveName)
			if err != nil {
				return err
			}
			if err := rest.Save(savePath); err != nil {
				return fmt.Errorf("error saving rest of deck: %v", err)
			}
			fmt.Printf("Rest of deck saved to: %s\n", savePath)
		}

		return nil
	},
}

func init() {
	dealCmd.Flags().String("from", "", "deal from this saved deck instead of a fresh shuffle")
	dealCmd.Flags().String("save", "", "save the rest of the deck under this name after dealing")
	RootCmd.AddCommand(dealCmd)
}
