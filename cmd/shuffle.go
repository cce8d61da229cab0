package cmd

import (
	"fmt"

	"github.com/deckhand/deckhand/internal/config"
	"github.com/deckhand/deckhand/internal/deck"
	"github.com/spf13/cobra"
)

// shuffleCmd represents the shuffle command
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle a fresh deck, printing it or saving it to the library",
	Run: func(cmd *cobra.Command, args []string) {
		shuffled := deck.New().Shuffle()

		saveName, _ := cmd.Flags().GetString("save")
		if saveName == "" {
			printDeck(shuffled)
			return
		}

		savePath, err := config.SavePath(saveName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := shuffled.Save(savePath); err != nil {
			fmt.Printf("Error saving deck: %v\n", err)
			return
		}

		fmt.Printf("Shuffled deck saved to: %s\n", savePath)
	},
}

func init() {
	shuffleCmd.Flags().String("save", "", "save the shuffled deck under this name instead of printing it")
	RootCmd.AddCommand(shuffleCmd)
}
