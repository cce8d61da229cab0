package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deckhand/deckhand/internal/config"
	"github.com/deckhand/deckhand/internal/deck"
	"github.com/spf13/cobra"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved decks in your deck library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Deck library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'deckhand shuffle --save <name>' to create your first saved deck.")
			return
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			fmt.Printf("Error reading deck library: %v\n", err)
			return
		}

		if len(entries) == 0 {
			fmt.Println("No decks found in your deck library.")
			fmt.Println("You can add decks with 'deckhand shuffle --save <name>'.")
			return
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			d, err := deck.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid deck, skip
				continue
			}

			fmt.Printf("  %s (%d cards)\n", entry.Name(), len(d))
		}
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)
}
