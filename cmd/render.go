package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/deckhand/deckhand/internal/deck"

	"github.com/fatih/color"
)

var (
	redSuit   = color.New(color.FgRed)
	blackSuit = color.New(color.FgWhite, color.Bold)
)

// cardColor picks the traditional suit color for a card label
func cardColor(c deck.Card) *color.Color {
	label := string(c)
	if strings.HasSuffix(label, "Hearts") || strings.HasSuffix(label, "Diamonds") {
		return redSuit
	}
	return blackSuit
}

// printDeck prints the cards of a deck in columns sized to the terminal
func printDeck(d deck.Deck) {
	if len(d) == 0 {
		fmt.Println("(empty deck)")
		return
	}

	// Column width fits the longest label plus padding
	cardWidth := 0
	for _, c := range d {
		if len(c) > cardWidth {
			cardWidth = len(c)
		}
	}
	cardWidth += 2

	columns := 1
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > cardWidth {
		columns = width / cardWidth
	}

	for i, c := range d {
		cardColor(c).Printf("%-*s", cardWidth, string(c))
		if (i+1)%columns == 0 || i == len(d)-1 {
			fmt.Println()
		}
	}
}
