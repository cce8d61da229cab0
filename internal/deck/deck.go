package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/fxamacker/cbor/v2"
)

// Card is a single playing-card label (e.g., "Ace of Spades")
type Card string

// Deck represents an ordered sequence of cards
type Deck []Card

// Hand is the dealt prefix of a deck
type Hand = Deck

// ErrNotFound is returned by Load whenever the deck file cannot be read,
// regardless of the underlying cause
var ErrNotFound = errors.New("deck file does not exist")

var (
	suits  = []string{"Spades", "Clubs", "Hearts", "Diamonds"}
	values = []string{"Ace", "Two", "Three", "Four", "Five"}
)

// New builds the standard deck: every value of every suit, suits in fixed
// order, values in fixed order within each suit. Deterministic across calls.
func New() Deck {
	cards := make(Deck, 0, len(suits)*len(values))
	for _, suit := range suits {
		for _, value := range values {
			cards = append(cards, Card(value+" of "+suit))
		}
	}
	return cards
}

// Rand is the source of randomness consumed by ShuffleWith.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Shuffle returns a random permutation of the deck drawn from the
// process-wide random source. The receiver is left untouched.
func (d Deck) Shuffle() Deck {
	return d.ShuffleWith(defaultSource{})
}

// ShuffleWith shuffles using a caller-supplied source, so tests can
// substitute a seeded generator
func (d Deck) ShuffleWith(r Rand) Deck {
	shuffled := slices.Clone(d)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// Contains reports whether card appears in the deck, by exact string match
func (d Deck) Contains(card Card) bool {
	return slices.Contains(d, card)
}

// Deal splits the deck into a hand of at most handSize cards and the rest
// of the deck, preserving order in both parts. Out-of-range sizes clamp
// rather than error: a non-positive size deals an empty hand, a size past
// the end deals the whole deck.
func (d Deck) Deal(handSize int) (Hand, Deck) {
	if handSize < 0 {
		handSize = 0
	}
	if handSize > len(d) {
		handSize = len(d)
	}
	return d[:handSize], d[handSize:]
}

// Save encodes the deck as CBOR and writes it to filename, overwriting
// any existing file at that path
func (d Deck) Save(filename string) error {
	data, err := cbor.Marshal(d)
	if err != nil {
		return fmt.Errorf("error encoding deck: %v", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("error writing deck to %s: %w", filename, err)
	}
	return nil
}

// Load reads the deck saved at filename. Every read failure collapses into
// ErrNotFound; a file that reads fine but does not decode as a deck gets a
// distinct error so callers can tell corruption apart from absence.
func Load(filename string) (Deck, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, ErrNotFound
	}
	var d Deck
	if err := cbor.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("error decoding deck from %s: %w", filename, err)
	}
	return d, nil
}

// NewHand shuffles a fresh deck and deals a hand of handSize from it,
// returning the hand and the rest of the deck
func NewHand(handSize int) (Hand, Deck) {
	return New().Shuffle().Deal(handSize)
}
