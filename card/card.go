// Package card defines the playing-card value type, deck construction, and
// shuffling for Klondike.
package card

import (
	"fmt"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Suit is one of the four card suits.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of distinct suits.
const NumSuits = 4

// Color is the suit color; red for hearts/diamonds, black for clubs/spades.
type Color uint8

const (
	Red Color = iota
	Black
)

func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Rank is a card rank, 1 (Ace) through 13 (King).
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return fmt.Sprintf("%d", uint8(r))
}

// Card is a value object. Moving a card between board regions copies it;
// cards are never shared by reference. Revealed is only meaningful for cards
// sitting in a tableau column.
type Card struct {
	Rank     Rank
	Suit     Suit
	Revealed bool
}

func (c Card) Color() Color {
	return c.Suit.Color()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// NewDeck returns all 52 cards, face down, in suit-major order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Hearts; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle permutes the deck in place.
func Shuffle(deck []Card) {
	frand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// DealID digests a deck order into a stable identifier for log correlation.
// Reveal flags are ignored; two deals with the same card order get the same ID.
func DealID(deck []Card) uint64 {
	buf := make([]byte, 0, len(deck)*2)
	for _, c := range deck {
		buf = append(buf, byte(c.Rank), byte(c.Suit))
	}
	return xxhash.Sum64(buf)
}
