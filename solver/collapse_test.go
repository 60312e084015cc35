package solver

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/card"
)

func TestCollapseToFixedPoint(t *testing.T) {
	is := is.New(t)
	b := &board.Board{Mode: board.ModeNormal}
	// A♠ exposed over 2♠: both collapse in sequence.
	b.Columns[0] = []card.Card{
		{Rank: 2, Suit: card.Spades},
		{Rank: card.Ace, Suit: card.Spades, Revealed: true},
	}
	b.Waste = []card.Card{{Rank: card.Ace, Suit: card.Hearts, Revealed: true}}

	is.True(Collapse(b))
	is.Equal(len(b.Foundations[card.Spades]), 2)
	is.Equal(len(b.Foundations[card.Hearts]), 1)
	is.Equal(len(b.Columns[0]), 0)
	is.Equal(len(b.Waste), 0)

	// second call: nothing left to do
	is.True(!Collapse(b))
}

func TestCollapseStopsAtUnsafePush(t *testing.T) {
	is := is.New(t)
	b := &board.Board{Mode: board.ModeNormal}
	for r := card.Ace; r <= 4; r++ {
		b.Foundations[card.Hearts] = append(b.Foundations[card.Hearts],
			card.Card{Rank: r, Suit: card.Hearts})
	}
	// 5♥ is legal but unsafe with empty black foundations
	b.Columns[0] = []card.Card{{Rank: 5, Suit: card.Hearts, Revealed: true}}
	is.True(!Collapse(b))
	is.Equal(len(b.Columns[0]), 1)
}

func TestCollapseSkipsFaceDownTops(t *testing.T) {
	is := is.New(t)
	b := &board.Board{Mode: board.ModeNormal}
	b.Columns[0] = []card.Card{{Rank: card.Ace, Suit: card.Clubs}} // face down
	is.True(!Collapse(b))
	is.Equal(len(b.Foundations[card.Clubs]), 0)
}
