package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/card"
	"github.com/domino14/klondike/move"
)

func foundationTo(b *board.Board, suit card.Suit, rank card.Rank) {
	for r := card.Ace; r <= rank; r++ {
		b.Foundations[suit] = append(b.Foundations[suit], card.Card{Rank: r, Suit: suit})
	}
}

func TestSafePushLowRanksAlwaysSafe(t *testing.T) {
	is := is.New(t)
	b := &board.Board{Mode: board.ModeNormal}
	for s := card.Hearts; s <= card.Spades; s++ {
		is.True(IsSafePush(b, card.Card{Rank: card.Ace, Suit: s}))
		is.True(IsSafePush(b, card.Card{Rank: 2, Suit: s}))
	}
}

func TestSafePushOppositeColorRule(t *testing.T) {
	is := is.New(t)
	b := &board.Board{Mode: board.ModeNormal}
	// red 5 needs black foundations at 4+
	is.True(!IsSafePush(b, card.Card{Rank: 5, Suit: card.Hearts}))
	foundationTo(b, card.Spades, 3)
	is.True(!IsSafePush(b, card.Card{Rank: 5, Suit: card.Hearts}))
	foundationTo(b, card.Clubs, 4)
	is.True(IsSafePush(b, card.Card{Rank: 5, Suit: card.Hearts}))
	// the black 5 looks at red foundations, still too low
	is.True(!IsSafePush(b, card.Card{Rank: 5, Suit: card.Spades}))
}

func TestGenAllPriorityOrder(t *testing.T) {
	is := is.New(t)
	b := &board.Board{Mode: board.ModeNormal}
	b.Columns[0] = []card.Card{{Rank: card.Ace, Suit: card.Hearts, Revealed: true}}
	b.Columns[1] = []card.Card{{Rank: 7, Suit: card.Spades, Revealed: true}}
	b.Columns[2] = []card.Card{{Rank: 8, Suit: card.Hearts, Revealed: true}}
	b.Columns[3] = []card.Card{{Rank: 8, Suit: card.Spades, Revealed: true}}
	b.Waste = []card.Card{{Rank: 7, Suit: card.Diamonds, Revealed: true}}
	b.Stock = []card.Card{{Rank: card.King, Suit: card.Clubs, Revealed: true}}

	moves := GenAll(b)
	is.True(len(moves) >= 4)
	is.Equal(moves[0].Kind, move.FoundationPush) // A♥ first
	is.Equal(moves[0].From, 0)

	kinds := make([]move.Kind, 0, len(moves))
	for _, m := range moves {
		kinds = append(kinds, m.Kind)
	}
	// fixed category order: pushes, column moves, waste placements, stock
	last := kinds[0]
	for _, k := range kinds[1:] {
		is.True(k >= last)
		last = k
	}
	is.Equal(kinds[len(kinds)-1], move.DrawStock)
}

func TestStockMovesDrawVsRecycle(t *testing.T) {
	is := is.New(t)
	b := &board.Board{Mode: board.ModeEasy}
	b.Waste = []card.Card{{Rank: 4, Suit: card.Clubs, Revealed: true}}
	moves := StockMoves(b)
	is.Equal(len(moves), 1)
	is.Equal(moves[0].Kind, move.RecycleWaste)

	b.Mode = board.ModeNormal
	is.Equal(len(StockMoves(b)), 0) // no recycling outside easy

	b.Stock = []card.Card{{Rank: 9, Suit: card.Hearts, Revealed: true}}
	moves = StockMoves(b)
	is.Equal(len(moves), 1)
	is.Equal(moves[0].Kind, move.DrawStock)
}

func TestHasProgressMoveDeadLeaf(t *testing.T) {
	is := is.New(t)
	// Two stranded black cards, nothing to draw, no recycling.
	b := &board.Board{Mode: board.ModeNormal}
	b.Columns[0] = []card.Card{{Rank: 4, Suit: card.Spades, Revealed: true}}
	b.Columns[1] = []card.Card{{Rank: 6, Suit: card.Clubs, Revealed: true}}

	is.True(!HasSafePush(b))
	is.True(!HasColumnMove(b))
	is.True(!HasWastePlacement(b))
	is.True(!HasProgressMove(b))

	// easy mode with waste can always recycle
	b.Mode = board.ModeEasy
	b.Waste = []card.Card{{Rank: 9, Suit: card.Hearts, Revealed: true}}
	is.True(HasProgressMove(b))
}

func TestFoundationPushesSkipUnsafe(t *testing.T) {
	is := is.New(t)
	b := &board.Board{Mode: board.ModeNormal}
	foundationTo(b, card.Hearts, 4)
	// 5♥ is legal on the foundation but unsafe: black banked nothing.
	b.Columns[0] = []card.Card{{Rank: 5, Suit: card.Hearts, Revealed: true}}
	is.Equal(len(FoundationPushes(b)), 0)

	foundationTo(b, card.Spades, 4)
	foundationTo(b, card.Clubs, 4)
	pushes := FoundationPushes(b)
	is.Equal(len(pushes), 1)
	is.Equal(pushes[0], move.Move{Kind: move.FoundationPush, From: 0})
}

func TestColumnMovesEnumerateSplits(t *testing.T) {
	is := is.New(t)
	b := &board.Board{Mode: board.ModeNormal}
	b.Columns[0] = []card.Card{
		{Rank: 9, Suit: card.Spades, Revealed: true},
		{Rank: 8, Suit: card.Hearts, Revealed: true},
	}
	b.Columns[1] = []card.Card{{Rank: 10, Suit: card.Diamonds, Revealed: true}}
	b.Columns[2] = []card.Card{{Rank: 9, Suit: card.Clubs, Revealed: true}}

	moves := ColumnMoves(b)
	// 9♠8♥ onto 10♦, 8♥ alone onto 9♣, and 9♣ onto 10♦
	is.Equal(len(moves), 3)
	is.Equal(moves[0], move.Move{Kind: move.ColumnMove, From: 0, Row: 0, To: 1})
	is.Equal(moves[1], move.Move{Kind: move.ColumnMove, From: 0, Row: 1, To: 2})
	is.Equal(moves[2], move.Move{Kind: move.ColumnMove, From: 2, Row: 0, To: 1})
}
