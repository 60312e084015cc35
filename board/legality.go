package board

import "github.com/domino14/klondike/card"

// Pure placement predicates. These never mutate anything; the solver and the
// interactive shell share them.

// CanStack reports whether c may be placed on top of dest in a tableau
// column: colors must differ and c must be exactly one rank lower.
func CanStack(c, dest card.Card) bool {
	return c.Color() != dest.Color() && c.Rank+1 == dest.Rank
}

// CanPlaceOnFoundation reports whether c may be placed on its foundation:
// an Ace on an empty pile, otherwise exactly one rank above the current top.
// Foundations are per-suit, so the suit check is against the pile index.
func (b *Board) CanPlaceOnFoundation(c card.Card) bool {
	f := b.Foundations[c.Suit]
	if len(f) == 0 {
		return c.Rank == card.Ace
	}
	return int(c.Rank) == len(f)+1
}

// CanPlaceOnColumn reports whether c may be placed on top of the given
// column: any King on an empty column, otherwise CanStack against the top.
func (b *Board) CanPlaceOnColumn(c card.Card, col int) bool {
	top, ok := b.ColumnTop(col)
	if !ok {
		return c.Rank == card.King
	}
	return CanStack(c, top)
}

// IsValidRun reports whether the suffix of a column starting at row is a
// contiguous descending, alternating-color revealed sequence.
func (b *Board) IsValidRun(col, row int) bool {
	cards := b.Columns[col]
	if row < 0 || row >= len(cards) || !cards[row].Revealed {
		return false
	}
	for i := row; i < len(cards)-1; i++ {
		if !CanStack(cards[i+1], cards[i]) {
			return false
		}
	}
	return true
}

// CanMoveRun reports whether the run starting at row in column from may be
// relocated onto column to.
func (b *Board) CanMoveRun(from, row, to int) bool {
	if from == to {
		return false
	}
	if !b.IsValidRun(from, row) {
		return false
	}
	return b.CanPlaceOnColumn(b.Columns[from][row], to)
}
