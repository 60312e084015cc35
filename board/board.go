// Package board holds the canonical representation of a Klondike position:
// seven tableau columns, a stock, a waste pile, and four per-suit foundations.
// It also owns the pure legality predicates and the apply functions that
// mutate a position. Search copies a board before applying anything; the
// board itself never enforces run invariants eagerly.
package board

import (
	"github.com/domino14/klondike/card"
)

const (
	// NumColumns is the number of tableau columns.
	NumColumns = 7
	// NumFoundations is the number of foundation piles, one per suit.
	NumFoundations = 4
	// FoundationComplete is the size of a finished foundation (Ace..King).
	FoundationComplete = 13
)

// Mode controls stock draw count and recycle permission.
type Mode uint8

const (
	// ModeEasy draws 1 card and allows recycling the waste into the stock.
	ModeEasy Mode = iota + 1
	// ModeNormal draws 1 card, no recycling.
	ModeNormal
	// ModeHard draws 3 cards, no recycling.
	ModeHard
)

func (m Mode) DrawCount() int {
	if m == ModeHard {
		return 3
	}
	return 1
}

func (m Mode) Recycles() bool {
	return m == ModeEasy
}

func (m Mode) String() string {
	switch m {
	case ModeEasy:
		return "easy"
	case ModeNormal:
		return "normal"
	case ModeHard:
		return "hard"
	}
	return "unknown"
}

// Board is one Klondike position. All pile slices store cards bottom-to-top;
// the top of a pile is the last element. Foundations are indexed by suit.
type Board struct {
	Columns     [NumColumns][]card.Card
	Stock       []card.Card
	Waste       []card.Card
	Foundations [NumFoundations][]card.Card
	Mode        Mode
}

// Deal lays out a shuffled deck into a fresh board: column i receives i+1
// cards with only the last one revealed, and the remainder becomes the stock.
func Deal(deck []card.Card, mode Mode) *Board {
	b := &Board{Mode: mode}
	idx := 0
	for col := 0; col < NumColumns; col++ {
		b.Columns[col] = make([]card.Card, 0, col+1)
		for row := 0; row <= col; row++ {
			c := deck[idx]
			idx++
			c.Revealed = row == col
			b.Columns[col] = append(b.Columns[col], c)
		}
	}
	b.Stock = make([]card.Card, 0, card.DeckSize-idx)
	for ; idx < len(deck); idx++ {
		c := deck[idx]
		c.Revealed = true
		b.Stock = append(b.Stock, c)
	}
	return b
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{}
	b.CopyInto(nb)
	return nb
}

// CopyInto deep-copies b into dst, reusing dst's slice storage where it has
// capacity. The solver calls this once per explored node, so avoiding fresh
// allocations matters.
func (b *Board) CopyInto(dst *Board) {
	for i := range b.Columns {
		dst.Columns[i] = append(dst.Columns[i][:0], b.Columns[i]...)
	}
	dst.Stock = append(dst.Stock[:0], b.Stock...)
	dst.Waste = append(dst.Waste[:0], b.Waste...)
	for i := range b.Foundations {
		dst.Foundations[i] = append(dst.Foundations[i][:0], b.Foundations[i]...)
	}
	dst.Mode = b.Mode
}

// GoalReached reports whether all four foundations are complete.
func (b *Board) GoalReached() bool {
	for i := range b.Foundations {
		if len(b.Foundations[i]) != FoundationComplete {
			return false
		}
	}
	return true
}

// CardCount returns the total number of cards across all regions.
func (b *Board) CardCount() int {
	n := len(b.Stock) + len(b.Waste)
	for i := range b.Columns {
		n += len(b.Columns[i])
	}
	for i := range b.Foundations {
		n += len(b.Foundations[i])
	}
	return n
}

// ColumnTop returns the top card of a column and whether the column is
// non-empty.
func (b *Board) ColumnTop(col int) (card.Card, bool) {
	n := len(b.Columns[col])
	if n == 0 {
		return card.Card{}, false
	}
	return b.Columns[col][n-1], true
}

// WasteTop returns the top card of the waste pile and whether it exists.
func (b *Board) WasteTop() (card.Card, bool) {
	n := len(b.Waste)
	if n == 0 {
		return card.Card{}, false
	}
	return b.Waste[n-1], true
}

// FirstRevealed returns the index of the bottom-most revealed card in a
// column, or -1 if none are revealed.
func (b *Board) FirstRevealed(col int) int {
	for i, c := range b.Columns[col] {
		if c.Revealed {
			return i
		}
	}
	return -1
}

// FoundationRankByColor returns the highest rank banked on red foundations
// and on black foundations.
func (b *Board) FoundationRankByColor() (maxRed, maxBlack int) {
	for i := range b.Foundations {
		n := len(b.Foundations[i])
		if n == 0 {
			continue
		}
		if card.Suit(i).Color() == card.Red {
			if n > maxRed {
				maxRed = n
			}
		} else {
			if n > maxBlack {
				maxBlack = n
			}
		}
	}
	return maxRed, maxBlack
}
