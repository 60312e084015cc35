package board

import (
	"github.com/domino14/klondike/move"
)

// Apply functions mutate the receiver board. Legality is the caller's
// responsibility (the solver enumerates with movegen, which only emits legal
// candidates). Each apply relocates cards; none creates or destroys one.

// Apply dispatches a move to its apply function.
func (b *Board) Apply(m move.Move) {
	switch m.Kind {
	case move.FoundationPush:
		if m.From == move.WasteSource {
			b.ApplyWastePush()
		} else {
			b.ApplyColumnPush(m.From)
		}
	case move.ColumnMove:
		b.ApplyRunMove(m.From, m.Row, m.To)
	case move.WasteToColumn:
		b.ApplyWasteToColumn(m.To)
	case move.DrawStock:
		b.ApplyDraw()
	case move.RecycleWaste:
		b.ApplyRecycle()
	}
}

// ApplyColumnPush moves the top card of a column to its foundation and
// reveals the newly exposed card beneath it.
func (b *Board) ApplyColumnPush(col int) {
	n := len(b.Columns[col])
	c := b.Columns[col][n-1]
	b.Columns[col] = b.Columns[col][:n-1]
	b.Foundations[c.Suit] = append(b.Foundations[c.Suit], c)
	b.revealTop(col)
}

// ApplyWastePush moves the waste top to its foundation.
func (b *Board) ApplyWastePush() {
	n := len(b.Waste)
	c := b.Waste[n-1]
	b.Waste = b.Waste[:n-1]
	b.Foundations[c.Suit] = append(b.Foundations[c.Suit], c)
}

// ApplyRunMove relocates the run starting at row from one column onto
// another, then reveals the newly exposed source top.
func (b *Board) ApplyRunMove(from, row, to int) {
	b.Columns[to] = append(b.Columns[to], b.Columns[from][row:]...)
	b.Columns[from] = b.Columns[from][:row]
	b.revealTop(from)
}

// ApplyWasteToColumn places the waste top onto a column.
func (b *Board) ApplyWasteToColumn(col int) {
	n := len(b.Waste)
	c := b.Waste[n-1]
	b.Waste = b.Waste[:n-1]
	c.Revealed = true
	b.Columns[col] = append(b.Columns[col], c)
}

// ApplyDraw moves up to Mode.DrawCount() cards from the stock top to the
// waste, one at a time.
func (b *Board) ApplyDraw() {
	draw := b.Mode.DrawCount()
	if draw > len(b.Stock) {
		draw = len(b.Stock)
	}
	for i := 0; i < draw; i++ {
		n := len(b.Stock)
		b.Waste = append(b.Waste, b.Stock[n-1])
		b.Stock = b.Stock[:n-1]
	}
}

// ApplyRecycle turns the whole waste back into the stock. The waste is
// walked top-down, so the card drawn first after recycling is the one that
// sat at the bottom of the waste.
func (b *Board) ApplyRecycle() {
	for i := len(b.Waste) - 1; i >= 0; i-- {
		b.Stock = append(b.Stock, b.Waste[i])
	}
	b.Waste = b.Waste[:0]
}

func (b *Board) revealTop(col int) {
	if n := len(b.Columns[col]); n > 0 {
		b.Columns[col][n-1].Revealed = true
	}
}
