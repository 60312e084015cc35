package movegen

import (
	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/card"
)

// IsSafePush is the classic safe-autoplay heuristic. Banking an Ace or Two
// is always safe. A higher card of rank v is safe only once the opposite
// color has banked at least v-1; otherwise the push could strand an
// opposite-color card still needed for tableau sequencing.
func IsSafePush(b *board.Board, c card.Card) bool {
	v := int(c.Rank)
	if v <= 2 {
		return true
	}
	maxRed, maxBlack := b.FoundationRankByColor()
	if c.Color() == card.Red {
		return maxBlack >= v-1
	}
	return maxRed >= v-1
}

// HasSafePush reports whether any safe foundation push exists from a tableau
// top or the waste top.
func HasSafePush(b *board.Board) bool {
	for col := 0; col < board.NumColumns; col++ {
		top, ok := b.ColumnTop(col)
		if !ok || !top.Revealed {
			continue
		}
		if b.CanPlaceOnFoundation(top) && IsSafePush(b, top) {
			return true
		}
	}
	if top, ok := b.WasteTop(); ok {
		return b.CanPlaceOnFoundation(top) && IsSafePush(b, top)
	}
	return false
}

// HasColumnMove reports whether any legal column-to-column run move exists.
func HasColumnMove(b *board.Board) bool {
	for from := 0; from < board.NumColumns; from++ {
		first := b.FirstRevealed(from)
		if first == -1 {
			continue
		}
		for row := first; row < len(b.Columns[from]); row++ {
			if !b.IsValidRun(from, row) {
				continue
			}
			for to := 0; to < board.NumColumns; to++ {
				if to != from && b.CanPlaceOnColumn(b.Columns[from][row], to) {
					return true
				}
			}
		}
	}
	return false
}

// HasWastePlacement reports whether the waste top fits on any column.
func HasWastePlacement(b *board.Board) bool {
	top, ok := b.WasteTop()
	if !ok {
		return false
	}
	for to := 0; to < board.NumColumns; to++ {
		if b.CanPlaceOnColumn(top, to) {
			return true
		}
	}
	return false
}

// HasProgressMove is the coarse dead-leaf gate: a node with no safe push, no
// column move, no waste placement, nothing to draw, and nothing to recycle
// cannot make progress.
func HasProgressMove(b *board.Board) bool {
	if HasSafePush(b) {
		return true
	}
	if HasColumnMove(b) {
		return true
	}
	if HasWastePlacement(b) {
		return true
	}
	if len(b.Stock) > 0 {
		return true
	}
	if b.Mode.Recycles() && len(b.Waste) > 0 {
		return true
	}
	return false
}
