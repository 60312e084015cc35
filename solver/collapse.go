package solver

import (
	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/movegen"
)

// Collapse applies safe foundation pushes (tableau tops first, then the
// waste top) repeatedly until none remain. Safe pushes are
// policy-irreversible, so collapsing never changes winnability; it shrinks
// branching and canonicalizes equivalent positions before they are
// fingerprinted. Returns whether the position changed.
func Collapse(b *board.Board) bool {
	changedAny := false
	for {
		changed := false
		for col := 0; col < board.NumColumns; col++ {
			top, ok := b.ColumnTop(col)
			if !ok || !top.Revealed {
				continue
			}
			if b.CanPlaceOnFoundation(top) && movegen.IsSafePush(b, top) {
				b.ApplyColumnPush(col)
				changed = true
			}
		}
		if !changed {
			if top, ok := b.WasteTop(); ok {
				if b.CanPlaceOnFoundation(top) && movegen.IsSafePush(b, top) {
					b.ApplyWastePush()
					changed = true
				}
			}
		}
		if !changed {
			return changedAny
		}
		changedAny = true
	}
}
