// Package movegen enumerates candidate moves for a Klondike position. It is
// pure: nothing here mutates a board. The solver applies candidates to its
// own copies via board.Apply.
package movegen

import (
	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/move"
)

// GenAll returns every candidate move for the position in fixed priority
// order: safe foundation pushes (tableau then waste), column-run
// relocations, waste-to-column placements, then a stock draw or recycle.
// The order only affects which winning line a search finds first.
func GenAll(b *board.Board) []move.Move {
	moves := FoundationPushes(b)
	moves = append(moves, ColumnMoves(b)...)
	moves = append(moves, WastePlacements(b)...)
	moves = append(moves, StockMoves(b)...)
	return moves
}

// FoundationPushes returns the safe foundation pushes available from tableau
// tops and the waste top. Unsafe pushes are never emitted; the safety
// heuristic is policy-irreversible, so suppressing them does not lose wins
// the search would otherwise need.
func FoundationPushes(b *board.Board) []move.Move {
	var moves []move.Move
	for col := 0; col < board.NumColumns; col++ {
		top, ok := b.ColumnTop(col)
		if !ok || !top.Revealed {
			continue
		}
		if b.CanPlaceOnFoundation(top) && IsSafePush(b, top) {
			moves = append(moves, move.Move{Kind: move.FoundationPush, From: col})
		}
	}
	if top, ok := b.WasteTop(); ok {
		if b.CanPlaceOnFoundation(top) && IsSafePush(b, top) {
			moves = append(moves, move.Move{Kind: move.FoundationPush, From: move.WasteSource})
		}
	}
	return moves
}

// ColumnMoves returns every legal relocation of a revealed run between
// columns, considering every valid split point of every column.
func ColumnMoves(b *board.Board) []move.Move {
	var moves []move.Move
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
				if to == from {
					continue
				}
				if b.CanPlaceOnColumn(b.Columns[from][row], to) {
					moves = append(moves, move.Move{Kind: move.ColumnMove, From: from, Row: row, To: to})
				}
			}
		}
	}
	return moves
}

// WastePlacements returns the legal placements of the waste top onto tableau
// columns.
func WastePlacements(b *board.Board) []move.Move {
	top, ok := b.WasteTop()
	if !ok {
		return nil
	}
	var moves []move.Move
	for to := 0; to < board.NumColumns; to++ {
		if b.CanPlaceOnColumn(top, to) {
			moves = append(moves, move.Move{Kind: move.WasteToColumn, To: to})
		}
	}
	return moves
}

// StockMoves returns a draw if the stock has cards, else a recycle if the
// mode allows it and the waste has cards. At most one move is returned.
func StockMoves(b *board.Board) []move.Move {
	if len(b.Stock) > 0 {
		return []move.Move{{Kind: move.DrawStock}}
	}
	if b.Mode.Recycles() && len(b.Waste) > 0 {
		return []move.Move{{Kind: move.RecycleWaste}}
	}
	return nil
}
