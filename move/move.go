// Package move defines the candidate transition type enumerated by movegen
// and applied by the board package.
package move

import "fmt"

// Kind is a type of move.
type Kind uint8

const (
	// FoundationPush sends the top card of a column (or the waste, see
	// WasteSource) to its foundation.
	FoundationPush Kind = iota
	// ColumnMove relocates a revealed run between tableau columns.
	ColumnMove
	// WasteToColumn places the waste top onto a tableau column.
	WasteToColumn
	// DrawStock turns over the next card(s) from the stock.
	DrawStock
	// RecycleWaste turns the waste back into the stock (recycling modes only).
	RecycleWaste
)

// WasteSource marks the waste pile as the source of a FoundationPush.
const WasteSource = -1

// Move is one candidate transition. Which fields are meaningful depends on
// Kind: FoundationPush uses From (column index or WasteSource); ColumnMove
// uses From, Row, and To; WasteToColumn uses To; DrawStock and RecycleWaste
// use none.
type Move struct {
	Kind Kind
	From int
	Row  int
	To   int
}

func (m Move) String() string {
	switch m.Kind {
	case FoundationPush:
		if m.From == WasteSource {
			return "waste → foundation"
		}
		return fmt.Sprintf("col %d → foundation", m.From+1)
	case ColumnMove:
		return fmt.Sprintf("col %d (row %d) → col %d", m.From+1, m.Row+1, m.To+1)
	case WasteToColumn:
		return fmt.Sprintf("waste → col %d", m.To+1)
	case DrawStock:
		return "draw"
	case RecycleWaste:
		return "recycle"
	}
	return "unknown"
}
