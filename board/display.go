package board

import (
	"fmt"
	"strings"

	"github.com/domino14/klondike/card"
)

// ToDisplayText renders the board for the interactive shell. Face-down
// tableau cards render as [??].
func (b *Board) ToDisplayText() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Stock: %d cards   Mode: %s\n", len(b.Stock), b.Mode)
	if top, ok := b.WasteTop(); ok {
		fmt.Fprintf(&sb, "Waste: [%s] (%d cards)\n", top, len(b.Waste))
	} else {
		sb.WriteString("Waste: empty\n")
	}

	for i := range b.Foundations {
		suit := card.Suit(i)
		if n := len(b.Foundations[i]); n > 0 {
			fmt.Fprintf(&sb, "Foundation %s: [%s]\n", suit, b.Foundations[i][n-1])
		} else {
			fmt.Fprintf(&sb, "Foundation %s: empty\n", suit)
		}
	}

	for col := range b.Columns {
		fmt.Fprintf(&sb, "Col %d:", col+1)
		for _, c := range b.Columns[col] {
			if c.Revealed {
				fmt.Fprintf(&sb, " [%s]", c)
			} else {
				sb.WriteString(" [??]")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
