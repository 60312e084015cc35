package solver

import (
	"testing"

	"github.com/matryer/is"
)

func TestTableInsertContains(t *testing.T) {
	is := is.New(t)
	tt := newTranspositionTable(101)
	is.True(tt != nil)

	is.True(!tt.Contains(42))
	tt.Insert(42)
	is.True(tt.Contains(42))
	is.Equal(tt.created, uint64(1))

	// reinserting is a no-op
	tt.Insert(42)
	is.Equal(tt.created, uint64(1))
}

func TestTableCollidingKeys(t *testing.T) {
	is := is.New(t)
	tt := newTranspositionTable(31)
	// keys that all probe from slot 0
	tt.Insert(31)
	tt.Insert(62)
	tt.Insert(93)
	is.True(tt.Contains(31))
	is.True(tt.Contains(62))
	is.True(tt.Contains(93))
	is.True(!tt.Contains(124))
}

func TestTableLookupProbeCapAsymmetry(t *testing.T) {
	is := is.New(t)
	tt := newTranspositionTable(31)
	// Fill 17 slots of the same probe chain. Insert has no probe cap, so
	// the 17th key lands at slot 16 — one past what Contains will scan.
	for i := uint64(1); i <= 17; i++ {
		tt.Insert(i * 31)
	}
	is.Equal(tt.created, uint64(17))
	is.True(tt.Contains(16 * 31))  // slot 15, inside the window
	is.True(!tt.Contains(17 * 31)) // slot 16: a deliberate false miss
}

func TestTableAllocationGuards(t *testing.T) {
	is := is.New(t)
	is.True(newTranspositionTable(0) == nil)
	is.True(newTranspositionTable(-5) == nil)
	// a table this size would dwarf system memory
	is.True(newTranspositionTable(1<<50) == nil)
}
