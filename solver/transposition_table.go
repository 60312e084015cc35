package solver

import (
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

const entrySize = 16

// lookupProbeCap bounds Contains probing. Insert probes without a cap, so a
// key can land past the window Contains scans; the asymmetry trades rare
// false "not found" results for a fast hot path.
const lookupProbeCap = 16

type tableEntry struct {
	key  uint64
	used bool
}

// TranspositionTable is a fixed-capacity open-addressed set of position
// fingerprints. There is no delete; a table lives for one solver invocation
// and is discarded.
type TranspositionTable struct {
	slots    []tableEntry
	capacity uint64
	created  uint64
	lookups  uint64
	hits     uint64
}

// newTranspositionTable allocates a table, or returns nil if the requested
// capacity is nonsensical or would eat more than half of system memory. The
// caller treats nil as allocation failure and fails closed.
func newTranspositionTable(capacity int) *TranspositionTable {
	if capacity <= 0 {
		return nil
	}
	totalMem := memory.TotalMemory()
	if wantBytes := uint64(capacity) * entrySize; totalMem > 0 && wantBytes > totalMem/2 {
		log.Warn().Uint64("want-bytes", wantBytes).
			Uint64("total-system-memory-bytes", totalMem).
			Msg("transposition-table-too-large")
		return nil
	}
	return &TranspositionTable{
		slots:    make([]tableEntry, capacity),
		capacity: uint64(capacity),
	}
}

// Contains linearly probes up to lookupProbeCap slots, stopping early at the
// first empty slot.
func (t *TranspositionTable) Contains(key uint64) bool {
	t.lookups++
	start := key % t.capacity
	for probe := uint64(0); probe < lookupProbeCap; probe++ {
		e := t.slots[(start+probe)%t.capacity]
		if !e.used {
			return false
		}
		if e.key == key {
			t.hits++
			return true
		}
	}
	return false
}

// Insert linearly probes from the same start slot as Contains until it finds
// an empty or matching slot.
func (t *TranspositionTable) Insert(key uint64) {
	start := key % t.capacity
	for probe := uint64(0); probe < t.capacity; probe++ {
		idx := (start + probe) % t.capacity
		if !t.slots[idx].used {
			t.slots[idx] = tableEntry{key: key, used: true}
			t.created++
			return
		}
		if t.slots[idx].key == key {
			return
		}
	}
}
