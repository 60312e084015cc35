// Package fingerprint digests a Klondike position into a 64-bit key for the
// solver's transposition table. Unlike a zobrist scheme there are no
// process-random tables: the mix constants are fixed, so independently
// constructed identical boards always hash identically. Collisions between
// distinct boards are possible; the search treats a colliding state as
// already visited, which can only cost it a line, never invent one.
package fingerprint

import (
	"math/bits"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/card"
)

const seed = 0xDEADBEEFCAFEBABE

// https://en.wikipedia.org/wiki/Hash_function#Fibonacci_hashing
const (
	golden1 = 0x9E3779B185EBCA87
	golden2 = 0xC2B2AE3D27D4EB4F
)

// cardHash mixes rank, a 2-bit suit code, and the revealed flag.
func cardHash(c card.Card) uint64 {
	v := uint64(c.Rank)&0x3F | (uint64(c.Suit)&0x03)<<6
	if c.Revealed {
		v |= 1 << 8
	}
	v ^= bits.RotateLeft64(v*golden1+golden2, 23)
	return v
}

// Hash digests the whole position: per-foundation count and top card,
// full column contents, the ordered waste and stock sequences, and the mode.
func Hash(b *board.Board) uint64 {
	h := uint64(seed)

	// Foundation counts and tops carry most of the signal.
	for i := range b.Foundations {
		n := len(b.Foundations[i])
		h ^= uint64(n) + 0x9E37
		if n > 0 {
			h ^= bits.RotateLeft64(cardHash(b.Foundations[i][n-1]), i+1)
		}
	}

	for col := range b.Columns {
		h ^= bits.RotateLeft64(uint64(len(b.Columns[col]))+0x12D+uint64(col), 7)
		for i, c := range b.Columns[col] {
			h ^= bits.RotateLeft64(cardHash(c), (i+col)&31)
		}
	}

	h ^= bits.RotateLeft64(uint64(len(b.Waste))+0x55, 13)
	for i, c := range b.Waste {
		h ^= bits.RotateLeft64(cardHash(c), i&31)
	}

	h ^= bits.RotateLeft64(uint64(len(b.Stock))+0xA3, 17)
	for i, c := range b.Stock {
		h ^= bits.RotateLeft64(cardHash(c), i&31)
	}

	// The mode changes stock cycling, so equal layouts under different
	// modes are different states.
	h ^= uint64(b.Mode) * 0x1000193
	return h
}
