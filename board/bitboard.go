package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit occupancy mask over dense squares (a1 = bit 0).
type Bitboard uint64

const debruijn64 = 0x03f79d71b4cb0a89

var debruijnIndex [64]int

func init() {
	for i := 0; i < 64; i++ {
		debruijnIndex[(uint64(1)<<uint(i))*debruijn64>>58] = i
	}
}

// Set marks the dense square sq.
func (bb *Bitboard) Set(sq int) { *bb |= 1 << uint(sq) }

// Clear unmarks the dense square sq.
func (bb *Bitboard) Clear(sq int) { *bb &^= 1 << uint(sq) }

// Move clears from and sets to in a single XOR. from must be set and to clear.
func (bb *Bitboard) Move(from, to int) { *bb ^= 1<<uint(from) | 1<<uint(to) }

// Has reports whether sq is marked.
func (bb Bitboard) Has(sq int) bool { return bb&(1<<uint(sq)) != 0 }

// Count returns the number of marked squares.
func (bb Bitboard) Count() int { return bits.OnesCount64(uint64(bb)) }

// Pop clears the lowest marked square and returns its index. Calling Pop on
// an empty bitboard is a caller bug and panics.
func (bb *Bitboard) Pop() int {
	if *bb == 0 {
		panic("board: Pop on empty bitboard")
	}
	x := uint64(*bb)
	idx := debruijnIndex[(x&-x)*debruijn64>>58]
	*bb &= *bb - 1
	return idx
}

// String draws the mask rank 8 first, 'x' for marked squares.
func (bb Bitboard) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		for file := FileA; file <= FileH; file++ {
			if bb.Has(rank*8 + file) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
