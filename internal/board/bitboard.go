package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set over the dense 0..63 square numbering,
// used here for pawn occupancy.
type Bitboard uint64

// SetBit sets the bit for the given dense square index.
func (b *Bitboard) SetBit(sq64 int) {
	*b |= 1 << uint(sq64)
}

// ClearBit clears the bit for the given dense square index.
func (b *Bitboard) ClearBit(sq64 int) {
	*b &^= 1 << uint(sq64)
}

// Has reports whether the bit for the given dense square index is set.
func (b Bitboard) Has(sq64 int) bool {
	return b&(1<<uint(sq64)) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// PopLSB clears and returns the index of the least significant set bit.
func (b *Bitboard) PopLSB() int {
	sq64 := bits.TrailingZeros64(uint64(*b))
	*b &= *b - 1
	return sq64
}

// String returns an 8x8 diagram of the bitboard, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(rank*8 + file) {
				sb.WriteString("X ")
			} else {
				sb.WriteString("- ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
