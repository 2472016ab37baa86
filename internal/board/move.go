package board

import (
	"fmt"
	"strings"
)

// MoveKind distinguishes the mutually exclusive special move kinds.
// Ordinary moves, captures included, are KindNone.
type MoveKind uint8

const (
	KindNone MoveKind = iota
	KindEnPassant
	KindDoublePush
	KindCastle
)

// Move packs a move into 24 bits:
//
//	bits 0-6:   from square (mailbox index)
//	bits 7-13:  to square (mailbox index)
//	bits 14-17: captured piece identity (Empty when none)
//	bits 18-21: promotion piece identity (Empty when none)
//	bits 22-23: special move kind
//
// En-passant captures carry Empty in the captured field; the captured
// pawn is implied by the kind.
type Move uint32

// NoMove is the null-move sentinel. Square 0 is off the board, so no
// generated move encodes to zero.
const NoMove Move = 0

// NewMove packs the given fields into a Move.
func NewMove(from, to Square, captured, promoted Piece, kind MoveKind) Move {
	return Move(from) | Move(to)<<7 | Move(captured)<<14 | Move(promoted)<<18 | Move(kind)<<22
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x7F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 7) & 0x7F)
}

// Captured returns the captured piece identity, Empty when the move is
// not a capture (en passant included).
func (m Move) Captured() Piece {
	return Piece((m >> 14) & 0xF)
}

// Promoted returns the promotion piece identity, Empty when the move is
// not a promotion.
func (m Move) Promoted() Piece {
	return Piece((m >> 18) & 0xF)
}

// Kind returns the special move kind.
func (m Move) Kind() MoveKind {
	return MoveKind((m >> 22) & 0x3)
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	return m.Captured() != Empty || m.Kind() == KindEnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promoted() != Empty
}

// String returns the move in coordinate notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if promoted := m.Promoted(); promoted != Empty {
		s += strings.ToLower(promoted.String())
	}
	return s
}

// maxMoves bounds the number of pseudo-legal moves in any reachable
// position.
const maxMoves = 256

// MoveList is a fixed-size list of moves to avoid allocations during
// generation.
type MoveList struct {
	moves [maxMoves]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// String lists the moves one per line with their index.
func (ml *MoveList) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MoveList: %d moves\n", ml.count)
	for i := 0; i < ml.count; i++ {
		fmt.Fprintf(&sb, "%3d: %s\n", i+1, ml.moves[i])
	}
	return sb.String()
}
