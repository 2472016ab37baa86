// Package board implements a mailbox chess board with piece lists and
// pawn bitboards, pseudo-legal move generation, and Zobrist hashing.
package board

import "fmt"

// Square indexes a cell of the 10x12 mailbox grid. The playing area
// occupies indices 21..98; everything else is the guard border, so ray
// and offset probes only ever need a sentinel comparison, never a
// bounds check.
type Square uint8

// BoardSquares is the size of the mailbox grid.
const BoardSquares = 120

// Playing-area squares, rank by rank.
const (
	A1 Square = iota + 21
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)
const (
	A8 Square = iota + 91
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare is the off-board sentinel used for "no en-passant target"
// and unset king squares. Index 99 sits on the guard border.
const NoSquare Square = 99

var (
	// sq64ToSq120 maps the dense 0..63 numbering (A1=0, H8=63) onto the
	// mailbox grid; sq120ToSq64 is its inverse, with offBoard64 for
	// border cells.
	sq64ToSq120 [64]Square
	sq120ToSq64 [BoardSquares]int8

	// filesBoard and ranksBoard give the 0-indexed file/rank of each
	// mailbox cell, or offBoardCoord on the border.
	filesBoard [BoardSquares]int8
	ranksBoard [BoardSquares]int8
)

const (
	offBoard64    int8 = 65
	offBoardCoord int8 = -1
)

func init() {
	for i := range sq120ToSq64 {
		sq120ToSq64[i] = offBoard64
		filesBoard[i] = offBoardCoord
		ranksBoard[i] = offBoardCoord
	}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			sq64 := int8(rank*8 + file)
			sq64ToSq120[sq64] = sq
			sq120ToSq64[sq] = sq64
			filesBoard[sq] = int8(file)
			ranksBoard[sq] = int8(rank)
		}
	}
}

// NewSquare creates a mailbox square from 0-indexed file and rank.
func NewSquare(file, rank int) Square {
	return Square(21 + file + rank*10)
}

// File returns the file of the square (0=a .. 7=h), or -1 off board.
func (sq Square) File() int {
	return int(filesBoard[sq])
}

// Rank returns the rank of the square (0=rank 1 .. 7=rank 8), or -1 off
// board.
func (sq Square) Rank() int {
	return int(ranksBoard[sq])
}

// OnBoard reports whether the square lies in the playing area.
func (sq Square) OnBoard() bool {
	return sq < BoardSquares && sq120ToSq64[sq] != offBoard64
}

// To64 returns the dense 0..63 index of the square. The square must be
// on the board.
func (sq Square) To64() int {
	return int(sq120ToSq64[sq])
}

// SquareFrom64 converts a dense 0..63 index back to a mailbox square.
func SquareFrom64(sq64 int) Square {
	return sq64ToSq120[sq64]
}

// String returns the algebraic name of the square (e.g. "e4"), or "-"
// for off-board squares.
func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare parses algebraic notation (e.g. "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return NewSquare(file, rank), nil
}
