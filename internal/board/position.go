package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the four independent castling permissions.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle |
		BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling-rights token.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// maxPieceCount is the piece-list capacity per identity: eight pawns
// promoting into the same piece kind plus the original two is still
// below ten.
const maxPieceCount = 10

// Undo captures everything needed to exactly restore the position that
// preceded a move.
type Undo struct {
	Move      Move
	Captured  Piece
	EnPassant Square
	Castling  CastlingRights
	FiftyMove int
	Hash      uint64
}

// Position is the authoritative game state: a mailbox grid mirrored by
// piece lists and pawn bitboards, incrementally maintained counters, a
// Zobrist key, and the reversible move history. The mirrors are only
// ever updated together inside MakeMove/UndoMove; Validate checks their
// agreement.
//
// A Position is not safe for concurrent mutation; at most one goroutine
// may hold a mutable view at a time.
type Position struct {
	pieces [BoardSquares]Piece
	pawns  [3]Bitboard
	kingSq [2]Square

	side      Color
	epSq      Square
	castling  CastlingRights
	fiftyMove int
	fullMove  int
	hash      uint64

	pieceCount  [pieceKinds]uint8
	pieceList   [pieceKinds][maxPieceCount]Square
	bigPieces   [2]uint8
	majorPieces [2]uint8
	minorPieces [2]uint8
	material    [2]int

	history []Undo
}

// maxGameMoves sizes the history allocation.
const maxGameMoves = 1024

// NewPosition creates an empty position. Populate it with ParseFEN.
func NewPosition() *Position {
	p := &Position{history: make([]Undo, 0, maxGameMoves)}
	p.Reset()
	return p
}

// Reset clears the position to an empty board with no rights and no
// side to move.
func (p *Position) Reset() {
	for sq := range p.pieces {
		p.pieces[sq] = OffBoard
	}
	for sq64 := 0; sq64 < 64; sq64++ {
		p.pieces[SquareFrom64(sq64)] = Empty
	}
	p.pawns = [3]Bitboard{}
	p.kingSq = [2]Square{NoSquare, NoSquare}
	p.side = Both
	p.epSq = NoSquare
	p.castling = NoCastling
	p.fiftyMove = 0
	p.fullMove = 1
	p.hash = 0
	p.pieceCount = [pieceKinds]uint8{}
	p.pieceList = [pieceKinds][maxPieceCount]Square{}
	p.bigPieces = [2]uint8{}
	p.majorPieces = [2]uint8{}
	p.minorPieces = [2]uint8{}
	p.material = [2]int{}
	p.history = p.history[:0]
}

// PieceAt returns the content of the given grid cell.
func (p *Position) PieceAt(sq Square) Piece {
	return p.pieces[sq]
}

// SideToMove returns the side to move.
func (p *Position) SideToMove() Color {
	return p.side
}

// EnPassant returns the en-passant target square, NoSquare when none.
func (p *Position) EnPassant() Square {
	return p.epSq
}

// CastlingRights returns the castling-rights bitmask.
func (p *Position) CastlingRights() CastlingRights {
	return p.castling
}

// HalfMoveClock returns the no-progress clock for the fifty-move rule.
func (p *Position) HalfMoveClock() int {
	return p.fiftyMove
}

// FullMoveNumber returns the full-move counter, starting at 1.
func (p *Position) FullMoveNumber() int {
	return p.fullMove
}

// Hash returns the incrementally maintained Zobrist key.
func (p *Position) Hash() uint64 {
	return p.hash
}

// KingSquare returns the recorded king square of the given side.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSq[c]
}

// PawnBitboard returns the pawn occupancy for White, Black, or Both.
func (p *Position) PawnBitboard(c Color) Bitboard {
	return p.pawns[c]
}

// Material returns the material sum of the given side in centipawns.
func (p *Position) Material(c Color) int {
	return p.material[c]
}

// BigPieces returns the non-pawn piece count of the given side.
func (p *Position) BigPieces(c Color) int {
	return int(p.bigPieces[c])
}

// MajorPieces returns the rook/queen/king count of the given side.
func (p *Position) MajorPieces(c Color) int {
	return int(p.majorPieces[c])
}

// MinorPieces returns the knight/bishop count of the given side.
func (p *Position) MinorPieces(c Color) int {
	return int(p.minorPieces[c])
}

// PieceCount returns the number of pieces of the given identity on the
// board.
func (p *Position) PieceCount(piece Piece) int {
	return int(p.pieceCount[piece])
}

// HistoryLen returns the number of moves recorded in the history list,
// null moves included.
func (p *Position) HistoryLen() int {
	return len(p.history)
}

// PrevMove returns the move made pliesAgo plies before the current
// position (1 = the move just played). A null move is reported as
// NoMove with ok true; ok is false when the history is shorter than
// pliesAgo.
func (p *Position) PrevMove(pliesAgo int) (m Move, ok bool) {
	if pliesAgo < 1 || pliesAgo > len(p.history) {
		return NoMove, false
	}
	return p.history[len(p.history)-pliesAgo].Move, true
}

// InCheck reports whether the given side's king is attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.kingSq[c], c.Other())
}

// FiftyMoveDraw reports whether the no-progress clock has reached the
// fifty-move-rule bound. The caller decides the game; applying further
// moves is not prevented.
func (p *Position) FiftyMoveDraw() bool {
	return p.fiftyMove >= 100
}

// updateListsAndMaterial rebuilds piece lists, counts, material sums,
// pawn bitboards, and king squares from the grid in one pass. Called
// once after FEN population; afterwards every index is maintained
// incrementally.
func (p *Position) updateListsAndMaterial() {
	for sq64 := 0; sq64 < 64; sq64++ {
		sq := SquareFrom64(sq64)
		piece := p.pieces[sq]
		if piece == Empty {
			continue
		}
		color := piece.Color()
		if piece.IsBig() {
			p.bigPieces[color]++
		}
		if piece.IsMajor() {
			p.majorPieces[color]++
		}
		if piece.IsMinor() {
			p.minorPieces[color]++
		}
		p.material[color] += piece.Value()
		p.pieceList[piece][p.pieceCount[piece]] = sq
		p.pieceCount[piece]++
		if isKing[piece] {
			p.kingSq[color] = sq
		}
		if piece.IsPawn() {
			p.pawns[color].SetBit(sq64)
			p.pawns[Both].SetBit(sq64)
		}
	}
}

// String returns a diagram of the position, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Fprintf(&sb, "%s ", p.pieces[NewSquare(file, rank)])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	sideChar := "wb-"[p.side]
	fmt.Fprintf(&sb, "side: %c\n", sideChar)
	fmt.Fprintf(&sb, "en passant: %s\n", p.epSq)
	fmt.Fprintf(&sb, "castling: %s\n", p.castling)
	fmt.Fprintf(&sb, "hash: %016x\n", p.hash)
	return sb.String()
}
