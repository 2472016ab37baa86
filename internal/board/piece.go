package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	// Both indexes the combined pawn bitboard and is the color of empty
	// and off-board cells.
	Both Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Both"
	}
}

// Piece is one of the twelve piece identities, Empty for vacant playing
// squares, or OffBoard for guard-border cells.
type Piece uint8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	OffBoard
)

// pieceKinds is the number of cells in the piece-data lookup tables;
// OffBoard rows carry neutral values so a sentinel read cannot index
// out of range.
const pieceKinds = 14

// Piece-classification tables, indexed by Piece.
var (
	pieceBig = [pieceKinds]bool{
		WhiteKnight: true, WhiteBishop: true, WhiteRook: true, WhiteQueen: true, WhiteKing: true,
		BlackKnight: true, BlackBishop: true, BlackRook: true, BlackQueen: true, BlackKing: true,
	}
	pieceMajor = [pieceKinds]bool{
		WhiteRook: true, WhiteQueen: true, WhiteKing: true,
		BlackRook: true, BlackQueen: true, BlackKing: true,
	}
	pieceMinor = [pieceKinds]bool{
		WhiteKnight: true, WhiteBishop: true,
		BlackKnight: true, BlackBishop: true,
	}
	pieceValue = [pieceKinds]int{
		WhitePawn: 100, WhiteKnight: 325, WhiteBishop: 325, WhiteRook: 550, WhiteQueen: 1000, WhiteKing: 50000,
		BlackPawn: 100, BlackKnight: 325, BlackBishop: 325, BlackRook: 550, BlackQueen: 1000, BlackKing: 50000,
	}
	pieceColor = [pieceKinds]Color{
		Empty:     Both,
		WhitePawn: White, WhiteKnight: White, WhiteBishop: White, WhiteRook: White, WhiteQueen: White, WhiteKing: White,
		BlackPawn: Black, BlackKnight: Black, BlackBishop: Black, BlackRook: Black, BlackQueen: Black, BlackKing: Black,
		OffBoard: Both,
	}

	isPawn      = [pieceKinds]bool{WhitePawn: true, BlackPawn: true}
	isKnight    = [pieceKinds]bool{WhiteKnight: true, BlackKnight: true}
	isKing      = [pieceKinds]bool{WhiteKing: true, BlackKing: true}
	isRookQueen = [pieceKinds]bool{
		WhiteRook: true, WhiteQueen: true,
		BlackRook: true, BlackQueen: true,
	}
	isBishopQueen = [pieceKinds]bool{
		WhiteBishop: true, WhiteQueen: true,
		BlackBishop: true, BlackQueen: true,
	}
)

// Valid reports whether p is one of the twelve piece identities.
func (p Piece) Valid() bool {
	return p >= WhitePawn && p <= BlackKing
}

// Color returns the color of the piece, Both for Empty and OffBoard.
func (p Piece) Color() Color {
	return pieceColor[p]
}

// IsBig reports whether the piece is a non-pawn piece.
func (p Piece) IsBig() bool { return pieceBig[p] }

// IsMajor reports whether the piece is a rook, queen, or king.
func (p Piece) IsMajor() bool { return pieceMajor[p] }

// IsMinor reports whether the piece is a knight or bishop.
func (p Piece) IsMinor() bool { return pieceMinor[p] }

// IsPawn reports whether the piece is a pawn of either color.
func (p Piece) IsPawn() bool { return isPawn[p] }

// Value returns the material value of the piece in centipawns. Asking
// for the value of Empty or OffBoard is a programming error.
func (p Piece) Value() int {
	if !p.Valid() {
		panic("board: material value of a non-piece")
	}
	return pieceValue[p]
}

// String returns the FEN character for the piece, "." for Empty.
func (p Piece) String() string {
	const chars = ".PNBRQKpnbrqk"
	if p > BlackKing {
		return "?"
	}
	return string(chars[p])
}

// PieceFromChar converts a FEN piece letter to a Piece, or Empty when
// the letter is not recognized.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return Empty
	}
}
