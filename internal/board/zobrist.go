package board

// Zobrist keys. The Empty row of pieceKeys doubles as the en-passant
// keys, one per target square, as no piece ever hashes as Empty.
var (
	pieceKeys  [pieceKinds][BoardSquares]uint64
	sideKey    uint64
	castleKeys [16]uint64
)

// prng generates reproducible Zobrist keys (xorshift64*).
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func init() {
	rng := prng{state: 0x9D3C81A7F252AE10} // fixed seed
	for piece := Empty; piece <= BlackKing; piece++ {
		for sq := 0; sq < BoardSquares; sq++ {
			pieceKeys[piece][sq] = rng.next()
		}
	}
	sideKey = rng.next()
	for i := range castleKeys {
		castleKeys[i] = rng.next()
	}
}

// ComputeHash derives the Zobrist key from scratch: one constant per
// occupied (piece, square), the side key when White is to move, the
// en-passant key when a target is set, and one of the sixteen
// castling-rights keys. The incrementally maintained key must always
// equal this derivation.
func (p *Position) ComputeHash() uint64 {
	var key uint64
	for sq := 0; sq < BoardSquares; sq++ {
		piece := p.pieces[sq]
		if piece != Empty && piece != OffBoard {
			key ^= pieceKeys[piece][sq]
		}
	}
	if p.side == White {
		key ^= sideKey
	}
	if p.epSq != NoSquare {
		key ^= pieceKeys[Empty][p.epSq]
	}
	key ^= castleKeys[p.castling]
	return key
}

// Incremental hash helpers. MakeMove/UndoMove call these so the
// maintained key stays equal to ComputeHash.

func (p *Position) hashPiece(piece Piece, sq Square) {
	p.hash ^= pieceKeys[piece][sq]
}

func (p *Position) hashSide() {
	p.hash ^= sideKey
}

func (p *Position) hashEnPassant() {
	p.hash ^= pieceKeys[Empty][p.epSq]
}

func (p *Position) hashCastling() {
	p.hash ^= castleKeys[p.castling]
}
