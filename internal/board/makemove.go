package board

// castlePermMask clears the rights a move extinguishes: moving the king
// or a rook, or capturing a rook on its home square, drops the
// corresponding bits. Every other square keeps all rights.
var castlePermMask [BoardSquares]CastlingRights

func init() {
	for sq := range castlePermMask {
		castlePermMask[sq] = AllCastling
	}
	castlePermMask[A1] = AllCastling &^ WhiteQueenSideCastle
	castlePermMask[E1] = AllCastling &^ (WhiteKingSideCastle | WhiteQueenSideCastle)
	castlePermMask[H1] = AllCastling &^ WhiteKingSideCastle
	castlePermMask[A8] = AllCastling &^ BlackQueenSideCastle
	castlePermMask[E8] = AllCastling &^ (BlackKingSideCastle | BlackQueenSideCastle)
	castlePermMask[H8] = AllCastling &^ BlackKingSideCastle
}

// clearPiece removes the piece on sq from every index: grid, hash,
// counters, material, piece list (swap-remove), and pawn bitboards.
func (p *Position) clearPiece(sq Square) {
	piece := p.pieces[sq]
	color := piece.Color()

	p.hashPiece(piece, sq)
	p.pieces[sq] = Empty
	p.material[color] -= piece.Value()

	if piece.IsBig() {
		p.bigPieces[color]--
		if piece.IsMajor() {
			p.majorPieces[color]--
		} else {
			p.minorPieces[color]--
		}
	} else {
		p.pawns[color].ClearBit(sq.To64())
		p.pawns[Both].ClearBit(sq.To64())
	}

	last := p.pieceCount[piece] - 1
	for i := uint8(0); i <= last; i++ {
		if p.pieceList[piece][i] == sq {
			p.pieceList[piece][i] = p.pieceList[piece][last]
			break
		}
	}
	p.pieceCount[piece] = last
}

// addPiece inserts piece on sq into every index.
func (p *Position) addPiece(piece Piece, sq Square) {
	color := piece.Color()

	p.hashPiece(piece, sq)
	p.pieces[sq] = piece
	p.material[color] += piece.Value()

	if piece.IsBig() {
		p.bigPieces[color]++
		if piece.IsMajor() {
			p.majorPieces[color]++
		} else {
			p.minorPieces[color]++
		}
	} else {
		p.pawns[color].SetBit(sq.To64())
		p.pawns[Both].SetBit(sq.To64())
	}

	p.pieceList[piece][p.pieceCount[piece]] = sq
	p.pieceCount[piece]++
}

// movePiece relocates the piece on from to the empty square to,
// updating grid, hash, piece list, pawn bitboards, and king square.
func (p *Position) movePiece(from, to Square) {
	piece := p.pieces[from]
	color := piece.Color()

	p.hashPiece(piece, from)
	p.pieces[from] = Empty
	p.hashPiece(piece, to)
	p.pieces[to] = piece

	if piece.IsPawn() {
		p.pawns[color].ClearBit(from.To64())
		p.pawns[Both].ClearBit(from.To64())
		p.pawns[color].SetBit(to.To64())
		p.pawns[Both].SetBit(to.To64())
	}
	if isKing[piece] {
		p.kingSq[color] = to
	}

	for i := uint8(0); i < p.pieceCount[piece]; i++ {
		if p.pieceList[piece][i] == from {
			p.pieceList[piece][i] = to
			break
		}
	}
}

// MakeMove applies a pseudo-legal move and pushes an undo record. The
// move may leave the mover's own king attacked; callers that need full
// legality apply the move, test InCheck for the mover, and UndoMove.
func (p *Position) MakeMove(m Move) {
	from := m.From()
	to := m.To()
	mover := p.side

	p.history = append(p.history, Undo{
		Move:      m,
		Captured:  m.Captured(),
		EnPassant: p.epSq,
		Castling:  p.castling,
		FiftyMove: p.fiftyMove,
		Hash:      p.hash,
	})

	switch m.Kind() {
	case KindEnPassant:
		if mover == White {
			p.clearPiece(to - 10)
		} else {
			p.clearPiece(to + 10)
		}
	case KindCastle:
		switch to {
		case G1:
			p.movePiece(H1, F1)
		case C1:
			p.movePiece(A1, D1)
		case G8:
			p.movePiece(H8, F8)
		case C8:
			p.movePiece(A8, D8)
		default:
			panic("board: castle move with bad destination " + to.String())
		}
	}

	if p.epSq != NoSquare {
		p.hashEnPassant()
	}
	p.hashCastling()
	p.castling &= castlePermMask[from] & castlePermMask[to]
	p.epSq = NoSquare
	p.hashCastling()

	p.fiftyMove++
	if captured := m.Captured(); captured != Empty {
		p.clearPiece(to)
		p.fiftyMove = 0
	}

	if p.pieces[from].IsPawn() {
		p.fiftyMove = 0
		if m.Kind() == KindDoublePush {
			if mover == White {
				p.epSq = from + 10
			} else {
				p.epSq = from - 10
			}
			p.hashEnPassant()
		}
	}

	p.movePiece(from, to)

	if promoted := m.Promoted(); promoted != Empty {
		p.clearPiece(to)
		p.addPiece(promoted, to)
	}

	if mover == Black {
		p.fullMove++
	}
	p.side = p.side.Other()
	p.hashSide()
}

// UndoMove reverses the most recent MakeMove, restoring every field of
// the prior position exactly. It panics when no history remains.
func (p *Position) UndoMove() {
	if len(p.history) == 0 {
		panic("board: undo with empty history")
	}
	undo := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	m := undo.Move
	from := m.From()
	to := m.To()

	p.side = p.side.Other()
	if p.side == Black {
		p.fullMove--
	}

	switch m.Kind() {
	case KindEnPassant:
		if p.side == White {
			p.addPiece(BlackPawn, to-10)
		} else {
			p.addPiece(WhitePawn, to+10)
		}
	case KindCastle:
		switch to {
		case G1:
			p.movePiece(F1, H1)
		case C1:
			p.movePiece(D1, A1)
		case G8:
			p.movePiece(F8, H8)
		case C8:
			p.movePiece(D8, A8)
		}
	}

	if promoted := m.Promoted(); promoted != Empty {
		p.clearPiece(to)
		if p.side == White {
			p.addPiece(WhitePawn, to)
		} else {
			p.addPiece(BlackPawn, to)
		}
	}

	p.movePiece(to, from)

	if undo.Captured != Empty {
		p.addPiece(undo.Captured, to)
	}

	p.epSq = undo.EnPassant
	p.castling = undo.Castling
	p.fiftyMove = undo.FiftyMove
	p.hash = undo.Hash
}

// MakeNullMove passes the turn without moving. The history records
// NoMove so the two-ply heuristics see an absent move at this ply.
func (p *Position) MakeNullMove() {
	p.history = append(p.history, Undo{
		Move:      NoMove,
		Captured:  Empty,
		EnPassant: p.epSq,
		Castling:  p.castling,
		FiftyMove: p.fiftyMove,
		Hash:      p.hash,
	})

	if p.epSq != NoSquare {
		p.hashEnPassant()
	}
	p.epSq = NoSquare
	p.side = p.side.Other()
	p.hashSide()
}

// UndoNullMove reverses the most recent MakeNullMove.
func (p *Position) UndoNullMove() {
	if len(p.history) == 0 {
		panic("board: undo with empty history")
	}
	undo := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.side = p.side.Other()
	p.epSq = undo.EnPassant
	p.castling = undo.Castling
	p.fiftyMove = undo.FiftyMove
	p.hash = undo.Hash
}
