package board

// Promotion choices per side, strongest first.
var (
	whitePromotions = [4]Piece{WhiteQueen, WhiteKnight, WhiteRook, WhiteBishop}
	blackPromotions = [4]Piece{BlackQueen, BlackKnight, BlackRook, BlackBishop}
)

// Jumper and slider generation order per side.
var (
	whiteJumpers = [2]Piece{WhiteKnight, WhiteKing}
	blackJumpers = [2]Piece{BlackKnight, BlackKing}
	whiteSliders = [3]Piece{WhiteBishop, WhiteRook, WhiteQueen}
	blackSliders = [3]Piece{BlackBishop, BlackRook, BlackQueen}
)

func sliderDirs(piece Piece) []int {
	switch piece {
	case WhiteBishop, BlackBishop:
		return bishopDirs[:]
	case WhiteRook, BlackRook:
		return rookDirs[:]
	default:
		return kingDirs[:] // queens move in all eight directions
	}
}

// GenerateMoves appends every pseudo-legal move for the side to move.
// Moves may leave the mover's own king attacked; filtering that out is
// the caller's job, by applying the move and consulting IsAttacked.
func (p *Position) GenerateMoves(ml *MoveList) {
	if p.side == White {
		p.generateWhitePawnMoves(ml)
	} else {
		p.generateBlackPawnMoves(ml)
	}

	jumpers := &whiteJumpers
	if p.side == Black {
		jumpers = &blackJumpers
	}
	for _, piece := range jumpers {
		dirs := kingDirs[:]
		if isKnight[piece] {
			dirs = knightDirs[:]
		}
		for i := uint8(0); i < p.pieceCount[piece]; i++ {
			sq := p.pieceList[piece][i]
			for _, dir := range dirs {
				tsq := Square(int(sq) + dir)
				target := p.pieces[tsq]
				if target == OffBoard {
					continue
				}
				if target == Empty {
					ml.Add(NewMove(sq, tsq, Empty, Empty, KindNone))
				} else if target.Color() == p.side.Other() {
					ml.Add(NewMove(sq, tsq, target, Empty, KindNone))
				}
			}
		}
	}

	sliders := &whiteSliders
	if p.side == Black {
		sliders = &blackSliders
	}
	for _, piece := range sliders {
		dirs := sliderDirs(piece)
		for i := uint8(0); i < p.pieceCount[piece]; i++ {
			sq := p.pieceList[piece][i]
			for _, dir := range dirs {
				tsq := Square(int(sq) + dir)
				target := p.pieces[tsq]
				for target != OffBoard {
					if target != Empty {
						if target.Color() == p.side.Other() {
							ml.Add(NewMove(sq, tsq, target, Empty, KindNone))
						}
						break
					}
					ml.Add(NewMove(sq, tsq, Empty, Empty, KindNone))
					tsq = Square(int(tsq) + dir)
					target = p.pieces[tsq]
				}
			}
		}
	}

	p.generateCastlingMoves(ml)
}

// addPawnMove expands a quiet pawn advance into four promotions when it
// reaches the far rank.
func (p *Position) addPawnMove(ml *MoveList, from, to Square, promotions *[4]Piece, promoRank int) {
	if from.Rank() == promoRank {
		for _, promoted := range promotions {
			ml.Add(NewMove(from, to, Empty, promoted, KindNone))
		}
		return
	}
	ml.Add(NewMove(from, to, Empty, Empty, KindNone))
}

// addPawnCapture expands a pawn capture into four promotions when it
// reaches the far rank.
func (p *Position) addPawnCapture(ml *MoveList, from, to Square, captured Piece, promotions *[4]Piece, promoRank int) {
	if from.Rank() == promoRank {
		for _, promoted := range promotions {
			ml.Add(NewMove(from, to, captured, promoted, KindNone))
		}
		return
	}
	ml.Add(NewMove(from, to, captured, Empty, KindNone))
}

func (p *Position) generateWhitePawnMoves(ml *MoveList) {
	for i := uint8(0); i < p.pieceCount[WhitePawn]; i++ {
		sq := p.pieceList[WhitePawn][i]

		if p.pieces[sq+10] == Empty {
			p.addPawnMove(ml, sq, sq+10, &whitePromotions, 6)
			if sq.Rank() == 1 && p.pieces[sq+20] == Empty {
				ml.Add(NewMove(sq, sq+20, Empty, Empty, KindDoublePush))
			}
		}

		for _, capSq := range [2]Square{sq + 9, sq + 11} {
			target := p.pieces[capSq]
			if target != OffBoard && target != Empty && target.Color() == Black {
				p.addPawnCapture(ml, sq, capSq, target, &whitePromotions, 6)
			}
		}

		// The fixed offsets can land on the border (a pawn on h7 probes
		// index 99, the NoSquare sentinel), so en-passant candidates are
		// only compared when a target is actually set.
		if p.epSq != NoSquare {
			if sq+9 == p.epSq || sq+11 == p.epSq {
				ml.Add(NewMove(sq, p.epSq, Empty, Empty, KindEnPassant))
			}
		}
	}
}

func (p *Position) generateBlackPawnMoves(ml *MoveList) {
	for i := uint8(0); i < p.pieceCount[BlackPawn]; i++ {
		sq := p.pieceList[BlackPawn][i]

		if p.pieces[sq-10] == Empty {
			p.addPawnMove(ml, sq, sq-10, &blackPromotions, 1)
			if sq.Rank() == 6 && p.pieces[sq-20] == Empty {
				ml.Add(NewMove(sq, sq-20, Empty, Empty, KindDoublePush))
			}
		}

		for _, capSq := range [2]Square{sq - 9, sq - 11} {
			target := p.pieces[capSq]
			if target != OffBoard && target != Empty && target.Color() == White {
				p.addPawnCapture(ml, sq, capSq, target, &blackPromotions, 1)
			}
		}

		if p.epSq != NoSquare {
			if sq-9 == p.epSq || sq-11 == p.epSq {
				ml.Add(NewMove(sq, p.epSq, Empty, Empty, KindEnPassant))
			}
		}
	}
}

// generateCastlingMoves emits a castle as a single king move; the rook
// repositioning is implied by the kind. The king's destination square
// is not attack-tested here; that falls out of the caller's own-king
// legality check after the move is applied.
func (p *Position) generateCastlingMoves(ml *MoveList) {
	if p.side == White {
		if p.castling&WhiteKingSideCastle != 0 &&
			p.pieces[F1] == Empty && p.pieces[G1] == Empty &&
			!p.IsAttacked(E1, Black) && !p.IsAttacked(F1, Black) {
			ml.Add(NewMove(E1, G1, Empty, Empty, KindCastle))
		}
		if p.castling&WhiteQueenSideCastle != 0 &&
			p.pieces[D1] == Empty && p.pieces[C1] == Empty && p.pieces[B1] == Empty &&
			!p.IsAttacked(E1, Black) && !p.IsAttacked(D1, Black) {
			ml.Add(NewMove(E1, C1, Empty, Empty, KindCastle))
		}
		return
	}
	if p.castling&BlackKingSideCastle != 0 &&
		p.pieces[F8] == Empty && p.pieces[G8] == Empty &&
		!p.IsAttacked(E8, White) && !p.IsAttacked(F8, White) {
		ml.Add(NewMove(E8, G8, Empty, Empty, KindCastle))
	}
	if p.castling&BlackQueenSideCastle != 0 &&
		p.pieces[D8] == Empty && p.pieces[C8] == Empty && p.pieces[B8] == Empty &&
		!p.IsAttacked(E8, White) && !p.IsAttacked(D8, White) {
		ml.Add(NewMove(E8, C8, Empty, Empty, KindCastle))
	}
}
