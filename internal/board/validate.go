package board

import "fmt"

// Validate cross-checks every index the position maintains against the
// grid. A non-nil error means a bug in move application or undo, not a
// reachable input condition; callers treat it as fatal.
func (p *Position) Validate() error {
	// Piece lists point at cells holding exactly that piece.
	for piece := WhitePawn; piece <= BlackKing; piece++ {
		for i := uint8(0); i < p.pieceCount[piece]; i++ {
			sq := p.pieceList[piece][i]
			if p.pieces[sq] != piece {
				return fmt.Errorf("piece list %v[%d] points at %s holding %v", piece, i, sq, p.pieces[sq])
			}
		}
	}

	// Recompute every counter from the grid.
	var (
		pieceCount  [pieceKinds]uint8
		bigPieces   [2]uint8
		majorPieces [2]uint8
		minorPieces [2]uint8
		material    [2]int
	)
	for sq64 := 0; sq64 < 64; sq64++ {
		piece := p.pieces[SquareFrom64(sq64)]
		if piece == Empty {
			continue
		}
		color := piece.Color()
		pieceCount[piece]++
		if piece.IsBig() {
			bigPieces[color]++
		}
		if piece.IsMajor() {
			majorPieces[color]++
		}
		if piece.IsMinor() {
			minorPieces[color]++
		}
		material[color] += piece.Value()
	}
	for piece := WhitePawn; piece <= BlackKing; piece++ {
		if pieceCount[piece] != p.pieceCount[piece] {
			return fmt.Errorf("piece count for %v: grid has %d, list has %d", piece, pieceCount[piece], p.pieceCount[piece])
		}
	}
	for c := White; c <= Black; c++ {
		if bigPieces[c] != p.bigPieces[c] {
			return fmt.Errorf("%v big-piece count: grid has %d, counter has %d", c, bigPieces[c], p.bigPieces[c])
		}
		if majorPieces[c] != p.majorPieces[c] {
			return fmt.Errorf("%v major-piece count: grid has %d, counter has %d", c, majorPieces[c], p.majorPieces[c])
		}
		if minorPieces[c] != p.minorPieces[c] {
			return fmt.Errorf("%v minor-piece count: grid has %d, counter has %d", c, minorPieces[c], p.minorPieces[c])
		}
		if material[c] != p.material[c] {
			return fmt.Errorf("%v material: grid has %d, counter has %d", c, material[c], p.material[c])
		}
	}

	// Pawn bitboard population counts and square membership.
	if got, want := p.pawns[White].PopCount(), int(p.pieceCount[WhitePawn]); got != want {
		return fmt.Errorf("white pawn bitboard has %d bits, count is %d", got, want)
	}
	if got, want := p.pawns[Black].PopCount(), int(p.pieceCount[BlackPawn]); got != want {
		return fmt.Errorf("black pawn bitboard has %d bits, count is %d", got, want)
	}
	if got, want := p.pawns[Both].PopCount(), int(p.pieceCount[WhitePawn]+p.pieceCount[BlackPawn]); got != want {
		return fmt.Errorf("combined pawn bitboard has %d bits, counts sum to %d", got, want)
	}
	for bb, want := p.pawns[White], WhitePawn; bb != 0; {
		sq := SquareFrom64(bb.PopLSB())
		if p.pieces[sq] != want {
			return fmt.Errorf("white pawn bit set on %s holding %v", sq, p.pieces[sq])
		}
	}
	for bb, want := p.pawns[Black], BlackPawn; bb != 0; {
		sq := SquareFrom64(bb.PopLSB())
		if p.pieces[sq] != want {
			return fmt.Errorf("black pawn bit set on %s holding %v", sq, p.pieces[sq])
		}
	}
	for bb := p.pawns[Both]; bb != 0; {
		sq := SquareFrom64(bb.PopLSB())
		if !p.pieces[sq].IsPawn() {
			return fmt.Errorf("combined pawn bit set on %s holding %v", sq, p.pieces[sq])
		}
	}

	if p.side != White && p.side != Black {
		return fmt.Errorf("side to move is %v", p.side)
	}

	if fresh := p.ComputeHash(); fresh != p.hash {
		return fmt.Errorf("hash key %016x does not match fresh derivation %016x", p.hash, fresh)
	}

	if p.epSq != NoSquare {
		rank := p.epSq.Rank()
		if !(rank == 5 && p.side == White) && !(rank == 2 && p.side == Black) {
			return fmt.Errorf("en-passant square %s inconsistent with %v to move", p.epSq, p.side)
		}
	}

	if p.fiftyMove >= 100 {
		return fmt.Errorf("half-move clock reached %d", p.fiftyMove)
	}

	if p.pieces[p.kingSq[White]] != WhiteKing {
		return fmt.Errorf("white king square %s holds %v", p.kingSq[White], p.pieces[p.kingSq[White]])
	}
	if p.pieces[p.kingSq[Black]] != BlackKing {
		return fmt.Errorf("black king square %s holds %v", p.kingSq[Black], p.pieces[p.kingSq[Black]])
	}

	return nil
}
