package board

// Mailbox direction offsets. Sliders walk a direction until they leave
// the playing area or hit an occupied cell; jumpers probe each offset
// once.
var (
	knightDirs = [8]int{-8, -19, -21, -12, 8, 19, 21, 12}
	rookDirs   = [4]int{-1, -10, 1, 10}
	bishopDirs = [4]int{-9, -11, 11, 9}
	kingDirs   = [8]int{-1, -10, 1, 10, -9, -11, 11, 9}
)

// IsAttacked reports whether sq is attacked by any piece of the given
// side. Rays stop at the first occupied cell regardless of color; only
// that first occupant can deliver the attack along its ray.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// Pawns attack diagonally forward, so probe the two squares a pawn
	// of the attacking side would strike from.
	if by == White {
		if p.pieces[sq-11] == WhitePawn || p.pieces[sq-9] == WhitePawn {
			return true
		}
	} else {
		if p.pieces[sq+11] == BlackPawn || p.pieces[sq+9] == BlackPawn {
			return true
		}
	}

	for _, dir := range knightDirs {
		piece := p.pieces[int(sq)+dir]
		if piece != OffBoard && isKnight[piece] && piece.Color() == by {
			return true
		}
	}

	for _, dir := range rookDirs {
		tsq := int(sq) + dir
		piece := p.pieces[tsq]
		for piece != OffBoard {
			if piece != Empty {
				if isRookQueen[piece] && piece.Color() == by {
					return true
				}
				break
			}
			tsq += dir
			piece = p.pieces[tsq]
		}
	}

	for _, dir := range bishopDirs {
		tsq := int(sq) + dir
		piece := p.pieces[tsq]
		for piece != OffBoard {
			if piece != Empty {
				if isBishopQueen[piece] && piece.Color() == by {
					return true
				}
				break
			}
			tsq += dir
			piece = p.pieces[tsq]
		}
	}

	for _, dir := range kingDirs {
		piece := p.pieces[int(sq)+dir]
		if piece != OffBoard && isKing[piece] && piece.Color() == by {
			return true
		}
	}

	return false
}
