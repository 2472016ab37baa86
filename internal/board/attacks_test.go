package board

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func sq(t *testing.T, name string) Square {
	t.Helper()
	s, err := ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return s
}

func TestIsAttackedRaysAndBlockers(t *testing.T) {
	pos := mustParse(t, "4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	if !pos.IsAttacked(E1, Black) {
		t.Error("e1 not attacked by rook on open file")
	}

	// A blocker on the ray shields the squares behind it.
	pos = mustParse(t, "4r3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	if pos.IsAttacked(E1, Black) {
		t.Error("e1 attacked through a blocking pawn")
	}
	if !pos.IsAttacked(sq(t, "e4"), Black) {
		t.Error("blocker itself not attacked")
	}

	pos = mustParse(t, "8/8/8/8/1b6/8/8/4K3 w - - 0 1")
	if !pos.IsAttacked(E1, Black) {
		t.Error("e1 not attacked by bishop on the diagonal")
	}

	pos = mustParse(t, "8/8/8/8/8/8/2p5/8 w - - 0 1")
	if !pos.IsAttacked(sq(t, "b1"), Black) || !pos.IsAttacked(sq(t, "d1"), Black) {
		t.Error("pawn's diagonal-forward squares not reported attacked")
	}
	if pos.IsAttacked(sq(t, "c1"), Black) {
		t.Error("square directly ahead of pawn reported attacked")
	}
}

// replaceSquare rebuilds fen with the given square forced to hold
// piece, the side to move forced, and en passant and castling cleared.
func replaceSquare(t *testing.T, pos *Position, target Square, piece Piece, stm Color) *Position {
	t.Helper()
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			cell := NewSquare(file, rank)
			content := pos.PieceAt(cell)
			if cell == target {
				content = piece
			}
			if content == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(content.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	side := " w"
	if stm == Black {
		side = " b"
	}
	return mustParse(t, sb.String()+side+" - - 0 1")
}

// TestAttackSymmetry checks that IsAttacked agrees with an exhaustive
// scan of generated captures: with a victim placed on the square, some
// pseudo-legal capture lands there exactly when the square is attacked.
func TestAttackSymmetry(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos := mustParse(t, fen)
		for _, attacker := range []Color{White, Black} {
			victim := BlackKnight
			if attacker == Black {
				victim = WhiteKnight
			}
			for sq64 := 0; sq64 < 64; sq64++ {
				target := SquareFrom64(sq64)
				probe := replaceSquare(t, pos, target, victim, attacker)

				attacked := probe.IsAttacked(target, attacker)

				var ml MoveList
				probe.GenerateMoves(&ml)
				captured := false
				for i := 0; i < ml.Len(); i++ {
					m := ml.Get(i)
					if m.To() == target && m.Captured() != Empty {
						captured = true
						break
					}
				}

				if attacked != captured {
					t.Errorf("%s: square %s: IsAttacked(%v)=%v but capture scan says %v",
						fen, target, attacker, attacked, captured)
				}
			}
		}
	}
}
