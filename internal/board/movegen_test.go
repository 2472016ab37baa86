package board

import "testing"

func generate(t *testing.T, fen string) (*Position, *MoveList) {
	t.Helper()
	pos := mustParse(t, fen)
	var ml MoveList
	pos.GenerateMoves(&ml)
	return pos, &ml
}

func TestGenerateStartPosition(t *testing.T) {
	pos, ml := generate(t, StartFEN)
	if ml.Len() != 20 {
		t.Fatalf("generated %d moves, want 20:\n%s", ml.Len(), ml)
	}

	pawnMoves, knightMoves := 0, 0
	for i := 0; i < ml.Len(); i++ {
		switch mover := pos.PieceAt(ml.Get(i).From()); {
		case mover.IsPawn():
			pawnMoves++
		case isKnight[mover]:
			knightMoves++
		default:
			t.Errorf("unexpected mover %v for %s", mover, ml.Get(i))
		}
	}
	if pawnMoves != 16 || knightMoves != 4 {
		t.Errorf("pawn/knight moves = %d/%d, want 16/4", pawnMoves, knightMoves)
	}
}

func TestGenerateCastling(t *testing.T) {
	// Both white castles are clear: intervening squares empty, king and
	// transit squares unattacked.
	_, ml := generate(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	kingSide := NewMove(E1, G1, Empty, Empty, KindCastle)
	queenSide := NewMove(E1, C1, Empty, Empty, KindCastle)
	if !ml.Contains(kingSide) {
		t.Errorf("king-side castle missing:\n%s", ml)
	}
	if !ml.Contains(queenSide) {
		t.Errorf("queen-side castle missing:\n%s", ml)
	}

	// A rook eyeing the transit square forbids that castle only.
	_, ml = generate(t, "4k3/8/8/8/8/5r2/8/R3K2R w KQ - 0 1")
	if ml.Contains(NewMove(E1, G1, Empty, Empty, KindCastle)) {
		t.Error("king-side castle generated through an attacked transit square")
	}
	if !ml.Contains(NewMove(E1, C1, Empty, Empty, KindCastle)) {
		t.Error("queen-side castle missing when only the king side is unsafe")
	}

	// Cleared rights generate nothing even with the path open.
	_, ml = generate(t, "4k3/8/8/8/8/8/8/R3K2R w - - 0 1")
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).Kind() == KindCastle {
			t.Errorf("castle %s generated without rights", ml.Get(i))
		}
	}
}

func TestGeneratePromotions(t *testing.T) {
	// A push to the far rank expands into exactly four moves.
	_, ml := generate(t, "8/P6k/8/8/8/8/7K/8 w - - 0 1")
	pushes := 0
	seen := map[Piece]bool{}
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.From() == sq(t, "a7") && m.To() == sq(t, "a8") {
			pushes++
			seen[m.Promoted()] = true
		}
	}
	if pushes != 4 {
		t.Errorf("promotion pushes = %d, want 4", pushes)
	}
	for _, piece := range []Piece{WhiteQueen, WhiteKnight, WhiteRook, WhiteBishop} {
		if !seen[piece] {
			t.Errorf("missing promotion to %v", piece)
		}
	}

	// A capture onto the far rank expands the same way.
	_, ml = generate(t, "1n5k/P7/8/8/8/8/7K/8 w - - 0 1")
	captures := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.From() == sq(t, "a7") && m.To() == sq(t, "b8") {
			if m.Captured() != BlackKnight || m.Promoted() == Empty {
				t.Errorf("bad promotion capture %s: captured %v promoted %v", m, m.Captured(), m.Promoted())
			}
			captures++
		}
	}
	if captures != 4 {
		t.Errorf("promotion captures = %d, want 4", captures)
	}
}

func TestGenerateEnPassant(t *testing.T) {
	_, ml := generate(t, "rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 2")
	ep := NewMove(sq(t, "e4"), sq(t, "d3"), Empty, Empty, KindEnPassant)
	if !ml.Contains(ep) {
		t.Errorf("en-passant capture missing:\n%s", ml)
	}

	// Without a target set the fixed pawn offsets must not produce one.
	_, ml = generate(t, "rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq - 0 2")
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).Kind() == KindEnPassant {
			t.Errorf("en-passant %s generated with no target set", ml.Get(i))
		}
	}
}

// A pawn on h7 probes mailbox index 99, which is the NoSquare sentinel;
// with no en-passant target set the generator must not conjure a
// capture onto it.
func TestNoEnPassantOntoSentinel(t *testing.T) {
	_, ml := generate(t, "7k/7P/8/8/8/8/8/7K w - - 0 1")
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.Kind() == KindEnPassant {
			t.Errorf("phantom en-passant %s", m)
		}
		if !m.To().OnBoard() {
			t.Errorf("move %s targets off-board square", m)
		}
	}
}

func TestGenerateSliders(t *testing.T) {
	// Lone rook on an empty board: 14 moves.
	_, ml := generate(t, "7k/8/8/8/3R4/8/8/7K w - - 0 1")
	rookMoves := 0
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).From() == sq(t, "d4") {
			rookMoves++
		}
	}
	if rookMoves != 14 {
		t.Errorf("rook moves = %d, want 14", rookMoves)
	}

	// A ray stops with a capture on the first enemy piece and emits
	// nothing behind it or on own pieces.
	_, ml = generate(t, "7k/8/3p4/8/3R4/8/3P4/7K w - - 0 1")
	var quiet, caps int
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.From() != sq(t, "d4") {
			continue
		}
		if m.Captured() != Empty {
			caps++
			if m.To() != sq(t, "d6") {
				t.Errorf("rook capture on %s, want d6", m.To())
			}
		} else {
			quiet++
		}
		if m.To() == sq(t, "d2") || m.To() == sq(t, "d7") {
			t.Errorf("rook move %s onto own piece or through a blocker", m)
		}
	}
	if caps != 1 {
		t.Errorf("rook captures = %d, want 1", caps)
	}
	if quiet != 9 {
		t.Errorf("rook quiet moves = %d, want 9 (d5, d3 and the full rank)", quiet)
	}
}
