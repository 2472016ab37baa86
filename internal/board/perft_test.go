package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// perft counts leaf nodes of the legal game tree. Generation is
// pseudo-legal, so each move is applied and discarded if it leaves the
// mover's king attacked.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var ml MoveList
	p.GenerateMoves(&ml)

	var nodes int64
	mover := p.SideToMove()
	for i := 0; i < ml.Len(); i++ {
		p.MakeMove(ml.Get(i))
		if !p.InCheck(mover) {
			nodes += perft(p, depth-1)
		}
		p.UndoMove()
	}
	return nodes
}

func TestPerft(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		nodes []int64 // nodes[d-1] is the count at depth d
	}{
		{
			name:  "start",
			fen:   StartFEN,
			nodes: []int64{20, 400, 8902, 197281},
		},
		{
			name:  "kiwipete",
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			nodes: []int64{48, 2039, 97862},
		},
		{
			name:  "endgame",
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			nodes: []int64{14, 191, 2812, 43238},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParse(t, tc.fen)
			for d, want := range tc.nodes {
				if got := perft(pos, d+1); got != want {
					t.Errorf("depth %d: %d nodes, want %d", d+1, got, want)
				}
			}
		})
	}
}

// TestPerftAgainstOracle checks the move generator against an
// independent bitboard engine on positions with no published counts.
func TestPerftAgainstOracle(t *testing.T) {
	fens := []string{
		"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	}
	const depth = 3
	for _, fen := range fens {
		pos := mustParse(t, fen)
		oracle := dragontoothmg.ParseFen(fen)
		want := dragontoothmg.Perft(&oracle, depth)
		if got := perft(pos, depth); got != want {
			t.Errorf("%s: depth %d gave %d nodes, oracle says %d", fen, depth, got, want)
		}
	}
}
