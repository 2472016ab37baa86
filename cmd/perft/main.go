// Command perft walks the move tree to a fixed depth and counts leaf
// nodes, the standard way to validate move generation. Moves are
// generated pseudo-legally and filtered by the attack query against the
// mover's own king, exactly as a search driver would.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/hailam/searchcore/internal/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to the initial position)")
	depth := flag.Int("depth", 0, "perft depth (required unless -list)")
	divide := flag.Bool("divide", false, "print per-move node counts at the root")
	list := flag.Bool("list", false, "print the pseudo-legal move list and exit")
	compare := flag.Bool("compare", false, "cross-check node counts against dragontoothmg")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse FEN: %v\n", err)
		os.Exit(2)
	}

	if *list {
		var ml board.MoveList
		pos.GenerateMoves(&ml)
		fmt.Print(ml.String())
		return
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	start := time.Now()
	var nodes int64
	if *divide {
		nodes = perftDivide(pos, *depth)
	} else {
		nodes = perft(pos, *depth)
	}
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d  (%s)\n", *depth, nodes, elapsed.Round(time.Millisecond))

	if *compare {
		oracle := dragontoothmg.ParseFen(*fen)
		want := dragontoothmg.Perft(&oracle, *depth)
		if nodes != want {
			fmt.Fprintf(os.Stderr, "mismatch: dragontoothmg counts %d\n", want)
			os.Exit(1)
		}
		fmt.Println("dragontoothmg agrees")
	}
}

// perft counts legal leaf nodes: each pseudo-legal move is applied,
// discarded if it leaves the mover's king attacked, and recursed.
func perft(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var ml board.MoveList
	pos.GenerateMoves(&ml)

	var nodes int64
	mover := pos.SideToMove()
	for i := 0; i < ml.Len(); i++ {
		pos.MakeMove(ml.Get(i))
		if !pos.InCheck(mover) {
			nodes += perft(pos, depth-1)
		}
		pos.UndoMove()
	}
	return nodes
}

// perftDivide prints the node count under each legal root move.
func perftDivide(pos *board.Position, depth int) int64 {
	var ml board.MoveList
	pos.GenerateMoves(&ml)

	var total int64
	mover := pos.SideToMove()
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		pos.MakeMove(m)
		if !pos.InCheck(mover) {
			nodes := perft(pos, depth-1)
			fmt.Printf("%s: %d\n", m, nodes)
			total += nodes
		}
		pos.UndoMove()
	}
	return total
}
