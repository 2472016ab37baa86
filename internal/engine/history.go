package engine

import "github.com/hailam/searchcore/internal/board"

// historyPieces is the number of distinct piece identities the tables
// key on; white and black pieces are kept apart.
const historyPieces = 12

// pieceIndex maps a piece identity to its table row. Indexing with
// Empty or OffBoard is a programming error, not a lookup miss.
func pieceIndex(p board.Piece) int {
	if !p.Valid() {
		panic("engine: heuristic lookup with a non-piece identity")
	}
	return int(p) - 1
}

// HistoryTable is the plain history heuristic: additive bonuses keyed
// by (piece identity, destination square), fed by quiet moves that
// caused cutoffs and read back as an ordering weight.
type HistoryTable struct {
	table [historyPieces][board.BoardSquares]int32
}

// Add accumulates a bonus for the piece moving to sq.
func (h *HistoryTable) Add(piece board.Piece, sq board.Square, bonus int32) {
	h.table[pieceIndex(piece)][sq] += bonus
}

// Get returns the accumulated weight for the piece moving to sq.
func (h *HistoryTable) Get(piece board.Piece, sq board.Square) int32 {
	return h.table[pieceIndex(piece)][sq]
}

// Clear erases the table.
func (h *HistoryTable) Clear() {
	h.table = [historyPieces][board.BoardSquares]int32{}
}

// CounterMoveTable records the best reply to an opponent move, keyed by
// the piece now standing on that move's destination square and the
// square itself.
type CounterMoveTable struct {
	table [historyPieces][board.BoardSquares]board.Move
}

// Insert records m as the countermove to the move just played in pos.
// Nothing is recorded at the root or after a null move.
func (c *CounterMoveTable) Insert(pos *board.Position, m board.Move) {
	prev, ok := pos.PrevMove(1)
	if !ok || prev == board.NoMove {
		return
	}
	prevTo := prev.To()
	c.table[pieceIndex(pos.PieceAt(prevTo))][prevTo] = m
}

// Counter returns the recorded reply to the move just played in pos,
// or NoMove when there is no preceding move to key on.
func (c *CounterMoveTable) Counter(pos *board.Position) board.Move {
	prev, ok := pos.PrevMove(1)
	if !ok || prev == board.NoMove {
		return board.NoMove
	}
	prevTo := prev.To()
	return c.table[pieceIndex(pos.PieceAt(prevTo))][prevTo]
}

// IsCounter reports whether m is the recorded reply to the move just
// played in pos.
func (c *CounterMoveTable) IsCounter(pos *board.Position, m board.Move) bool {
	counter := c.Counter(pos)
	return counter != board.NoMove && counter == m
}

// FollowUpTable correlates a move made two plies ago with the current
// candidate, keyed by (piece, square) pairs for both. Flattened to one
// slice; the four-dimensional array would be the same memory with a
// clumsier clear.
type FollowUpTable struct {
	table []int32
}

const (
	followUpStride3 = board.BoardSquares
	followUpStride2 = historyPieces * followUpStride3
	followUpStride1 = board.BoardSquares * followUpStride2
	followUpSize    = historyPieces * followUpStride1
)

// NewFollowUpTable allocates the table.
func NewFollowUpTable() *FollowUpTable {
	return &FollowUpTable{table: make([]int32, followUpSize)}
}

func followUpIdx(piece1 board.Piece, sq1 board.Square, piece2 board.Piece, sq2 board.Square) int {
	return pieceIndex(piece1)*followUpStride1 + int(sq1)*followUpStride2 +
		pieceIndex(piece2)*followUpStride3 + int(sq2)
}

// followUpKey resolves the two-ply-back (piece, square) the table keys
// on. The piece that moved two plies ago may since have been captured
// on its destination square; in that case its identity comes from the
// intervening move's capture record rather than the live board. The
// lookback is skipped entirely when either preceding move is absent, or
// when the intervening move was an en-passant capture, whose captured
// pawn does not sit on the destination square.
func followUpKey(pos *board.Position) (piece board.Piece, sq board.Square, ok bool) {
	prev2, ok2 := pos.PrevMove(2)
	prev1, ok1 := pos.PrevMove(1)
	if !ok1 || !ok2 || prev1 == board.NoMove || prev2 == board.NoMove {
		return board.Empty, board.NoSquare, false
	}
	if prev1.Kind() == board.KindEnPassant {
		return board.Empty, board.NoSquare, false
	}

	sq = prev2.To()
	if captured := prev1.Captured(); captured != board.Empty && prev1.To() == sq {
		piece = captured
	} else {
		piece = pos.PieceAt(sq)
	}
	return piece, sq, true
}

// Add accumulates a bonus correlating the move two plies back in pos
// with the candidate move m, made by the piece standing on m's origin.
func (f *FollowUpTable) Add(pos *board.Position, m board.Move, bonus int32) {
	piece, sq, ok := followUpKey(pos)
	if !ok {
		return
	}
	f.table[followUpIdx(piece, sq, pos.PieceAt(m.From()), m.To())] += bonus
}

// Get returns the follow-up weight for the candidate move m, or zero
// when the two-ply lookback does not apply.
func (f *FollowUpTable) Get(pos *board.Position, m board.Move) int32 {
	piece, sq, ok := followUpKey(pos)
	if !ok {
		return 0
	}
	return f.table[followUpIdx(piece, sq, pos.PieceAt(m.From()), m.To())]
}

// Clear erases the table.
func (f *FollowUpTable) Clear() {
	for i := range f.table {
		f.table[i] = 0
	}
}
