// Package engine provides the search-support caches: a two-slot
// transposition table and the move-ordering heuristic tables.
package engine

import (
	"fmt"
	"unsafe"

	"github.com/hailam/searchcore/internal/board"
)

// Score bounds shared with the search driver.
const (
	// MaxPly bounds the ply-from-root depth a search may reach.
	MaxPly = 128

	// Infinity exceeds every reachable score.
	Infinity int32 = 32500

	// MateScore is the value of mate at the root; mate in N plies is
	// MateScore - N.
	MateScore int32 = 32000

	// mateThreshold separates checkmate-proximity scores, which need
	// ply rebasing, from ordinary evaluations.
	mateThreshold = MateScore - int32(MaxPly)
)

// Flag is the bound kind of a stored score.
type Flag uint8

const (
	FlagNone  Flag = iota
	FlagUpper      // score failed low: at most the stored value
	FlagLower      // score failed high: at least the stored value
	FlagExact
)

// Entry is one stored search result. Entries are value types; a slot is
// replaced wholesale, never mutated field by field.
type Entry struct {
	Key   uint64 // full hash, verified on probe to detect collisions
	Move  board.Move
	Score int32
	Depth int8
	Flag  Flag
}

// bucket holds two competing entries: depthPreferred keeps the deepest
// result seen for its index, alwaysReplace admits every newer one.
type bucket struct {
	depthPreferred Entry
	alwaysReplace  Entry
}

// TranspositionTable is a fixed-capacity cache of search results keyed
// by Zobrist hash. It may be shared by concurrent search workers
// without locking: every entry carries its own key and bound kind and
// is verified against the probe's key, so a racing overwrite costs at
// worst an ordering hint or a missed cutoff, never a wrong answer
// trusted as right.
type TranspositionTable struct {
	buckets []bucket
}

// NewTranspositionTable creates a table using about sizeMB megabytes.
// The bucket count is the largest prime fitting the budget, which
// spreads modulo-indexed keys better than a round number.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	bucketSize := uint64(unsafe.Sizeof(bucket{}))
	count := uint64(sizeMB) * 1024 * 1024 / bucketSize
	if count < 2 {
		count = 2
	}
	return &TranspositionTable{buckets: make([]bucket, largestPrimeAtMost(count))}
}

func largestPrimeAtMost(n uint64) uint64 {
	for ; n > 2; n-- {
		if isPrime(n) {
			return n
		}
	}
	return 2
}

func isPrime(n uint64) bool {
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Size returns the number of buckets.
func (tt *TranspositionTable) Size() int {
	return len(tt.buckets)
}

// Clear erases every entry.
func (tt *TranspositionTable) Clear() {
	for i := range tt.buckets {
		tt.buckets[i] = bucket{}
	}
}

// Store records a search result. Mate-proximity scores are rebased by
// the current ply from root so the stored value is independent of where
// in the tree it was found. The entry goes into the depth-preferred
// slot when at least as deep as the incumbent, otherwise into the
// always-replace slot, so shallow frequent writes never evict a deep
// result.
func (tt *TranspositionTable) Store(key uint64, ply int, best board.Move, score int32, flag Flag, depth int8) {
	if score > mateThreshold {
		score += int32(ply)
	} else if score < -mateThreshold {
		score -= int32(ply)
	}

	slot := &tt.buckets[key%uint64(len(tt.buckets))]
	entry := Entry{Key: key, Move: best, Score: score, Depth: depth, Flag: flag}

	if depth >= slot.depthPreferred.Depth {
		slot.depthPreferred = entry
	} else {
		slot.alwaysReplace = entry
	}
}

// ProbeKind classifies a probe outcome. Miss and an insufficient-depth
// move hint are ordinary results, not errors.
type ProbeKind uint8

const (
	ProbeMiss ProbeKind = iota
	// ProbeMove means an entry matched but its score is unusable here;
	// the stored move is still worth trying first.
	ProbeMove
	// ProbeCutoff means the stored score resolves this node at the
	// requested depth and bounds.
	ProbeCutoff
)

// ProbeResult is the outcome of a table probe.
type ProbeResult struct {
	Kind  ProbeKind
	Move  board.Move
	Score int32
}

// Probe looks the key up in its bucket. A slot only matches on full key
// equality; an index collision with a different key is a miss. An entry
// shallower than the requested depth yields only its move. A deep
// enough entry has its mate scores rebased back to the current ply and
// resolves by bound kind: exact scores cut off outright, lower bounds
// cut off against beta, upper bounds against alpha; otherwise the move
// alone is returned.
func (tt *TranspositionTable) Probe(key uint64, ply int, alpha, beta int32, depth int8) ProbeResult {
	slot := &tt.buckets[key%uint64(len(tt.buckets))]

	var entry Entry
	switch key {
	case slot.depthPreferred.Key:
		entry = slot.depthPreferred
	case slot.alwaysReplace.Key:
		entry = slot.alwaysReplace
	default:
		return ProbeResult{Kind: ProbeMiss}
	}

	if entry.Depth >= depth {
		score := entry.Score
		if score > mateThreshold {
			score -= int32(ply)
		} else if score < -mateThreshold {
			score += int32(ply)
		}

		switch entry.Flag {
		case FlagNone:
			// A matched, sufficiently deep entry always carries a bound;
			// anything else is a store-side bug.
			panic(fmt.Sprintf("engine: transposition entry %016x has no bound kind", entry.Key))
		case FlagUpper:
			if score <= alpha {
				return ProbeResult{Kind: ProbeCutoff, Move: entry.Move, Score: alpha}
			}
		case FlagLower:
			if score >= beta {
				return ProbeResult{Kind: ProbeCutoff, Move: entry.Move, Score: beta}
			}
		case FlagExact:
			return ProbeResult{Kind: ProbeCutoff, Move: entry.Move, Score: score}
		}
	}

	return ProbeResult{Kind: ProbeMove, Move: entry.Move}
}
