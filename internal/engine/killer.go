package engine

import "github.com/hailam/searchcore/internal/board"

// KillerTable keeps two quiet cutoff moves per search ply. The ply
// index is the only key; collisions between distinct positions at the
// same ply are an accepted approximation.
type KillerTable struct {
	slots [MaxPly][2]board.Move
}

// Insert installs m as the first killer at ply, shifting the previous
// first killer into the second slot.
func (k *KillerTable) Insert(ply int, m board.Move) {
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

// At returns the two killers recorded at ply, most recent first.
func (k *KillerTable) At(ply int) [2]board.Move {
	return k.slots[ply]
}

// IsThirdOrder reports whether m was the first killer two plies up the
// tree, a weaker ordering signal than the current ply's own killers.
func (k *KillerTable) IsThirdOrder(ply int, m board.Move) bool {
	return ply > 2 && k.slots[ply-2][0] == m
}

// Clear erases all killers.
func (k *KillerTable) Clear() {
	k.slots = [MaxPly][2]board.Move{}
}
