package scum

import (
	"scum-server/pkg/deck"
)

// round is the per-deal mutable state: the pile, the turn pointers, pass
// bookkeeping, and the order in which seats emptied their hands.
type round struct {
	table       []*deck.Card
	current     int
	leader      int
	lastToPlay  int // -1 until someone plays on the current trick
	passCount   int
	finishOrder []int // seat indices
	restriction Restriction
}

func newRound(leader int) *round {
	return &round{
		table:      make([]*deck.Card, 0),
		current:    leader,
		leader:     leader,
		lastToPlay: -1,
	}
}

// clearPile empties the table and removes any restriction, leaving the next
// player free to lead any group. Used when a 2 is played and when a trick closes.
func (r *round) clearPile() {
	r.table = make([]*deck.Card, 0)
	r.restriction = RestrictionNone
	r.passCount = 0
	r.lastToPlay = -1
}
