package scum

import (
	"fmt"

	"scum-server/internal/rng"
)

// PlayAutomated computes and performs a move for an automated seat. The move
// is chosen uniformly at random among the legal plays; if none exist the seat
// passes. Automated decisions go through the same legality primitives and
// state transitions as human ones.
func (g *Game) PlayAutomated(seatIndex int, source rng.Generator) error {
	if err := g.requireTurn(seatIndex); err != nil {
		return err
	}

	if g.seats[seatIndex].Human {
		return fmt.Errorf("seat %d is not automated", seatIndex)
	}

	plays := g.FindValidPlaysFor(seatIndex)
	if len(plays) == 0 {
		if len(g.round.table) == 0 {
			// any nonempty hand can lead, so an empty candidate set here is a
			// rules-engine defect, not a pass
			return fmt.Errorf("%w (seat %d)", ErrNoLegalLead, seatIndex)
		}

		return g.Pass(seatIndex)
	}

	return g.Play(seatIndex, plays[source.Intn(len(plays))])
}
