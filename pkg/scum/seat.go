package scum

import (
	"scum-server/pkg/deck"
)

// Seat is a single position at the table. Exactly one seat per game is human.
type Seat struct {
	ID    string
	Name  string
	Human bool

	// Role is assigned between rounds from the previous finish order
	Role string

	hand         []*deck.Card
	stillInRound bool
	finishedRank int // 0 until the hand empties
}

func newSeat(id, name string, human bool) *Seat {
	return &Seat{
		ID:    id,
		Name:  name,
		Human: human,
		hand:  make([]*deck.Card, 0),
	}
}

// Hand returns a shallow clone of the seat's hand
func (s *Seat) Hand() []*deck.Card {
	return append([]*deck.Card{}, s.hand...)
}

// HandSize returns the number of cards the seat holds
func (s *Seat) HandSize() int {
	return len(s.hand)
}

// FinishedRank returns the seat's finish rank, or 0 if it has not finished
func (s *Seat) FinishedRank() int {
	return s.finishedRank
}

// StillInRound returns true if the seat is eligible to act in the current trick
func (s *Seat) StillInRound() bool {
	return s.stillInRound
}

// cardsFromSelection maps a client-supplied selection onto the seat's own card
// instances. Duplicate selections of the same physical card are rejected.
func (s *Seat) cardsFromSelection(selection []*deck.Card) ([]*deck.Card, error) {
	owned := make([]*deck.Card, 0, len(selection))
	used := make(map[int]bool)

	for _, want := range selection {
		found := false
		for i, card := range s.hand {
			if used[i] || !card.Equal(want) {
				continue
			}

			owned = append(owned, card)
			used[i] = true
			found = true
			break
		}

		if !found {
			return nil, ErrCardNotInHand
		}
	}

	return owned, nil
}

// removeCards removes the given card instances from the hand
func (s *Seat) removeCards(cards []*deck.Card) {
	hand := make([]*deck.Card, 0, len(s.hand))
	for _, card := range s.hand {
		keep := true
		for _, removed := range cards {
			if card == removed {
				keep = false
				break
			}
		}

		if keep {
			hand = append(hand, card)
		}
	}

	s.hand = hand
}
