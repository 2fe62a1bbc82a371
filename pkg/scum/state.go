package scum

import (
	"fmt"

	"scum-server/pkg/deck"
)

// State is the full game-state snapshot returned to clients.
// Clients must treat unknown fields as forward-compatible.
type State struct {
	GameID             string         `json:"gameId"`
	GamePhase          Phase          `json:"gamePhase"`
	Players            []*PlayerState `json:"players"`
	CardsOnTable       []*deck.Card   `json:"cardsOnTable"`
	CurrentPlayerIndex int            `json:"currentPlayerIndex"`
	GameMessage        string         `json:"gameMessage"`
}

// PlayerState is one seat in the snapshot. Opponents' hands are masked: the
// card count is preserved so clients can render card backs, but the faces are
// hidden.
type PlayerState struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	IsHuman        bool         `json:"isHuman"`
	Hand           []*deck.Card `json:"hand"`
	IsStillInRound bool         `json:"isStillInRound"`
	FinishedRank   int          `json:"finishedRank,omitempty"`
	Role           string       `json:"role,omitempty"`
}

// State returns the snapshot as seen by the human seat: their own hand is
// visible and every other hand is masked.
func (g *Game) State() *State {
	players := make([]*PlayerState, len(g.seats))
	for i, seat := range g.seats {
		hand := seat.Hand()
		if !seat.Human {
			hand = maskedHand(seat.ID, len(hand))
		}

		players[i] = &PlayerState{
			ID:             seat.ID,
			Name:           seat.Name,
			IsHuman:        seat.Human,
			Hand:           hand,
			IsStillInRound: seat.stillInRound,
			FinishedRank:   seat.finishedRank,
			Role:           seat.Role,
		}
	}

	return &State{
		GameID:             g.id,
		GamePhase:          g.phase,
		Players:            players,
		CardsOnTable:       append([]*deck.Card{}, g.round.table...),
		CurrentPlayerIndex: g.CurrentSeat(),
		GameMessage:        g.message,
	}
}

func maskedHand(seatID string, n int) []*deck.Card {
	hand := make([]*deck.Card, n)
	for i := range hand {
		hand[i] = &deck.Card{ID: fmt.Sprintf("hidden-%s-%d", seatID, i)}
	}

	return hand
}
