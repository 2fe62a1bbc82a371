package scum

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scum-server/pkg/deck"
)

func cards(s string) []*deck.Card {
	return deck.CardsFromString(s)
}

// newTestGame builds a game and overwrites the dealt hands with the given
// ones, seat 0 first. Seat 0 is the human seat and leads.
func newTestGame(t *testing.T, hands ...string) *Game {
	t.Helper()

	names := make([]string, len(hands)-1)
	for i := range names {
		names[i] = string(rune('b' + i))
	}

	game, err := NewGame("test-game", "a", names, DefaultOptions())
	assert.NoError(t, err)

	for i, hand := range hands {
		game.seats[i].hand = cards(hand)
		game.seats[i].stillInRound = true
		game.seats[i].finishedRank = 0
	}

	game.round = newRound(0)
	return game
}

// fakeRNG always picks the first candidate
type fakeRNG struct{}

func (fakeRNG) Intn(int) int {
	return 0
}
