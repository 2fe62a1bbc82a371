package scum

import (
	"errors"
	"fmt"
)

// ValidationError is a rejection reason safe to show to the player.
// The session state is unchanged when one is returned.
type ValidationError string

func (v ValidationError) Error() string {
	return string(v)
}

// player-facing rejections
var (
	// ErrNoCardsSelected is returned for an empty selection
	ErrNoCardsSelected = ValidationError("No cards selected.")

	// ErrMixedRanks is returned when the selected cards are not all the same rank
	ErrMixedRanks = ValidationError("Selected cards must have the same rank.")

	// ErrRankTooLow is returned when the selection does not beat the pile
	ErrRankTooLow = ValidationError("Must play a higher rank.")

	// ErrInvalidLead is returned when leading with more than four cards
	ErrInvalidLead = ValidationError("Invalid number of cards to lead.")

	// ErrMustPlaySevenOrEight is returned while a played 7 constrains the pile
	ErrMustPlaySevenOrEight = ValidationError("Must play a 7 or an 8.")

	// ErrMustPlayTenOrLower is returned while a played 10 constrains the pile
	ErrMustPlayTenOrLower = ValidationError("Must play a 10 or lower.")

	// ErrCardNotInHand is returned when the selection includes a card the player does not hold
	ErrCardNotInHand = ValidationError("You don't have that card.")

	// ErrNotPlayersTurn is returned when a player acts out of turn
	ErrNotPlayersTurn = ValidationError("It's not your turn.")

	// ErrMustLead prevents passing on an empty table
	ErrMustLead = ValidationError("You must play when leading a fresh pile.")

	// ErrRoundInProgress is returned when a next-round request arrives mid-round
	ErrRoundInProgress = ValidationError("The round is not over yet.")

	// ErrRoundOver is returned when a play or pass arrives after the round ended
	ErrRoundOver = ValidationError("The round is over.")

	// ErrGameOver is returned when an action is attempted on a finished game
	ErrGameOver = ValidationError("The game is over.")
)

// engine invariant violations. These indicate a server-side defect and are
// surfaced as a 5xx at the API boundary.
var (
	// ErrNoEligiblePlayer happens if the turn sequencer finds no seat with
	// cards while the round is not over
	ErrNoEligiblePlayer = errors.New("no eligible player remains")

	// ErrNoLegalLead happens if an automated seat holds cards but has no legal
	// play on an empty table. Any nonempty hand can lead, so this is unreachable
	// unless the rules engine is broken.
	ErrNoLegalLead = errors.New("automated seat has cards but no legal lead")
)

func newWrongCountError(n int) ValidationError {
	return ValidationError(fmt.Sprintf("Must play %d card(s).", n))
}
