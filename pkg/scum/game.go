package scum

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"scum-server/internal/rng"
	"scum-server/pkg/deck"
)

// Phase is the lifecycle phase of a game
type Phase string

// game phases
const (
	PhasePlaying   Phase = "playing"
	PhaseRoundOver Phase = "roundOver"
	PhaseGameOver  Phase = "gameOver"
)

// Options configures a game
type Options struct {
	// Rounds is the number of rounds played before the game ends. Defaults to 1.
	Rounds int

	// Seed fixes the shuffle seed. Leave 0 for a random deal each round.
	Seed int64
}

// DefaultOptions returns the standard single-round game options
func DefaultOptions() Options {
	return Options{Rounds: 1}
}

// Game is a single game of Scum: a fixed seat list playing one or more rounds
type Game struct {
	id      string
	options Options
	seats   []*Seat
	round   *round
	phase   Phase
	message string

	roundsPlayed int
	winnerName   string

	logger logrus.FieldLogger
}

// NewGame creates a game with one human seat (seat 0, named by the caller)
// followed by one automated seat per entry in aiNames, deals the first round,
// and gives seat 0 the lead.
func NewGame(id, humanName string, aiNames []string, options Options) (*Game, error) {
	if len(aiNames) < 1 {
		return nil, fmt.Errorf("game requires at least two seats, got %d", len(aiNames)+1)
	}

	if options.Rounds < 1 {
		options.Rounds = 1
	}

	seats := make([]*Seat, 0, len(aiNames)+1)
	seats = append(seats, newSeat("player-0", humanName, true))
	for i, name := range aiNames {
		seats = append(seats, newSeat(fmt.Sprintf("player-%d", i+1), name, false))
	}

	g := &Game{
		id:      id,
		options: options,
		seats:   seats,
		logger:  logrus.WithField("game", id),
	}

	g.deal()
	return g, nil
}

func (g *Game) deal() {
	seed := g.options.Seed
	if seed == 0 {
		seed = rng.Seed()
	}

	d := deck.New()
	d.Shuffle(seed)

	hands := d.Deal(len(g.seats))
	for i, seat := range g.seats {
		seat.hand = hands[i]
		seat.stillInRound = true
		seat.finishedRank = 0
	}

	// the first leader is always seat 0
	g.round = newRound(0)
	g.phase = PhasePlaying
	g.message = fmt.Sprintf("%s leads the first trick.", g.seats[0].Name)
	g.logger.WithField("seed", d.Seed()).Debug("dealt round")
}

// ID returns the game's opaque identifier
func (g *Game) ID() string {
	return g.id
}

// Phase returns the current lifecycle phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Message returns the current human-readable status line
func (g *Game) Message() string {
	return g.message
}

// Seats returns the seat list
func (g *Game) Seats() []*Seat {
	return g.seats
}

// CurrentSeat returns the index of the seat whose turn it is, or -1 if the
// round is over
func (g *Game) CurrentSeat() int {
	if g.phase != PhasePlaying {
		return -1
	}

	return g.round.current
}

// Winner returns the name of the seat that finished first once the game is over
func (g *Game) Winner() (string, bool) {
	if g.phase != PhaseGameOver {
		return "", false
	}

	return g.winnerName, true
}

// FindValidPlaysFor returns every legal play for the seat given the current pile
func (g *Game) FindValidPlaysFor(seatIndex int) [][]*deck.Card {
	return FindValidPlays(g.seats[seatIndex].hand, g.round.table, g.round.restriction)
}

// Play performs a play for the seat. The selection is validated against the
// seat's hand and the pile; on success the cards move to the pile, any special
// effect is applied, and the turn advances.
func (g *Game) Play(seatIndex int, selection []*deck.Card) error {
	if err := g.requireTurn(seatIndex); err != nil {
		return err
	}

	seat := g.seats[seatIndex]
	owned, err := seat.cardsFromSelection(selection)
	if err != nil {
		return err
	}

	if err := ValidatePlay(owned, g.round.table, g.round.restriction); err != nil {
		return err
	}

	value := owned[0].Value
	seat.removeCards(owned)
	seat.stillInRound = true
	// the pile holds the play to beat; each play replaces it
	g.round.table = owned
	g.round.passCount = 0
	g.round.lastToPlay = seatIndex
	g.round.restriction = restrictionForValue(value)
	g.message = fmt.Sprintf("%s played %s.", seat.Name, describePlay(owned))
	g.logger.WithFields(logrus.Fields{
		"seat":  seat.ID,
		"cards": deck.CardsToString(owned),
	}).Debug("play")

	if len(seat.hand) == 0 {
		g.finishSeat(seatIndex)
	}

	if g.seatsWithCards() <= 1 {
		g.endRound()
		return nil
	}

	cleared := false
	if value == deck.Two {
		g.round.clearPile()
		cleared = true
		g.message = fmt.Sprintf("%s cleared the pile with a 2!", seat.Name)
	}

	next, err := nextPlayerIndex(seatIndex, g.seats)
	if err != nil {
		return err
	}

	g.round.current = next
	if cleared {
		g.round.leader = next
	}

	return nil
}

// Pass passes the seat's turn. A seat leading an empty pile cannot pass. When
// every other seat holding cards has passed since the last play, the trick
// closes and the last player to play leads the next one.
func (g *Game) Pass(seatIndex int) error {
	if err := g.requireTurn(seatIndex); err != nil {
		return err
	}

	if len(g.round.table) == 0 {
		return ErrMustLead
	}

	seat := g.seats[seatIndex]
	seat.stillInRound = false
	g.round.passCount++
	// a pass burns through a one-shot restriction
	g.round.restriction = RestrictionNone
	g.message = fmt.Sprintf("%s passed.", seat.Name)
	g.logger.WithField("seat", seat.ID).Debug("pass")

	if g.round.lastToPlay >= 0 && g.round.passCount >= g.passesToClose() {
		return g.closeTrick()
	}

	next, err := nextPlayerIndex(seatIndex, g.seats)
	if err != nil {
		return err
	}

	g.round.current = next
	return nil
}

// NextRound deals the next round. Only valid while the game is in the
// roundOver phase.
func (g *Game) NextRound() error {
	switch g.phase {
	case PhaseGameOver:
		return ErrGameOver
	case PhasePlaying:
		return ErrRoundInProgress
	}

	g.deal()
	return nil
}

func (g *Game) requireTurn(seatIndex int) error {
	switch g.phase {
	case PhaseGameOver:
		return ErrGameOver
	case PhaseRoundOver:
		return ErrRoundOver
	}

	if seatIndex != g.round.current {
		return ErrNotPlayersTurn
	}

	return nil
}

// passesToClose returns the number of consecutive passes that close the trick:
// every seat still holding cards other than the last player to play.
func (g *Game) passesToClose() int {
	required := g.seatsWithCards()
	if last := g.round.lastToPlay; last >= 0 && len(g.seats[last].hand) > 0 {
		required--
	}

	return required
}

func (g *Game) seatsWithCards() int {
	count := 0
	for _, seat := range g.seats {
		if len(seat.hand) > 0 {
			count++
		}
	}

	return count
}

func (g *Game) finishSeat(seatIndex int) {
	seat := g.seats[seatIndex]
	rank := len(g.round.finishOrder) + 1
	seat.finishedRank = rank
	seat.stillInRound = false
	g.round.finishOrder = append(g.round.finishOrder, seatIndex)
	g.message = fmt.Sprintf("%s went out in %s place!", seat.Name, ordinal(rank))
	g.logger.WithFields(logrus.Fields{
		"seat": seat.ID,
		"rank": rank,
	}).Debug("seat finished")
}

// closeTrick ends the current trick: the pile clears, every seat with cards is
// back in the round, and the last player to play leads. If they have since
// finished, the lead moves to the next seat with cards.
func (g *Game) closeTrick() error {
	leader := g.round.lastToPlay
	if len(g.seats[leader].hand) == 0 {
		next, err := nextPlayerIndex(leader, g.seats)
		if err != nil {
			return err
		}
		leader = next
	}

	g.round.clearPile()
	for _, seat := range g.seats {
		seat.stillInRound = len(seat.hand) > 0
	}

	g.round.leader = leader
	g.round.current = leader
	g.message = fmt.Sprintf("%s won the trick and leads.", g.seats[leader].Name)
	return nil
}

// endRound assigns the final rank to the last seat holding cards, assigns
// roles from the finish order, and moves the game to roundOver or gameOver.
func (g *Game) endRound() {
	for i, seat := range g.seats {
		if len(seat.hand) > 0 && seat.finishedRank == 0 {
			seat.finishedRank = len(g.round.finishOrder) + 1
			seat.stillInRound = false
			g.round.finishOrder = append(g.round.finishOrder, i)
		}
	}

	for _, seat := range g.seats {
		seat.Role = roleForRank(seat.finishedRank, len(g.seats))
	}

	winner := g.seats[g.round.finishOrder[0]]
	g.roundsPlayed++
	g.round.current = -1

	if g.roundsPlayed >= g.options.Rounds {
		g.phase = PhaseGameOver
		g.winnerName = winner.Name
		g.message = fmt.Sprintf("%s wins the game!", winner.Name)
	} else {
		g.phase = PhaseRoundOver
		g.message = fmt.Sprintf("%s wins the round!", winner.Name)
	}

	g.logger.WithFields(logrus.Fields{
		"winner": winner.ID,
		"phase":  g.phase,
	}).Debug("round over")
}

func describePlay(cards []*deck.Card) string {
	face := cards[0].Face
	switch len(cards) {
	case 1:
		return fmt.Sprintf("a %s", face)
	case 2:
		return fmt.Sprintf("a pair of %ss", face)
	case 3:
		return fmt.Sprintf("three %ss", face)
	default:
		return fmt.Sprintf("four %ss", face)
	}
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
