// Package session owns the live games. Every mutating operation on a game is
// serialized behind that game's lock; different games proceed in parallel.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"scum-server/internal/rng"
	"scum-server/internal/util"
	"scum-server/pkg/deck"
	"scum-server/pkg/leaderboard"
	"scum-server/pkg/scum"
)

// ErrGameNotFound is returned for an unknown or expired game id
var ErrGameNotFound = errors.New("game not found")

// action types accepted by Apply
const (
	ActionPlay      = "play"
	ActionPass      = "pass"
	ActionAITurn    = "ai_turn"
	ActionNextRound = "next_round"
)

// Action is a requested mutation on a game
type Action struct {
	GameID string       `json:"gameId"`
	Type   string       `json:"action_type"`
	Cards  []*deck.Card `json:"cards,omitempty"`
}

// Options configures the manager
type Options struct {
	// AISeats is the number of automated opponents per game. Defaults to 3.
	AISeats int

	// Rounds is the number of rounds per game. Defaults to 1.
	Rounds int

	// TTL is how long an idle game survives. Defaults to an hour.
	TTL time.Duration
}

// Manager owns every active game session
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session

	store   leaderboard.Store
	rng     rng.Generator
	options Options
	logger  logrus.FieldLogger

	done chan struct{}
}

type session struct {
	mu         sync.Mutex
	game       *scum.Game
	lastActive time.Time
	winLogged  bool
}

// NewManager returns a manager recording wins to the given store
func NewManager(store leaderboard.Store, options Options) *Manager {
	if options.AISeats < 1 {
		options.AISeats = 3
	}

	if options.Rounds < 1 {
		options.Rounds = 1
	}

	if options.TTL <= 0 {
		options.TTL = time.Hour
	}

	return &Manager{
		sessions: make(map[string]*session),
		store:    store,
		rng:      rng.Crypto{},
		options:  options,
		logger:   logrus.WithField("component", "session"),
		done:     make(chan struct{}),
	}
}

// Start creates a new game for the named human player and returns its first snapshot
func (m *Manager) Start(_ context.Context, playerName string) (*scum.State, error) {
	name := leaderboard.Normalize(playerName)
	if name == "" {
		name = "player"
	}

	aiNames := util.RandomNames(m.rng, m.options.AISeats)
	game, err := scum.NewGame(uuid.New().String(), name, aiNames, scum.Options{
		Rounds: m.options.Rounds,
	})
	if err != nil {
		return nil, err
	}

	s := &session{
		game:       game,
		lastActive: time.Now(),
	}

	m.mu.Lock()
	m.sessions[game.ID()] = s
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"game":   game.ID(),
		"player": name,
	}).Info("game started")

	return game.State(), nil
}

// Apply performs an action on the game and returns the resulting snapshot.
// Actions on the same game are serialized; a ValidationError leaves the game
// state unchanged.
func (m *Manager) Apply(ctx context.Context, gameID string, action Action) (*scum.State, error) {
	m.mu.RLock()
	s, ok := m.sessions[gameID]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = time.Now()
	game := s.game

	if err := m.perform(game, action); err != nil {
		return nil, err
	}

	if _, over := game.Winner(); over && !s.winLogged {
		s.winLogged = true
		m.recordWin(ctx, game)
	}

	return game.State(), nil
}

func (m *Manager) perform(game *scum.Game, action Action) error {
	current := game.CurrentSeat()

	switch action.Type {
	case ActionPlay:
		if err := requireHumanTurn(game, current); err != nil {
			return err
		}
		return game.Play(current, action.Cards)
	case ActionPass:
		if err := requireHumanTurn(game, current); err != nil {
			return err
		}
		return game.Pass(current)
	case ActionAITurn:
		if current < 0 || game.Seats()[current].Human {
			return scum.ErrNotPlayersTurn
		}
		return game.PlayAutomated(current, m.rng)
	case ActionNextRound:
		return game.NextRound()
	}

	return scum.ValidationError(fmt.Sprintf("Unknown action: %s", action.Type))
}

// requireHumanTurn ensures a play/pass request is acting for the human seat.
// Out-of-phase requests fall through so the engine reports the right reason.
func requireHumanTurn(game *scum.Game, current int) error {
	if game.Phase() == scum.PhasePlaying && (current < 0 || !game.Seats()[current].Human) {
		return scum.ErrNotPlayersTurn
	}

	return nil
}

// recordWin logs the winner to the leaderboard. Store failures are logged and
// swallowed: the leaderboard must never corrupt or block a game.
func (m *Manager) recordWin(ctx context.Context, game *scum.Game) {
	winner, ok := game.Winner()
	if !ok {
		return
	}

	if err := m.store.RecordWin(ctx, winner); err != nil {
		m.logger.WithError(err).WithFields(logrus.Fields{
			"game":   game.ID(),
			"winner": winner,
		}).Error("could not record win")
		return
	}

	m.logger.WithFields(logrus.Fields{
		"game":   game.ID(),
		"winner": winner,
	}).Info("win recorded")
}

// StartSweeper begins reaping idle sessions in the background
func (m *Manager) StartSweeper() {
	go m.sweepLoop()
}

// Close stops the sweeper
func (m *Manager) Close() {
	close(m.done)
}

func (m *Manager) sweepLoop() {
	interval := m.options.TTL / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep(time.Now())
		case <-m.done:
			return
		}
	}
}

func (m *Manager) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		s.mu.Lock()
		expired := now.Sub(s.lastActive) > m.options.TTL
		s.mu.Unlock()

		if expired {
			delete(m.sessions, id)
			m.logger.WithField("game", id).Info("expired idle game")
		}
	}
}
