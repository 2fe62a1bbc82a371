package leaderboard

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Wins do not survive a restart; it backs
// tests and deployments without a database.
type Memory struct {
	mu   sync.Mutex
	wins map[string]int
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		wins: make(map[string]int),
	}
}

// RecordWin increments the win counter for the normalized name
func (m *Memory) RecordWin(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.wins[Normalize(name)]++
	return nil
}

// List returns every entry sorted by wins descending, ties broken by name ascending
func (m *Memory) List(_ context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]Entry, 0, len(m.wins))
	for name, wins := range m.wins {
		entries = append(entries, Entry{Name: name, Wins: wins})
	}

	sortEntries(entries)
	return entries, nil
}
