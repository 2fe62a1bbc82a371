// Package leaderboard records cumulative wins per player name. The store is a
// soft dependency: callers log and swallow its errors so a backend outage
// never blocks gameplay.
package leaderboard

import (
	"context"
	"sort"
	"strings"
)

// Entry is a single leaderboard row
type Entry struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// Store persists win counts across games
type Store interface {
	// RecordWin increments the win counter for the normalized name
	RecordWin(ctx context.Context, name string) error

	// List returns every entry sorted by wins descending, ties broken by name ascending
	List(ctx context.Context) ([]Entry, error)
}

// Normalize returns the canonical form of a player name: trimmed and lowercased
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wins == entries[j].Wins {
			return entries[i].Name < entries[j].Name
		}

		return entries[i].Wins > entries[j].Wins
	})
}
