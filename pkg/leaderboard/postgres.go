package leaderboard

import (
	"context"
	"database/sql"
)

// Postgres is a Store backed by the leaderboard table
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a postgres-backed store using the given handle
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// RecordWin increments the win counter for the normalized name
func (p *Postgres) RecordWin(ctx context.Context, name string) error {
	const query = `
INSERT INTO leaderboard (name, wins)
VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE
SET wins    = leaderboard.wins + 1,
    updated = (NOW() AT TIME ZONE 'utc')`

	_, err := p.db.ExecContext(ctx, query, Normalize(name))
	return err
}

// List returns every entry sorted by wins descending, ties broken by name ascending
func (p *Postgres) List(ctx context.Context) ([]Entry, error) {
	const query = `
SELECT name, wins
FROM leaderboard
ORDER BY wins DESC, name ASC`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Name, &entry.Wins); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
