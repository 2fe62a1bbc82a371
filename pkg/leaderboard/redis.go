package leaderboard

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// key for the wins sorted set
const winsKey = "scum:leaderboard:wins"

// Redis is a Store backed by a redis sorted set
type Redis struct {
	client *redis.Client
}

// NewRedis returns a redis-backed store using the given client
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// RecordWin increments the win counter for the normalized name
func (r *Redis) RecordWin(ctx context.Context, name string) error {
	return r.client.ZIncrBy(ctx, winsKey, 1, Normalize(name)).Err()
}

// List returns every entry sorted by wins descending, ties broken by name ascending
func (r *Redis) List(ctx context.Context) ([]Entry, error) {
	members, err := r.client.ZRangeWithScores(ctx, winsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(members))
	for _, member := range members {
		name, ok := member.Member.(string)
		if !ok {
			continue
		}

		entries = append(entries, Entry{Name: name, Wins: int(member.Score)})
	}

	// redis orders ties lexically within the score; re-sort for the
	// wins-descending, name-ascending contract
	sortEntries(entries)
	return entries, nil
}
