package leaderboard

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedis(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	store := NewRedis(client)

	entries, err := store.List(ctx)
	a.NoError(err)
	a.Equal(0, len(entries))

	a.NoError(store.RecordWin(ctx, " Alice"))
	a.NoError(store.RecordWin(ctx, "alice"))
	a.NoError(store.RecordWin(ctx, "zed"))
	a.NoError(store.RecordWin(ctx, "bob"))

	entries, err = store.List(ctx)
	a.NoError(err)
	a.Equal([]Entry{
		{Name: "alice", Wins: 2},
		{Name: "bob", Wins: 1},
		{Name: "zed", Wins: 1},
	}, entries)

	// survives across store instances sharing the backend
	entries, err = NewRedis(client).List(ctx)
	a.NoError(err)
	a.Equal(2, entries[0].Wins)
}

func TestRedis_backendDown(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedis(client)

	a.NoError(store.RecordWin(ctx, "alice"))
	mr.Close()

	a.Error(store.RecordWin(ctx, "alice"))

	_, err := store.List(ctx)
	a.Error(err)
}
