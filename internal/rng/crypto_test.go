package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	a.Equal(0, c.Intn(1))

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := c.Intn(5)
		a.GreaterOrEqual(v, 0)
		a.Less(v, 5)
		seen[v] = true
	}

	// over a thousand draws every bucket should appear
	a.Equal(5, len(seen))
}

func TestSeed(t *testing.T) {
	a := assert.New(t)

	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		s := Seed()
		a.Greater(s, int64(0))
		seen[s] = true
	}

	// collisions across 63 bits would indicate a broken source
	a.Equal(100, len(seen))
}
