package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())

	a.Equal(NewCard("3", Hearts), d.Cards[0])
	a.Equal(NewCard("2", Diamonds), d.Cards[51])

	// all 52 cards are pairwise distinct
	seen := make(map[string]bool)
	for _, card := range d.Cards {
		a.False(seen[card.ID], card.ID)
		seen[card.ID] = true
	}
	a.Equal(52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	unshuffled := d.HashCode()

	d.Shuffle(1)
	shuffled := d.HashCode()
	a.NotEqual(unshuffled, shuffled)
	a.Equal(int64(1), d.Seed())

	// same seed, same permutation
	d2 := New()
	d2.Shuffle(1)
	a.Equal(shuffled, d2.HashCode())

	// reshuffling starts from a fresh deck
	d.Shuffle(2)
	a.NotEqual(shuffled, d.HashCode())
	a.Equal(52, d.CardsLeft())

	a.Panics(func() {
		d.Shuffle(-1)
	})
}

func TestDeck_Shuffle_multisetPreserved(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(0)

	seen := make(map[string]bool)
	for _, card := range d.Cards {
		seen[card.ID] = true
	}

	a.Equal(52, len(seen))
}

// sanity check that the shuffle isn't obviously biased: over many trials the
// first card should land near-uniformly across the deck positions
func TestDeck_Shuffle_distribution(t *testing.T) {
	const trials = 2600
	counts := make(map[string]int)

	d := New()
	for i := 0; i < trials; i++ {
		d.Shuffle(int64(i + 1))
		counts[d.Cards[0].ID]++
	}

	// expected 50 per card; fail only on gross skew
	for id, count := range counts {
		assert.Greater(t, count, 10, id)
		assert.Less(t, count, 150, id)
	}
}

func TestDeck_Deal(t *testing.T) {
	for _, players := range []int{1, 2, 3, 4, 5, 8} {
		d := New()
		d.Shuffle(1)

		hands := d.Deal(players)
		assert.Equal(t, players, len(hands))
		assert.Equal(t, 0, d.CardsLeft())

		total := 0
		seen := make(map[string]bool)
		min, max := 53, 0
		for _, hand := range hands {
			total += len(hand)
			if len(hand) < min {
				min = len(hand)
			}
			if len(hand) > max {
				max = len(hand)
			}

			for _, card := range hand {
				assert.False(t, seen[card.ID])
				seen[card.ID] = true
			}

			// sorted ascending for display
			for i := 1; i < len(hand); i++ {
				assert.LessOrEqual(t, hand[i-1].Value, hand[i].Value)
			}
		}

		assert.Equal(t, 52, total)
		assert.LessOrEqual(t, max-min, 1)
	}

	assert.Panics(t, func() {
		New().Deal(0)
	})
}
