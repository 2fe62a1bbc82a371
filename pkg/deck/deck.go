package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"math/rand"
	"sort"
	"time"
)

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for _, face := range Faces {
			cards = append(cards, NewCard(face, suit))
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards using Fisher-Yates.
// You can manually specify the seed, or you can leave it as 0 for a time-based seed.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Seed returns the seed used to shuffle the deck
func (d *Deck) Seed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Deal distributes the entire deck round-robin across n hands, starting with
// hand 0. Each hand is sorted ascending by value for display. The deck is
// empty afterwards.
func (d *Deck) Deal(n int) [][]*Card {
	if n < 1 {
		panic("cannot deal to fewer than one hand")
	}

	hands := make([][]*Card, n)
	for i := range hands {
		hands[i] = make([]*Card, 0, (len(d.Cards)+n-1)/n)
	}

	for i, card := range d.Cards {
		hands[i%n] = append(hands[i%n], card)
	}

	d.Cards = nil

	for _, hand := range hands {
		Sort(hand)
	}

	return hands
}

// Sort sorts the cards ascending by value, ties broken by suit for stability
func Sort(cards []*Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Value == cards[j].Value {
			return cards[i].Suit < cards[j].Suit
		}

		return cards[i].Value < cards[j].Value
	})
}
