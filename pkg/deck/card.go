package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "Heart"
	Spades   Suit = "Spade"
	Clubs    Suit = "Club"
	Diamonds Suit = "Diamond"
)

// Suits is the list of suits in deck-build order
var Suits = []Suit{Hearts, Spades, Clubs, Diamonds}

// Faces is the list of card faces in ascending order of value.
// In Scum, 3 is the lowest card and 2 is the highest.
var Faces = []string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}

// card values under the 3-low, 2-high ordering
const (
	Three = iota + 1
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

var valueByFace = func() map[string]int {
	m := make(map[string]int, len(Faces))
	for i, face := range Faces {
		m[face] = i + 1
	}

	return m
}()

// Card is an individual playing card
type Card struct {
	ID    string `json:"id"`
	Face  string `json:"cardFace"`
	Suit  Suit   `json:"suit"`
	Value int    `json:"value"`
}

// NewCard returns the card for the face and suit
func NewCard(face string, suit Suit) *Card {
	value, ok := valueByFace[face]
	if !ok {
		panic(fmt.Sprintf("unknown face: %s", face))
	}

	return &Card{
		ID:    fmt.Sprintf("%s-%s", face, suit),
		Face:  face,
		Suit:  suit,
		Value: value,
	}
}

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", c.Face, suit)
}

// Equal returns true if the cards are equal (matches suit and face)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Face == card.Face
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^(10|[2-9jqka])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <face><suit> where face is one of
// 2-10, J, Q, K, A and suit is one of [cdhs].
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	face := strings.ToUpper(match[1])

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(face, suit)
}

// CardsFromString will return a slice of cards from a string like "3c,10h,As"
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 3c,10h,As
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		var suit string
		switch card.Suit {
		case Clubs:
			suit = "c"
		case Hearts:
			suit = "h"
		case Diamonds:
			suit = "d"
		case Spades:
			suit = "s"
		}

		c[i] = card.Face + suit
	}

	return strings.Join(c, ",")
}
