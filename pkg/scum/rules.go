package scum

import (
	"sort"

	"scum-server/pkg/deck"
)

// Restriction constrains the next play on the pile. A restriction comes from
// the most recently played special card and expires after one play or pass.
type Restriction int

// restriction constants
const (
	// RestrictionNone means the plain higher-rank ordering applies
	RestrictionNone Restriction = iota

	// RestrictionSevenEight means a 7 was just played: the next play must be a 7 or an 8
	RestrictionSevenEight

	// RestrictionTenOrLower means a 10 was just played: the next play must be a 10 or lower
	RestrictionTenOrLower
)

// restrictionForValue returns the restriction a play of the given rank leaves
// on the pile. A 2 clears the pile instead, which the round handles separately.
func restrictionForValue(value int) Restriction {
	switch value {
	case deck.Seven:
		return RestrictionSevenEight
	case deck.Ten:
		return RestrictionTenOrLower
	}

	return RestrictionNone
}

// ValidatePlay decides whether the selection may be played on the pile.
// It returns nil for a legal play, or a ValidationError with the reason.
//
// An active restriction replaces the higher-rank comparison: after a 7 only
// a 7 or an 8 beats the pile, and after a 10 only a 10 or lower does. The
// matching-count rule always applies when following.
func ValidatePlay(selected, table []*deck.Card, restriction Restriction) error {
	if len(selected) == 0 {
		return ErrNoCardsSelected
	}

	value := selected[0].Value
	for _, card := range selected[1:] {
		if card.Value != value {
			return ErrMixedRanks
		}
	}

	if len(table) == 0 {
		if len(selected) > 4 {
			return ErrInvalidLead
		}
	} else if len(selected) != len(table) {
		return newWrongCountError(len(table))
	}

	switch restriction {
	case RestrictionSevenEight:
		if value != deck.Seven && value != deck.Eight {
			return ErrMustPlaySevenOrEight
		}
	case RestrictionTenOrLower:
		if value > deck.Ten {
			return ErrMustPlayTenOrLower
		}
	default:
		if len(table) > 0 && value <= table[0].Value {
			return ErrRankTooLow
		}
	}

	return nil
}

// FindValidPlays enumerates every legal play from the hand given the pile and
// the active restriction. For each rank in the hand it considers the groups of
// size 1 up to min(4, count) and keeps the ones ValidatePlay accepts. Plays
// are returned in ascending rank order, smallest group first.
func FindValidPlays(hand, table []*deck.Card, restriction Restriction) [][]*deck.Card {
	plays := make([][]*deck.Card, 0)
	if len(hand) == 0 {
		return plays
	}

	groups := make(map[int][]*deck.Card)
	values := make([]int, 0)
	for _, card := range hand {
		if _, ok := groups[card.Value]; !ok {
			values = append(values, card.Value)
		}
		groups[card.Value] = append(groups[card.Value], card)
	}
	sort.Ints(values)

	for _, value := range values {
		group := groups[value]
		max := len(group)
		if max > 4 {
			max = 4
		}

		for size := 1; size <= max; size++ {
			play := group[:size]
			if ValidatePlay(play, table, restriction) == nil {
				plays = append(plays, play)
			}
		}
	}

	return plays
}
