package scum

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scum-server/pkg/deck"
)

func TestValidatePlay(t *testing.T) {
	tests := []struct {
		name        string
		selected    string
		table       string
		restriction Restriction
		expected    error
	}{
		{"empty selection", "", "", RestrictionNone, ErrNoCardsSelected},
		{"mixed ranks", "3h,4h", "", RestrictionNone, ErrMixedRanks},
		{"lead single", "3h", "", RestrictionNone, nil},
		{"lead pair", "3h,3s", "", RestrictionNone, nil},
		{"lead quad", "3h,3s,3c,3d", "", RestrictionNone, nil},
		{"follow higher single", "5h", "4c", RestrictionNone, nil},
		{"follow equal rank", "4h", "4c", RestrictionNone, ErrRankTooLow},
		{"follow lower rank", "3h", "4c", RestrictionNone, ErrRankTooLow},
		{"follow wrong count", "5h", "4c,4d", RestrictionNone, newWrongCountError(2)},
		{"follow pair over pair", "5h,5s", "4c,4d", RestrictionNone, nil},
		{"two beats ace", "2h", "Ac", RestrictionNone, nil},
		{"ace loses to two", "Ah", "2c", RestrictionNone, ErrRankTooLow},

		{"seven rule allows seven", "7h", "7c", RestrictionSevenEight, nil},
		{"seven rule allows eight", "8h", "7c", RestrictionSevenEight, nil},
		{"seven rule rejects nine", "9h", "7c", RestrictionSevenEight, ErrMustPlaySevenOrEight},
		{"seven rule rejects two", "2h", "7c", RestrictionSevenEight, ErrMustPlaySevenOrEight},
		{"seven rule keeps count", "7h", "7c,7d", RestrictionSevenEight, newWrongCountError(2)},

		{"ten rule allows lower", "3h", "10c", RestrictionTenOrLower, nil},
		{"ten rule allows another ten", "10h", "10c", RestrictionTenOrLower, nil},
		{"ten rule rejects jack", "Jh", "10c", RestrictionTenOrLower, ErrMustPlayTenOrLower},
		{"ten rule rejects two", "2h", "10c", RestrictionTenOrLower, ErrMustPlayTenOrLower},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidatePlay(cards(test.selected), cards(test.table), test.restriction)
			if test.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, test.expected, err)
			}
		})
	}
}

func TestValidatePlay_leadTooMany(t *testing.T) {
	selected := []*deck.Card{
		deck.CardFromString("3h"),
		deck.CardFromString("3s"),
		deck.CardFromString("3c"),
		deck.CardFromString("3d"),
		deck.CardFromString("3h"),
	}

	assert.Equal(t, ErrInvalidLead, ValidatePlay(selected, nil, RestrictionNone))
}

func Test_restrictionForValue(t *testing.T) {
	a := assert.New(t)

	a.Equal(RestrictionSevenEight, restrictionForValue(deck.Seven))
	a.Equal(RestrictionTenOrLower, restrictionForValue(deck.Ten))
	a.Equal(RestrictionNone, restrictionForValue(deck.Eight))
	a.Equal(RestrictionNone, restrictionForValue(deck.Two))
	a.Equal(RestrictionNone, restrictionForValue(deck.Ace))
}

func TestFindValidPlays(t *testing.T) {
	a := assert.New(t)

	a.Empty(FindValidPlays(nil, nil, RestrictionNone))

	// leading: every group size from every rank, ascending
	plays := FindValidPlays(cards("3h,3s,5c"), nil, RestrictionNone)
	a.Equal(3, len(plays))
	a.Equal("3h", deck.CardsToString(plays[0]))
	a.Equal("3h,3s", deck.CardsToString(plays[1]))
	a.Equal("5c", deck.CardsToString(plays[2]))

	// following a pair of 6s: only higher pairs qualify
	plays = FindValidPlays(cards("5h,5s,7c,7d,Ah"), cards("6c,6d"), RestrictionNone)
	a.Equal(1, len(plays))
	a.Equal(2, len(plays[0]))
	a.Equal(deck.Seven, plays[0][0].Value)

	// under the seven rule only 7s and 8s come back
	plays = FindValidPlays(cards("7h,8s,9c,2d"), cards("7c"), RestrictionSevenEight)
	a.Equal(2, len(plays))
	a.Equal(deck.Seven, plays[0][0].Value)
	a.Equal(deck.Eight, plays[1][0].Value)
}

// every play returned by FindValidPlays validates, and every same-rank group
// it skips does not: the two functions agree on legality
func TestFindValidPlays_symmetry(t *testing.T) {
	hand := cards("3h,3s,3c,6d,6h,9s,10c,Jh,2d")
	tables := []string{"", "5c", "5c,5d", "8h", "2s"}
	restrictions := []Restriction{RestrictionNone, RestrictionSevenEight, RestrictionTenOrLower}

	for _, table := range tables {
		for _, restriction := range restrictions {
			plays := FindValidPlays(hand, cards(table), restriction)

			returned := make(map[string]bool)
			for _, play := range plays {
				assert.NoError(t, ValidatePlay(play, cards(table), restriction))
				returned[deck.CardsToString(play)] = true
			}

			// enumerate all same-rank prefixes of the hand and verify the
			// invalid ones were not returned
			groups := make(map[int][]*deck.Card)
			for _, card := range hand {
				groups[card.Value] = append(groups[card.Value], card)
			}

			for _, group := range groups {
				for size := 1; size <= len(group) && size <= 4; size++ {
					play := group[:size]
					valid := ValidatePlay(play, cards(table), restriction) == nil
					assert.Equal(t, valid, returned[deck.CardsToString(play)])
				}
			}
		}
	}
}
