package handanalyzer

import (
	"holdem/pkg/deck"
)

// Draw is a hand that is one card away from improving to a straight or a flush
type Draw string

// draw constants
const (
	FlushDraw    Draw = "Flush draw"
	StraightDraw Draw = "Straight draw"
)

// Draws returns the draws present in the cards
// Hands already better than a straight have no draws, and neither do fewer than four cards.
func Draws(cards []deck.Card) []Draw {
	if len(cards) < HandSize-1 {
		return nil
	}

	if len(cards) >= HandSize {
		if h, err := New(cards); err != nil || h.GetHand() > Straight {
			return nil
		}
	}

	var draws []Draw

	suits := make(map[deck.Suit]int)
	biggest := 0
	for _, card := range cards {
		suits[card.Suit]++
		if suits[card.Suit] > biggest {
			biggest = suits[card.Suit]
		}
	}

	if biggest == HandSize-1 {
		draws = append(draws, FlushDraw)
	}

	mask := rankMask(cards)
	if highestStraight(mask) == 0 && isOneCardFromStraight(mask) {
		draws = append(draws, StraightDraw)
	}

	return draws
}
