package handanalyzer

import (
	"math/bits"

	"holdem/pkg/deck"
)

// rankMask returns a bitmask with bit r set for every rank r in the cards
// Aces also set bit 1 so the wheel can be found.
func rankMask(cards []deck.Card) uint16 {
	var mask uint16
	for _, card := range cards {
		mask |= 1 << uint(card.Rank)
		if card.Rank == deck.Ace {
			mask |= 1 << deck.LowAce
		}
	}

	return mask
}

// straightWindow returns the mask of the five ranks from low to low+4
func straightWindow(low int) uint16 {
	return uint16(0x1f) << uint(low)
}

// highestStraight returns the top card of the best straight in the mask, or 0
// A wheel (A-2-3-4-5) returns 5.
func highestStraight(mask uint16) int {
	for low := deck.Ace - 4; low >= deck.LowAce; low-- {
		window := straightWindow(low)
		if mask&window == window {
			return low + 4
		}
	}

	return 0
}

// isOneCardFromStraight returns true if four of the five ranks of some straight are present
// Open-ended and gutshot draws both count.
func isOneCardFromStraight(mask uint16) bool {
	for low := deck.LowAce; low <= deck.Ace-4; low++ {
		if bits.OnesCount16(mask&straightWindow(low)) == 4 {
			return true
		}
	}

	return false
}
