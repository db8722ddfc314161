package handanalyzer

import (
	"fmt"

	"holdem/pkg/deck"
)

var rankNames = map[int][2]string{
	2:          {"Two", "Twos"},
	3:          {"Three", "Threes"},
	4:          {"Four", "Fours"},
	5:          {"Five", "Fives"},
	6:          {"Six", "Sixes"},
	7:          {"Seven", "Sevens"},
	8:          {"Eight", "Eights"},
	9:          {"Nine", "Nines"},
	10:         {"Ten", "Tens"},
	deck.Jack:  {"Jack", "Jacks"},
	deck.Queen: {"Queen", "Queens"},
	deck.King:  {"King", "Kings"},
	deck.Ace:   {"Ace", "Aces"},
}

func singular(rank int) string {
	return rankNames[rank][0]
}

func plural(rank int) string {
	return rankNames[rank][1]
}

// Description returns a human readable description of the hand, i.e., "a full house (Kings full of Twos)"
func (r HandRank) Description() string {
	tb := r.TieBreak
	switch r.Hand {
	case HighCard:
		return fmt.Sprintf("%s high", singular(tb[0]))
	case OnePair:
		return fmt.Sprintf("a pair of %s", plural(tb[0]))
	case TwoPair:
		return fmt.Sprintf("two pair (%s and %s)", plural(tb[0]), plural(tb[1]))
	case ThreeOfAKind:
		return fmt.Sprintf("three %s", plural(tb[0]))
	case Straight:
		return fmt.Sprintf("a straight (%s high)", singular(tb[0]))
	case Flush:
		return fmt.Sprintf("a flush (%s high)", singular(tb[0]))
	case FullHouse:
		return fmt.Sprintf("a full house (%s full of %s)", plural(tb[0]), plural(tb[1]))
	case FourOfAKind:
		return fmt.Sprintf("four %s", plural(tb[0]))
	case StraightFlush:
		if tb[0] == deck.Ace {
			return "a royal flush"
		}

		return fmt.Sprintf("a straight flush (%s high)", singular(tb[0]))
	default:
		panic(fmt.Sprintf("unknown hand: %d", r.Hand))
	}
}

// Description returns a human readable description of the best hand
func (h *HandAnalyzer) Description() string {
	return h.rank.Description()
}
