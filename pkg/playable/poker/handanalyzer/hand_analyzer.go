package handanalyzer

import (
	"errors"
	"fmt"
	"sort"

	"holdem/pkg/deck"
)

// errors returned by New
var (
	ErrCardCount     = errors.New("hand must contain 5 to 7 cards")
	ErrDuplicateCard = errors.New("hand contains a duplicate card")
)

// HandSize is the number of cards that make up a poker hand
const HandSize = 5

// HandAnalyzer finds the best five-card hand within five to seven cards
type HandAnalyzer struct {
	cards deck.Hand
	best  deck.Hand
	rank  HandRank
}

// New will return a new HandAnalyzer instance
// Every five-card subset is scored and the strongest is kept.
func New(cards []deck.Card) (*HandAnalyzer, error) {
	if len(cards) < HandSize || len(cards) > 7 {
		return nil, fmt.Errorf("%w: got %d", ErrCardCount, len(cards))
	}

	for _, card := range cards {
		if !card.IsValid() {
			return nil, fmt.Errorf("%w: %#v", deck.ErrInvalidCard, card)
		}
	}

	// clone to prevent modifying original
	h := &HandAnalyzer{
		cards: deck.Hand(cards).Clone(),
	}

	if h.cards.HasDuplicates() {
		return nil, ErrDuplicateCard
	}

	h.analyzeHand()
	return h, nil
}

// Evaluate returns the rank of the best hand within the cards
func Evaluate(cards []deck.Card) (HandRank, error) {
	h, err := New(cards)
	if err != nil {
		return HandRank{}, err
	}

	return h.rank, nil
}

func (h *HandAnalyzer) analyzeHand() {
	n := len(h.cards)
	found := false
	var five [HandSize]deck.Card

	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five = [HandSize]deck.Card{h.cards[a], h.cards[b], h.cards[c], h.cards[d], h.cards[e]}
						rank, ordered := rankFive(five)
						if !found || h.rank.Less(rank) {
							found = true
							h.rank = rank
							h.best = ordered
						}
					}
				}
			}
		}
	}
}

// rankFive scores exactly five cards
// The returned cards are ordered by significance: groups by size then rank, kickers descending,
// and a wheel's ace last.
func rankFive(five [HandSize]deck.Card) (HandRank, deck.Hand) {
	var counts [deck.Ace + 1]int
	isFlush := true
	for i, card := range five {
		counts[card.Rank]++
		if i > 0 && card.Suit != five[0].Suit {
			isFlush = false
		}
	}

	ordered := deck.Hand(five[:]).Clone()
	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := counts[ordered[i].Rank], counts[ordered[j].Rank]
		if ci != cj {
			return ci > cj
		}

		return ordered[i].Rank > ordered[j].Rank
	})

	groups := make([]int, 0, HandSize)
	for i, card := range ordered {
		if i == 0 || ordered[i-1].Rank != card.Rank {
			groups = append(groups, card.Rank)
		}
	}

	straight := 0
	if len(groups) == HandSize {
		straight = highestStraight(rankMask(ordered))
	}

	if straight == 5 {
		// wheel: the ace plays low
		ordered = append(ordered[1:], ordered[0])
	}

	rank := HandRank{}
	switch first := counts[groups[0]]; {
	case straight > 0 && isFlush:
		rank.Hand = StraightFlush
		rank.TieBreak[0] = straight
		return rank, ordered
	case first == 4:
		rank.Hand = FourOfAKind
	case first == 3 && counts[groups[1]] == 2:
		rank.Hand = FullHouse
	case isFlush:
		rank.Hand = Flush
	case straight > 0:
		rank.Hand = Straight
		rank.TieBreak[0] = straight
		return rank, ordered
	case first == 3:
		rank.Hand = ThreeOfAKind
	case first == 2:
		if counts[groups[1]] == 2 {
			rank.Hand = TwoPair
		} else {
			rank.Hand = OnePair
		}
	default:
		rank.Hand = HighCard
	}

	copy(rank.TieBreak[:], groups)
	return rank, ordered
}

// GetHand will return the category of the best possible hand
func (h *HandAnalyzer) GetHand() Hand {
	return h.rank.Hand
}

// GetRank will return the comparable rank of the best possible hand
func (h *HandAnalyzer) GetRank() HandRank {
	return h.rank
}

// GetBestCards returns the five cards that make the best hand
func (h *HandAnalyzer) GetBestCards() deck.Hand {
	return h.best.Clone()
}

// GetRoyalFlush will return true if the best hand is an ace-high straight flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.rank.Hand == StraightFlush && h.rank.TieBreak[0] == deck.Ace
}
