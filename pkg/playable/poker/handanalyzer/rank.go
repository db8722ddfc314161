package handanalyzer

import (
	"encoding/json"
	"math"
)

// HandRank is the comparable value of a five-card hand
// Two ranks compare equal with == exactly when the hands tie.
type HandRank struct {
	Hand Hand
	// TieBreak holds the ranks that break ties within a category, most significant first.
	// Unused trailing slots are zero.
	TieBreak [5]int
}

// Compare returns -1, 0, or 1 if r is weaker than, ties, or beats o
func (r HandRank) Compare(o HandRank) int {
	if r.Hand != o.Hand {
		if r.Hand < o.Hand {
			return -1
		}

		return 1
	}

	for i := range r.TieBreak {
		if r.TieBreak[i] < o.TieBreak[i] {
			return -1
		} else if r.TieBreak[i] > o.TieBreak[i] {
			return 1
		}
	}

	return 0
}

// Less returns true if r is weaker than o
func (r HandRank) Less(o HandRank) bool {
	return r.Compare(o) < 0
}

// Strength packs the rank into a single integer with the same ordering
func (r HandRank) Strength() int {
	strength := math.Pow(15, 5) * float64(r.Hand)
	for i := 0; i < 5; i++ {
		strength += math.Pow(15, float64(4-i)) * float64(r.TieBreak[i])
	}

	return int(strength)
}

type handRankJSON struct {
	Hand     string `json:"hand"`
	TieBreak []int  `json:"tieBreak"`
	Strength int    `json:"strength"`
}

// MarshalJSON encodes the category by name
func (r HandRank) MarshalJSON() ([]byte, error) {
	return json.Marshal(handRankJSON{
		Hand:     r.Hand.String(),
		TieBreak: r.TieBreak[:],
		Strength: r.Strength(),
	})
}
