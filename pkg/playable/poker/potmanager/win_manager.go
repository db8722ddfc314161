package potmanager

import (
	"sort"

	"holdem/pkg/playable/poker/handanalyzer"
)

type tier struct {
	rank         handanalyzer.HandRank
	participants []Participant
}

// WinManager groups showdown participants by hand rank
type WinManager map[handanalyzer.HandRank]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddParticipant records the participant's final hand
func (w WinManager) AddParticipant(p Participant, rank handanalyzer.HandRank) {
	t, ok := w[rank]
	if !ok {
		t = &tier{
			rank:         rank,
			participants: make([]Participant, 0),
		}
	}

	t.participants = append(t.participants, p)
	w[rank] = t
}

// GetSortedTiers returns the tied groups of participants, best hand first
func (w WinManager) GetSortedTiers() [][]Participant {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Slice(tiers, func(i, j int) bool {
		return tiers[j].rank.Less(tiers[i].rank)
	})

	tieredParticipants := make([][]Participant, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}
