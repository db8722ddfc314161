package poker

import (
	"holdem/pkg/deck"
	"holdem/pkg/playable/poker/potmanager"
)

// State provides the current state data for common poker values
type State struct {
	Ante       int             `json:"ante"`
	SmallBlind int             `json:"smallBlind"`
	BigBlind   int             `json:"bigBlind"`
	CurrentBet int             `json:"currentBet"`
	MinRaise   int             `json:"minRaise"`
	PotTotal   int             `json:"potTotal"`
	Pots       potmanager.Pots `json:"pots"`
	Community  deck.Hand       `json:"community"`
}
