package texasholdem

import (
	"encoding/json"
)

// DealerState represents the state of the game
type DealerState int

// constants for DealerState
const (
	DealerStateWaiting DealerState = iota
	DealerStatePostBlinds
	DealerStatePreFlop
	DealerStateFlop
	DealerStateTurn
	DealerStateRiver
	DealerStateShowdown
	DealerStateEarlyAward
	DealerStateComplete
	DealerStateAborted
)

func (d DealerState) String() string {
	switch d {
	case DealerStateWaiting:
		return "waiting"
	case DealerStatePostBlinds:
		return "post-blinds"
	case DealerStatePreFlop:
		return "pre-flop"
	case DealerStateFlop:
		return "flop"
	case DealerStateTurn:
		return "turn"
	case DealerStateRiver:
		return "river"
	case DealerStateShowdown:
		return "showdown"
	case DealerStateEarlyAward:
		return "early-award"
	case DealerStateComplete:
		return "complete"
	case DealerStateAborted:
		return "aborted"
	}

	return ""
}

// IsBettingRound returns true if seats can act in this state
func (d DealerState) IsBettingRound() bool {
	return d >= DealerStatePreFlop && d <= DealerStateRiver
}

// isHandInProgress returns true from the time blinds are posted until the pot is settled
func (d DealerState) isHandInProgress() bool {
	return d >= DealerStatePostBlinds && d <= DealerStateEarlyAward
}

// MarshalJSON encodes JSON
func (d DealerState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(d),
		Name: d.String(),
	})
}
