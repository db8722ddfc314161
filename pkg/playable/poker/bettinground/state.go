package bettinground

import "encoding/json"

// State represents where a betting round is
type State int

// constants for State
const (
	// AwaitingAction means a seat is on the clock
	AwaitingAction State = iota
	// RoundComplete means every seat has matched the bet or is all-in
	RoundComplete
	// HandEndsEarly means everyone but one seat has folded
	HandEndsEarly
)

func (s State) String() string {
	switch s {
	case AwaitingAction:
		return "awaiting-action"
	case RoundComplete:
		return "round-complete"
	case HandEndsEarly:
		return "hand-ends-early"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
