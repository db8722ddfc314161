package action

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Bet   Action = "bet"
	// Raise is a raise by the amount on top of the current bet
	Raise Action = "raise"
	// RaiseTo is a raise to a total round contribution of the amount
	RaiseTo Action = "raise_to"
)

var allowedActions = map[Action]bool{
	Fold:    true,
	Check:   true,
	Call:    true,
	Bet:     true,
	Raise:   true,
	RaiseTo: true,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	case RaiseTo:
		return "Raise to"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// NeedsAmount returns true if the action is meaningless without an amount
func (a Action) NeedsAmount() bool {
	return a == Bet || a == Raise || a == RaiseTo
}

// LogMessage returns a message formatted for the log
// amount is what the player put in with the action, or their new total for a raise
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Bet:
		return fmt.Sprintf("bet ${%d}", amount)
	case Raise, RaiseTo:
		return fmt.Sprintf("raised to ${%d}", amount)
	}

	return ""
}
