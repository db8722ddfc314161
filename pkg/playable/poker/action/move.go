package action

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyMove is returned when there is nothing to parse
var ErrEmptyMove = errors.New("no action given")

// Move is an action submitted by a seat along with its amount
// Amount is ignored for fold, check, and call.
type Move struct {
	Action Action `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// NewMove returns a move, validating the action and its amount
// An amount given with fold, check, or call is dropped.
func NewMove(a Action, amount int) (Move, error) {
	if !a.IsValid() {
		return Move{}, fmt.Errorf("unknown action for identifier: %s", string(a))
	}

	if !a.NeedsAmount() {
		return Move{Action: a}, nil
	}

	if amount <= 0 {
		return Move{}, fmt.Errorf("%s requires a positive amount", string(a))
	}

	return Move{Action: a, Amount: amount}, nil
}

func (m Move) String() string {
	if m.Action.NeedsAmount() {
		return fmt.Sprintf("%s %d", string(m.Action), m.Amount)
	}

	return string(m.Action)
}

// Parse converts free text such as "call", "bet 200", "raise 100" or "raise to 250" into a Move
// "raise N" raises by N on top of the current bet, "raise to N" raises to a total of N.
func Parse(s string) (Move, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Move{}, ErrEmptyMove
	}

	name := fields[0]
	rest := fields[1:]
	if name == string(Raise) && len(rest) > 0 && rest[0] == "to" {
		name = string(RaiseTo)
		rest = rest[1:]
	}

	a, err := FromString(name)
	if err != nil {
		return Move{}, err
	}

	switch len(rest) {
	case 0:
		return NewMove(a, 0)
	case 1:
		amount, err := strconv.Atoi(rest[0])
		if err != nil {
			return Move{}, fmt.Errorf("could not parse amount %q", rest[0])
		}

		return NewMove(a, amount)
	default:
		return Move{}, fmt.Errorf("could not parse action %q", s)
	}
}
