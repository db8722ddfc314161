package bettinground

import (
	"errors"
	"fmt"

	"holdem/pkg/playable/poker/action"
)

// ErrRoundStarted is returned when a forced bet is posted after the action has started
var ErrRoundStarted = errors.New("betting round has already started")

// ErrRoundNotStarted is returned when an action is submitted before Start()
var ErrRoundNotStarted = errors.New("betting round has not started")

// IllegalActionError is returned when a seat attempts an action it is not allowed to take
// The round is never modified when this error is returned.
type IllegalActionError struct {
	Seat   int
	Action action.Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("seat %d cannot %s: %s", e.Seat, string(e.Action), e.Reason)
}

func illegal(seat int, a action.Action, format string, args ...interface{}) *IllegalActionError {
	return &IllegalActionError{
		Seat:   seat,
		Action: a,
		Reason: fmt.Sprintf(format, args...),
	}
}

// InvalidAmountError is returned when an action is given a negative, zero, or missing amount
type InvalidAmountError struct {
	Seat   int
	Action action.Action
	Amount int
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("seat %d: invalid amount %d for %s", e.Seat, e.Amount, string(e.Action))
}
