package texasholdem

import (
	"errors"
	"fmt"
)

// ErrEngineFault is wrapped by every FaultError
var ErrEngineFault = errors.New("engine fault")

// ErrHandInProgress is an error when a hand is started before the previous one finished
var ErrHandInProgress = errors.New("a hand is already in progress")

// ErrNotEnoughPlayers is an error when fewer than two seats have chips
var ErrNotEnoughPlayers = errors.New("at least two seats need chips to start a hand")

// ErrGameClosed is an error when the game is used after Close()
var ErrGameClosed = errors.New("game is closed")

var errChipsNotConserved = errors.New("chips were not conserved")

// ConfigurationError is returned when the game options are not valid
type ConfigurationError struct {
	Field  string
	Reason string
}

func (c *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", c.Field, c.Reason)
}

// FaultError is returned when the engine could not finish a hand
// Every contribution to the aborted hand is refunded before the error is returned.
type FaultError struct {
	HandNumber int
	Err        error
}

func (f *FaultError) Error() string {
	return fmt.Sprintf("hand #%d aborted: %v", f.HandNumber, f.Err)
}

// Unwrap lets errors.Is match both ErrEngineFault and the underlying cause
func (f *FaultError) Unwrap() []error {
	return []error{ErrEngineFault, f.Err}
}
