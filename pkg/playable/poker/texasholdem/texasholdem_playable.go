package texasholdem

import (
	"fmt"

	"holdem/pkg/playable"
)

// Name returns the name
func (g *Game) Name() string {
	return NameFromOptions(g.options)
}

// NameFromOptions returns the name from the provided options
func NameFromOptions(opts Options) string {
	if err := validateOptions(opts); err != nil {
		return ""
	}

	if opts.Ante > 0 {
		return fmt.Sprintf("No-Limit Texas Hold'em (${%d}/${%d}, ${%d} ante)", opts.SmallBlind, opts.BigBlind, opts.Ante)
	}

	return fmt.Sprintf("No-Limit Texas Hold'em (${%d}/${%d})", opts.SmallBlind, opts.BigBlind)
}

// LogChan returns a channel log messages are sent on
// Messages are dropped if nobody is reading and the buffer fills up.
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Close ends the session and closes the log channel
func (g *Game) Close() {
	if g.closed {
		return
	}

	g.closed = true
	close(g.logChan)
}

func (g *Game) sendLogMessages(logs ...*playable.LogMessage) {
	if g.closed || len(logs) == 0 {
		return
	}

	select {
	case g.logChan <- logs:
	default:
		g.logger.WithField("messages", len(logs)).Warn("log channel is full, dropping messages")
	}
}
