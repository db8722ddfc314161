package playable

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"holdem/pkg/deck"
)

// NoPlayer is used in place of a seat when a log message is a general statement
const NoPlayer = -1

// Playable is a game that can be played
type Playable interface {
	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage

	// Close stops the game and closes the log channel
	Close()
}

// LogMessage is the format a game should send log messages in
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will be shown like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string      `json:"uuid"`
	PlayerIDs []int       `json:"playerIds"`
	Cards     []deck.Card `json:"cards"`
	Message   string      `json:"message"`
	Time      time.Time   `json:"time"`
}

// String replaces each {} placeholder with the matching player
func (l *LogMessage) String() string {
	msg := l.Message
	for _, id := range l.PlayerIDs {
		msg = strings.Replace(msg, "{}", fmt.Sprintf("Seat %d", id), 1)
	}

	if len(l.Cards) > 0 {
		msg += " " + deck.Hand(l.Cards).Pretty()
	}

	return msg
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID int, format string, a ...interface{}) *LogMessage {
	var playerIDs []int
	if playerID >= 0 {
		playerIDs = []int{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(playerID int, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerID, format, a...)}
}

// CardsLogMessage returns a general log message that shows cards
func CardsLogMessage(cards []deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(NoPlayer, format, a...)
	lm.Cards = append([]deck.Card(nil), cards...)
	return lm
}
