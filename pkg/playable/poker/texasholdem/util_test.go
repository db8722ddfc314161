package texasholdem

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem/pkg/deck"
	"holdem/pkg/playable"
	"holdem/pkg/playable/poker/action"
)

func testOptions(seats, stack, smallBlind, bigBlind int) Options {
	return Options{
		Seats:         seats,
		StartingStack: stack,
		SmallBlind:    smallBlind,
		BigBlind:      bigBlind,
		Seed:          1,
	}
}

func setupNewGame(opts Options) *Game {
	game, err := NewGame(logrus.StandardLogger(), opts)
	if err != nil {
		panic(err)
	}

	return game
}

// setStacks replaces every stack before a hand is started
func setStacks(game *Game, stacks ...int) {
	if len(stacks) != len(game.participants) {
		panic("one stack is needed per seat")
	}

	game.totalChips = 0
	for i, stack := range stacks {
		game.participants[i].balance = stack
		game.totalChips += stack
	}
}

// rigHand replaces the hole cards and puts the board on top of the deck
// It must be called right after StartHand().
func rigHand(game *Game, holeCards map[int]string, board string) {
	for seat, cards := range holeCards {
		game.participants[seat].cards = deck.CardsFromString(cards)
	}

	game.deck.Cards = append(deck.CardsFromString(board), game.deck.Cards...)
}

func assertStacks(t *testing.T, game *Game, stacks ...int) {
	t.Helper()
	assert.Equal(t, stacks, game.Stacks())
}

func assertCurrentTurn(t *testing.T, game *Game, seat int, msgAndArgs ...interface{}) {
	t.Helper()
	turn, ok := game.CurrentTurn()
	assert.True(t, ok, msgAndArgs...)
	assert.Equal(t, seat, turn, msgAndArgs...)
}

func assertAction(t *testing.T, game *Game, seat int, a action.Action, msgAndArgs ...interface{}) {
	t.Helper()
	assertActionAndAmount(t, game, seat, a, 0, msgAndArgs...)
}

func assertActionAndAmount(t *testing.T, game *Game, seat int, a action.Action, amount int, msgAndArgs ...interface{}) {
	t.Helper()
	state, err := game.SubmitAction(seat, action.Move{Action: a, Amount: amount})
	assert.NoError(t, err, msgAndArgs...)
	assert.NotNil(t, state, msgAndArgs...)
}

func assertActionFailed(t *testing.T, game *Game, seat int, a action.Action, amount int, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()
	state, err := game.SubmitAction(seat, action.Move{Action: a, Amount: amount})
	assert.EqualError(t, err, expectedErr, msgAndArgs...)
	assert.Nil(t, state, msgAndArgs...)
}

// drainLogs returns every message currently buffered on the log channel
func drainLogs(game *Game) []*playable.LogMessage {
	logs := make([]*playable.LogMessage, 0)
	for {
		select {
		case batch, ok := <-game.LogChan():
			if !ok {
				return logs
			}

			logs = append(logs, batch...)
		default:
			return logs
		}
	}
}

func logStrings(logs []*playable.LogMessage) []string {
	s := make([]string, len(logs))
	for i, l := range logs {
		s[i] = l.String()
	}

	return s
}
