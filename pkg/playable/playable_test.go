package playable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"holdem/pkg/deck"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(NoPlayer, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.PlayerIDs)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Cards)
	assert.NotEmpty(t, lm.UUID)
}

func TestSimpleLogMessage_withPlayerID(t *testing.T) {
	lm := SimpleLogMessage(0, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int{0}, lm.PlayerIDs)

	lm = SimpleLogMessage(3, "{} checked")
	assert.Equal(t, []int{3}, lm.PlayerIDs)
	assert.Equal(t, "Seat 3 checked", lm.String())
}

func TestSimpleLogMessageSlice(t *testing.T) {
	lms := SimpleLogMessageSlice(NoPlayer, "test %d", 38)
	assert.Equal(t, 1, len(lms))
	assert.Equal(t, "test 38", lms[0].Message)
}

func TestCardsLogMessage(t *testing.T) {
	a := assert.New(t)

	cards := deck.CardsFromString("14s,13s,12s")
	lm := CardsLogMessage(cards, "dealt the %s", "flop")
	a.Nil(lm.PlayerIDs)
	a.Equal(cards, lm.Cards)
	a.Equal("dealt the flop A♠ K♠ Q♠", lm.String())

	// the message keeps its own copy of the cards
	cards[0] = deck.CardFromString("2c")
	a.Equal(deck.CardFromString("14s"), lm.Cards[0])
}
