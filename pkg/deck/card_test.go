package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2♡", Card{Rank: 2, Suit: Hearts}.String())
	a.Equal("10♡", Card{Rank: 10, Suit: Hearts}.String())
	a.Equal("J♣", Card{Rank: 11, Suit: Clubs}.String())
	a.Equal("Q♢", Card{Rank: 12, Suit: Diamonds}.String())
	a.Equal("K♠", Card{Rank: 13, Suit: Spades}.String())
	a.Equal("A♠", Card{Rank: 14, Suit: Spades}.String())

	a.PanicsWithValue("unknown suit", func() {
		_ = Card{Rank: 2}.String()
	})
}

func TestCard_IsValid(t *testing.T) {
	a := assert.New(t)

	a.True(Card{Rank: 2, Suit: Clubs}.IsValid())
	a.True(Card{Rank: 14, Suit: Spades}.IsValid())
	a.False(Card{Rank: 1, Suit: Spades}.IsValid())
	a.False(Card{Rank: 15, Suit: Spades}.IsValid())
	a.False(Card{Rank: 10, Suit: "stars"}.IsValid())
}

func TestCard_AceLowRank(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, CardFromString("14s").AceLowRank())
	a.Equal(13, CardFromString("13s").AceLowRank())
}

func TestSuit_Index(t *testing.T) {
	a := assert.New(t)

	for i, suit := range Suits {
		a.Equal(i, suit.Index())
	}

	a.PanicsWithValue("unknown suit: stars", func() {
		Suit("stars").Index()
	})
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: 14, Suit: Clubs}, CardFromString("14c"))
	a.Equal(Card{Rank: 2, Suit: Diamonds}, CardFromString("2d"))
	a.Equal(Card{Rank: 10, Suit: Hearts}, CardFromString("10H"))

	a.PanicsWithValue("could not parse card: 1c", func() {
		CardFromString("1c")
	})

	a.PanicsWithValue("could not parse card: 15s", func() {
		CardFromString("15s")
	})
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	tests := map[string]Card{
		"Ah":  {Rank: Ace, Suit: Hearts},
		"kS":  {Rank: King, Suit: Spades},
		"Td":  {Rank: 10, Suit: Diamonds},
		"10c": {Rank: 10, Suit: Clubs},
		"14c": {Rank: Ace, Suit: Clubs},
		"Q♢":  {Rank: Queen, Suit: Diamonds},
		"J♥":  {Rank: Jack, Suit: Hearts},
		" 7s": {Rank: 7, Suit: Spades},
	}

	for in, expected := range tests {
		card, err := ParseCard(in)
		a.NoError(err, in)
		a.Equal(expected, card, in)
	}

	for _, in := range []string{"", "1c", "Ax", "15h", "AA"} {
		_, err := ParseCard(in)
		a.ErrorIs(err, ErrInvalidCard, in)
	}

	_, err := ParseCard("Zz")
	a.EqualError(err, `invalid card: "Zz"`)
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal([]Card{}, CardsFromString(""))
	cards := CardsFromString("2c,13d,14s")
	a.Equal([]Card{
		{Rank: 2, Suit: Clubs},
		{Rank: 13, Suit: Diamonds},
		{Rank: 14, Suit: Spades},
	}, cards)

	a.Equal("2c,13d,14s", CardsToString(cards))
}
