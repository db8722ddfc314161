package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	a := assert.New(t)

	h := Hand(CardsFromString("14s,2c,13h"))
	a.True(h.HasCard(CardFromString("2c")))
	a.False(h.HasCard(CardFromString("2d")))
	a.Equal("14s,2c,13h", h.String())
	a.Equal("A♠ 2♣ K♡", h.Pretty())

	h.AddCard(CardFromString("2c"))
	a.Equal(4, h.Len())
	a.True(h.HasDuplicates())

	clone := h.Clone()
	sort.Sort(clone)
	a.Equal("2c,2c,13h,14s", clone.String())
	a.Equal("14s,2c,13h,2c", h.String(), "the original is not modified")
}
