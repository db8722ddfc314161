package texasholdem

import (
	"holdem/pkg/deck"
	"holdem/pkg/playable"
)

// HandLog is the record of a finished hand
// Hole cards are only included for the seats that showed them down.
type HandLog struct {
	HandNumber   int                `json:"handNumber"`
	Button       int                `json:"button"`
	Participants []*participantJSON `json:"participants"`
	Community    deck.Hand          `json:"community"`
	Result       *HandResult        `json:"result"`
}

// HandLog returns the record of the last finished hand, or nil if a hand is being played
func (g *Game) HandLog() *HandLog {
	if g.lastResult == nil {
		return nil
	}

	p := make([]*participantJSON, 0, len(g.inHand))
	for _, pt := range g.inHand {
		p = append(p, pt.participantJSON(g, playable.NoPlayer))
	}

	return &HandLog{
		HandNumber:   g.handNumber,
		Button:       g.buttonIndex,
		Participants: p,
		Community:    g.community,
		Result:       g.lastResult,
	}
}
