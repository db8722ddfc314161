package texasholdem

import (
	"holdem/pkg/playable/poker"
	"holdem/pkg/playable/poker/bettinground"
	"holdem/pkg/playable/poker/potmanager"
)

// GameState represents the state of the game as seen by one viewer
type GameState struct {
	Name         string                     `json:"name"`
	HandNumber   int                        `json:"handNumber"`
	DealerState  DealerState                `json:"dealerState"`
	Button       int                        `json:"button"`
	CurrentTurn  *int                       `json:"currentTurn"`
	PokerState   *poker.State               `json:"pokerState"`
	Participants []*participantJSON         `json:"participants"`
	Actions      []bettinground.LegalAction `json:"actions"`
	LastAction   *lastAction                `json:"lastAction"`
	Result       *HandResult                `json:"result"`
}

// CurrentState returns the state of the game for the viewer
// Pass playable.NoPlayer to get the state a spectator would see.
func (g *Game) CurrentState(viewer int) *GameState {
	participants := make([]*participantJSON, len(g.participants))
	for i, p := range g.participants {
		participants[i] = p.participantJSON(g, viewer)
	}

	var currentTurn *int
	if seat, ok := g.CurrentTurn(); ok {
		currentTurn = &seat
	}

	return &GameState{
		Name:         g.Name(),
		HandNumber:   g.handNumber,
		DealerState:  g.dealerState,
		Button:       g.buttonIndex,
		CurrentTurn:  currentTurn,
		PokerState:   g.getPokerState(),
		Participants: participants,
		Actions:      g.LegalActions(viewer),
		LastAction:   g.lastAction,
		Result:       g.lastResult,
	}
}

func (g *Game) getPokerState() *poker.State {
	state := &poker.State{
		Ante:       g.options.Ante,
		SmallBlind: g.options.SmallBlind,
		BigBlind:   g.options.BigBlind,
		Pots:       potmanager.Pots{},
		Community:  g.community,
	}

	if g.potManager != nil && !g.potManager.IsSettled() {
		state.PotTotal = g.potManager.Total()
		state.Pots = g.potManager.Pots()
	}

	if g.round != nil && g.dealerState.IsBettingRound() {
		state.CurrentBet = g.round.CurrentBet()
		state.MinRaise = g.round.MinRaise()
	}

	return state
}
