package texasholdem

import (
	"holdem/pkg/deck"
	"holdem/pkg/playable/poker/handanalyzer"
)

type result string

const (
	resultPending result = ""
	resultFolded  result = "folded"
	resultLost    result = "lost"
	resultWon     result = "won"
)

// Status is where a seat stands in the current hand
type Status string

// Status constants
const (
	StatusActive     Status = "active"
	StatusFolded     Status = "folded"
	StatusAllIn      Status = "all-in"
	StatusSittingOut Status = "sitting-out"
)

// Participant represents an individual seat in Texas Hold'em
type Participant struct {
	Seat int

	balance int
	cards   deck.Hand
	status  Status
	dealtIn bool
	reveal  bool

	// handContribution is what the seat put in the pot this hand
	handContribution int

	result   result
	winnings int

	handsPlayed int
	handsWon    int

	handAnalyzer         *handanalyzer.HandAnalyzer
	handAnalyzerCacheKey string
}

type participantJSON struct {
	Seat              int                 `json:"seat"`
	Stack             int                 `json:"stack"`
	Status            Status              `json:"status"`
	RoundContribution int                 `json:"roundContribution"`
	HandContribution  int                 `json:"handContribution"`
	Cards             deck.Hand           `json:"cards"`
	Hand              string              `json:"hand,omitempty"`
	Draws             []handanalyzer.Draw `json:"draws,omitempty"`
	Result            result              `json:"result"`
	Winnings          int                 `json:"winnings"`
	HandsPlayed       int                 `json:"handsPlayed"`
	HandsWon          int                 `json:"handsWon"`
}

func newParticipant(seat, stack int) *Participant {
	return &Participant{
		Seat:    seat,
		balance: stack,
		cards:   make(deck.Hand, 0, 2),
		status:  StatusSittingOut,
		result:  resultPending,
	}
}

// newHand resets the participant before the cards are dealt
// A seat without chips sits the hand out.
func (p *Participant) newHand() {
	p.cards = make(deck.Hand, 0, 2)
	p.reveal = false
	p.handContribution = 0
	p.result = resultPending
	p.winnings = 0
	p.handAnalyzer = nil
	p.handAnalyzerCacheKey = ""

	p.dealtIn = p.balance > 0
	if p.dealtIn {
		p.status = StatusActive
	} else {
		p.status = StatusSittingOut
	}
}

func (p *Participant) getHandAnalyzer(community deck.Hand) *handanalyzer.HandAnalyzer {
	if len(p.cards) == 0 || len(p.cards)+len(community) < handanalyzer.HandSize {
		return nil
	}

	hand := append(p.cards.Clone(), community...)
	key := hand.String()
	if p.handAnalyzerCacheKey != key {
		ha, err := handanalyzer.New(hand)
		if err != nil {
			return nil
		}

		p.handAnalyzer = ha
		p.handAnalyzerCacheKey = key
	}

	return p.handAnalyzer
}

// participantJSON returns the participant as seen by the viewer
// Hole cards are only shown to their owner, or to everyone once revealed at showdown.
func (p *Participant) participantJSON(g *Game, viewer int) *participantJSON {
	var cards deck.Hand
	var hand string
	var draws []handanalyzer.Draw

	isOwner := viewer == p.Seat
	if isOwner || p.reveal {
		cards = p.cards
		if ha := p.getHandAnalyzer(g.community); ha != nil {
			hand = ha.Description()
		}

		if isOwner && g.dealerState.IsBettingRound() && p.status != StatusFolded {
			draws = handanalyzer.Draws(append(p.cards.Clone(), g.community...))
		}
	}

	roundContribution := 0
	if g.round != nil && g.dealerState.IsBettingRound() {
		roundContribution = g.round.RoundContribution(p.Seat)
	}

	return &participantJSON{
		Seat:              p.Seat,
		Stack:             p.balance,
		Status:            p.status,
		RoundContribution: roundContribution,
		HandContribution:  p.handContribution,
		Cards:             cards,
		Hand:              hand,
		Draws:             draws,
		Result:            p.result,
		Winnings:          p.winnings,
		HandsPlayed:       p.handsPlayed,
		HandsWon:          p.handsWon,
	}
}

// potmanager.Participant interface

// ID returns the seat number
func (p *Participant) ID() int {
	return p.Seat
}

// Balance returns the chips the seat has behind
func (p *Participant) Balance() int {
	return p.balance
}

// AdjustBalance moves chips to or from the seat's stack
func (p *Participant) AdjustBalance(amount int) {
	p.balance += amount
}
