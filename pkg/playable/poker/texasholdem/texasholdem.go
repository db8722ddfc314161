package texasholdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"holdem/pkg/deck"
	"holdem/pkg/playable"
	"holdem/pkg/playable/poker/action"
	"holdem/pkg/playable/poker/bettinground"
	"holdem/pkg/playable/poker/potmanager"
)

// Game is a session of No-Limit Texas Hold'em played over any number of hands
// Seats keep their stacks from hand to hand and the button moves clockwise after each one.
type Game struct {
	options      Options
	logger       logrus.FieldLogger
	deck         *deck.Deck
	participants []*Participant
	// totalChips never changes for the life of the session
	totalChips int

	handNumber  int
	buttonIndex int
	dealerState DealerState
	history     []DealerState
	inHand      []*Participant
	community   deck.Hand
	potManager  *potmanager.PotManager
	round       *bettinground.Round
	lastAction  *lastAction
	lastResult  *HandResult

	closed  bool
	logChan chan []*playable.LogMessage
}

type lastAction struct {
	Seat   int           `json:"seat"`
	Action action.Action `json:"action"`
	Amount int           `json:"amount"`
}

// HandResult describes how a hand was settled
type HandResult struct {
	HandNumber int                `json:"handNumber"`
	EndedBy    DealerState        `json:"endedBy"`
	Payouts    map[int]int        `json:"payouts"`
	Awards     []potmanager.Award `json:"awards"`
	Winners    []int              `json:"winners"`
	History    []DealerState      `json:"history"`
}

// NewGame returns a new game of Texas Hold'em
// Every seat starts with the same stack. No hand is dealt until StartHand() is called.
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	d := deck.New()
	if opts.Seed != 0 {
		d.SetSeed(opts.Seed)
	}

	participants := make([]*Participant, opts.Seats)
	for i := range participants {
		participants[i] = newParticipant(i, opts.StartingStack)
	}

	return &Game{
		options:      opts,
		logger:       logger.WithField("game", "texas-hold-em"),
		deck:         d,
		participants: participants,
		totalChips:   opts.Seats * opts.StartingStack,
		buttonIndex:  -1,
		dealerState:  DealerStateWaiting,
		community:    make(deck.Hand, 0, 5),
		logChan:      make(chan []*playable.LogMessage, 256),
	}, nil
}

// StartHand moves the button, posts the forced bets and deals the hole cards
// If nobody can act after the blinds (everyone is all-in), the board is run out and the hand
// is settled before returning.
func (g *Game) StartHand() error {
	if g.closed {
		return ErrGameClosed
	}

	if g.dealerState.isHandInProgress() {
		return ErrHandInProgress
	}

	funded := 0
	for _, p := range g.participants {
		if p.balance > 0 {
			funded++
		}
	}

	if funded < MinSeats {
		return ErrNotEnoughPlayers
	}

	g.handNumber++
	g.buttonIndex = g.nextFundedSeat(g.buttonIndex)
	g.history = nil
	g.community = make(deck.Hand, 0, 5)
	g.lastAction = nil
	g.lastResult = nil
	g.round = nil
	g.potManager = potmanager.New()
	g.inHand = make([]*Participant, 0, len(g.participants))
	for _, p := range g.participants {
		p.newHand()
		if !p.dealtIn {
			continue
		}

		p.handsPlayed++
		g.inHand = append(g.inHand, p)
		if err := g.potManager.SeatParticipant(p); err != nil {
			return g.abort(err)
		}
	}

	g.setDealerState(DealerStatePostBlinds)
	g.logger.WithFields(logrus.Fields{
		"hand":   g.handNumber,
		"button": g.buttonIndex,
		"seats":  len(g.inHand),
	}).Info("starting hand")

	logs := playable.SimpleLogMessageSlice(g.buttonIndex, "Hand #%d started and {} has the button", g.handNumber)
	blindLogs, err := g.postForcedBets()
	if err != nil {
		return g.abort(err)
	}

	g.syncParticipants()
	g.sendLogMessages(append(logs, blindLogs...)...)

	g.deck.Shuffle()
	if err := g.dealHoleCards(); err != nil {
		return g.abort(err)
	}

	g.setDealerState(DealerStatePreFlop)
	if err := g.round.Start(g.firstToActPreFlop()); err != nil {
		return g.abort(err)
	}

	if err := g.checkChips(); err != nil {
		return g.abort(err)
	}

	return g.advance()
}

// SubmitAction applies the move for the seat and advances the hand as far as it can go
// An invalid move returns an error and changes nothing. The state returned is as seen by the seat.
func (g *Game) SubmitAction(seat int, move action.Move) (*GameState, error) {
	if g.closed {
		return nil, ErrGameClosed
	}

	if g.round == nil || !g.dealerState.IsBettingRound() {
		return nil, &bettinground.IllegalActionError{Seat: seat, Action: move.Action, Reason: "no hand is in progress"}
	}

	res, err := g.round.Apply(seat, move)
	if err != nil {
		return nil, err
	}

	g.lastAction = &lastAction{
		Seat:   seat,
		Action: move.Action,
		Amount: res.Amount,
	}

	g.syncParticipants()
	g.logger.WithFields(logrus.Fields{
		"hand":   g.handNumber,
		"seat":   seat,
		"action": string(move.Action),
		"amount": res.Amount,
	}).Debug("action applied")
	g.sendLogMessages(playable.SimpleLogMessage(seat, "{} %s", res.LogMessage()))

	if err := g.checkChips(); err != nil {
		return nil, g.abort(err)
	}

	if err := g.advance(); err != nil {
		return nil, err
	}

	return g.CurrentState(seat), nil
}

// LegalActions returns what the seat can do, or nil if the seat is not on the clock
func (g *Game) LegalActions(seat int) []bettinground.LegalAction {
	if g.round == nil || !g.dealerState.IsBettingRound() {
		return nil
	}

	return g.round.LegalActions(seat)
}

// CurrentTurn returns the seat on the clock
func (g *Game) CurrentTurn() (int, bool) {
	if g.round == nil || !g.dealerState.IsBettingRound() {
		return 0, false
	}

	return g.round.Current()
}

// IsHandInProgress returns true if a hand has been started and not yet settled
func (g *Game) IsHandInProgress() bool {
	return g.dealerState.isHandInProgress()
}

// HandNumber returns the number of hands started in this session
func (g *Game) HandNumber() int {
	return g.handNumber
}

// LastResult returns how the most recent hand was settled, or nil if it is still being played
func (g *Game) LastResult() *HandResult {
	return g.lastResult
}

// Stacks returns the chips behind for every seat
func (g *Game) Stacks() []int {
	stacks := make([]int, len(g.participants))
	for i, p := range g.participants {
		stacks[i] = p.balance
	}

	return stacks
}

// advance moves the hand forward until a seat has to act or the hand is over
func (g *Game) advance() error {
	for {
		switch g.round.State() {
		case bettinground.AwaitingAction:
			return nil
		case bettinground.HandEndsEarly:
			return g.awardEarly()
		case bettinground.RoundComplete:
			if g.dealerState == DealerStateRiver {
				return g.showdown()
			}

			if err := g.dealNextStreet(); err != nil {
				return g.abort(err)
			}
		default:
			return g.abort(fmt.Errorf("unknown round state: %s", g.round.State()))
		}
	}
}

func (g *Game) postForcedBets() ([]*playable.LogMessage, error) {
	logs := make([]*playable.LogMessage, 0, len(g.inHand)+2)
	if g.options.Ante > 0 {
		for _, p := range g.inHand {
			amount, err := g.potManager.Contribute(p.Seat, g.options.Ante)
			if err != nil {
				return nil, err
			}

			logs = append(logs, playable.SimpleLogMessage(p.Seat, "{} paid the ${%d} ante", amount))
		}
	}

	g.round = bettinground.New(g.potManager, g.options.BigBlind, g.roundParticipants())

	smallBlind, bigBlind := g.blindSeats()
	blinds := []struct {
		seat   int
		amount int
		name   string
	}{
		{seat: smallBlind, amount: g.options.SmallBlind, name: "small"},
		{seat: bigBlind, amount: g.options.BigBlind, name: "big"},
	}

	for _, blind := range blinds {
		posted, err := g.round.Post(blind.seat, blind.amount)
		if err != nil {
			return nil, err
		}

		if posted > 0 {
			logs = append(logs, playable.SimpleLogMessage(blind.seat, "{} posted the ${%d} %s blind", posted, blind.name))
		}
	}

	return logs, nil
}

// dealHoleCards deals one card at a time, starting left of the button
func (g *Game) dealHoleCards() error {
	for i := 0; i < 2; i++ {
		seat := g.buttonIndex
		for range g.inHand {
			seat = g.nextInHand(seat)
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			g.participants[seat].cards.AddCard(card)
		}
	}

	return nil
}

func (g *Game) dealNextStreet() error {
	var next DealerState
	var count int
	switch g.dealerState {
	case DealerStatePreFlop:
		next, count = DealerStateFlop, 3
	case DealerStateFlop:
		next, count = DealerStateTurn, 1
	case DealerStateTurn:
		next, count = DealerStateRiver, 1
	default:
		return fmt.Errorf("cannot deal from state %s", g.dealerState)
	}

	cards, err := g.deck.Deal(count)
	if err != nil {
		return err
	}

	g.community = append(g.community, cards...)
	g.setDealerState(next)
	g.sendLogMessages(playable.CardsLogMessage(cards, "Dealt the %s", next))

	g.round = bettinground.New(g.potManager, g.options.BigBlind, g.roundParticipants())
	return g.round.Start(g.nextInHand(g.buttonIndex))
}

func (g *Game) showdown() error {
	g.setDealerState(DealerStateShowdown)

	wm := potmanager.NewWinManager()
	for _, p := range g.inHand {
		if p.status == StatusFolded {
			p.result = resultFolded
			continue
		}

		ha := p.getHandAnalyzer(g.community)
		if ha == nil {
			return g.abort(fmt.Errorf("could not evaluate the hand for seat %d", p.Seat))
		}

		p.reveal = true
		wm.AddParticipant(p, ha.GetRank())
	}

	payouts, err := g.potManager.PayWinners(g.buttonIndex, wm.GetSortedTiers())
	if err != nil {
		return g.abort(err)
	}

	return g.finishHand(DealerStateShowdown, payouts)
}

// awardEarly gives the pot to the last seat standing without showing any cards
func (g *Game) awardEarly() error {
	g.setDealerState(DealerStateEarlyAward)

	var winner *Participant
	for _, p := range g.inHand {
		if p.status == StatusFolded {
			p.result = resultFolded
		} else {
			winner = p
		}
	}

	if winner == nil {
		return g.abort(errors.New("no seat is left to award the pot to"))
	}

	amount, err := g.potManager.AwardAll(winner.Seat)
	if err != nil {
		return g.abort(err)
	}

	return g.finishHand(DealerStateEarlyAward, map[int]int{winner.Seat: amount})
}

func (g *Game) finishHand(endedBy DealerState, payouts map[int]int) error {
	awards := g.potManager.Awards()
	isWinner := make(map[int]bool)
	for _, award := range awards {
		if endedBy == DealerStateEarlyAward || award.IsContested() {
			for _, id := range award.Winners {
				isWinner[id] = true
			}
		}
	}

	winners := make([]int, 0, len(isWinner))
	logs := make([]*playable.LogMessage, 0, len(g.inHand))
	for _, p := range g.inHand {
		p.winnings = payouts[p.Seat]

		var description string
		if p.reveal {
			description = p.getHandAnalyzer(g.community).Description()
		}

		switch {
		case isWinner[p.Seat]:
			p.result = resultWon
			p.handsWon++
			winners = append(winners, p.Seat)

			if description != "" {
				logs = append(logs, playable.SimpleLogMessage(p.Seat, "{} won ${%d} with %s", p.winnings, description))
			} else {
				logs = append(logs, playable.SimpleLogMessage(p.Seat, "{} won ${%d}", p.winnings))
			}
		case p.result == resultFolded:
		default:
			p.result = resultLost
			if description != "" {
				logs = append(logs, playable.SimpleLogMessage(p.Seat, "{} lost with %s", description))
			}
		}
	}

	g.setDealerState(DealerStateComplete)
	g.lastResult = &HandResult{
		HandNumber: g.handNumber,
		EndedBy:    endedBy,
		Payouts:    payouts,
		Awards:     awards,
		Winners:    winners,
		History:    append([]DealerState(nil), g.history...),
	}

	if err := g.checkChips(); err != nil {
		return g.abort(err)
	}

	g.logger.WithFields(logrus.Fields{
		"hand":    g.handNumber,
		"endedBy": endedBy.String(),
		"winners": winners,
	}).Info("hand complete")
	g.sendLogMessages(logs...)
	return nil
}

// abort refunds every contribution to the hand and returns a FaultError
func (g *Game) abort(err error) error {
	if g.potManager != nil && !g.potManager.IsSettled() {
		if _, refundErr := g.potManager.Refund(); refundErr != nil {
			g.logger.WithError(refundErr).Error("could not refund the pot")
		}
	}

	for _, p := range g.inHand {
		p.handContribution = 0
	}

	g.setDealerState(DealerStateAborted)
	g.logger.WithError(err).WithField("hand", g.handNumber).Error("aborting hand")
	g.sendLogMessages(playable.SimpleLogMessage(playable.NoPlayer, "Hand #%d was aborted and every bet was returned", g.handNumber))

	return &FaultError{
		HandNumber: g.handNumber,
		Err:        err,
	}
}

// checkChips ensures no chips were created or destroyed
func (g *Game) checkChips() error {
	total := 0
	for _, p := range g.participants {
		total += p.balance
	}

	if g.potManager != nil {
		total += g.potManager.Total()
	}

	if total != g.totalChips {
		return fmt.Errorf("%w: expected %d, found %d", errChipsNotConserved, g.totalChips, total)
	}

	return nil
}

// syncParticipants copies the pot's view of each seat onto the participants
func (g *Game) syncParticipants() {
	for _, p := range g.inHand {
		p.handContribution = g.potManager.Contribution(p.Seat)
		switch {
		case g.potManager.IsFolded(p.Seat):
			p.status = StatusFolded
		case g.potManager.IsAllIn(p.Seat):
			p.status = StatusAllIn
		default:
			p.status = StatusActive
		}
	}
}

func (g *Game) setDealerState(state DealerState) {
	g.dealerState = state
	g.history = append(g.history, state)
}

func (g *Game) roundParticipants() []potmanager.Participant {
	participants := make([]potmanager.Participant, len(g.inHand))
	for i, p := range g.inHand {
		participants[i] = p
	}

	return participants
}

// blindSeats returns the small and big blind seats
// Heads-up, the button posts the small blind.
func (g *Game) blindSeats() (int, int) {
	if len(g.inHand) == 2 {
		return g.buttonIndex, g.nextInHand(g.buttonIndex)
	}

	smallBlind := g.nextInHand(g.buttonIndex)
	return smallBlind, g.nextInHand(smallBlind)
}

func (g *Game) firstToActPreFlop() int {
	smallBlind, bigBlind := g.blindSeats()
	if len(g.inHand) == 2 {
		return smallBlind
	}

	return g.nextInHand(bigBlind)
}

// nextInHand returns the next seat clockwise that was dealt into the hand
func (g *Game) nextInHand(seat int) int {
	n := len(g.participants)
	for i := 1; i <= n; i++ {
		idx := ((seat+i)%n + n) % n
		if g.participants[idx].dealtIn {
			return idx
		}
	}

	return seat
}

// nextFundedSeat returns the next seat clockwise that has chips
func (g *Game) nextFundedSeat(seat int) int {
	n := len(g.participants)
	for i := 1; i <= n; i++ {
		idx := ((seat+i)%n + n) % n
		if g.participants[idx].balance > 0 {
			return idx
		}
	}

	return seat
}
