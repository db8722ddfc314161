package bettinground

import (
	"fmt"

	"holdem/pkg/playable/poker/action"
	"holdem/pkg/playable/poker/potmanager"
)

// Round is a single betting round (one street)
// Chips are moved through the hand's PotManager so folds and all-ins carry over to later streets.
type Round struct {
	potManager *potmanager.PotManager
	bigBlind   int

	seats      map[int]*seat
	tableOrder []*seat
	ring       ring

	// current is the seat on the clock
	current *seat
	// pending is how many seats, starting at current and following the ring, still owe an action
	pending int

	currentBet int
	// minRaise is the last full raise increment, and never less than the big blind
	minRaise int

	started bool
	state   State
}

// LegalAction is an action a seat can take along with the allowed amounts
// For bet and raise_to the amounts are totals for the round, for raise they are the increment
// over the current bet, and for call it is the amount that will be added.
type LegalAction struct {
	Action action.Action `json:"action"`
	Min    int           `json:"min"`
	Max    int           `json:"max"`
}

// Result describes an action that was applied
type Result struct {
	Seat   int
	Action action.Action
	// Amount is the chips moved from the seat's stack
	Amount int
	// RoundContribution is the seat's total for the round after the action
	RoundContribution int
	AllIn             bool
}

// LogMessage returns the player facing description of the result
func (r Result) LogMessage() string {
	amount := r.Amount
	if r.Action == action.Raise || r.Action == action.RaiseTo || r.Action == action.Bet {
		amount = r.RoundContribution
	}

	msg := r.Action.LogMessage(amount)
	if r.AllIn {
		msg += " and is all-in"
	}

	return msg
}

// New returns a betting round for the participants, who must be given in table order
// Participants that have folded or are all-in according to the PotManager will never be asked to act.
func New(pm *potmanager.PotManager, bigBlind int, participants []potmanager.Participant) *Round {
	r := &Round{
		potManager: pm,
		bigBlind:   bigBlind,
		seats:      make(map[int]*seat, len(participants)),
		tableOrder: make([]*seat, 0, len(participants)),
		minRaise:   bigBlind,
		state:      AwaitingAction,
	}

	for i, p := range participants {
		s := &seat{
			Participant: p,
			tableIndex:  i,
			folded:      pm.IsFolded(p.ID()),
			allIn:       pm.IsAllIn(p.ID()),
		}

		r.seats[p.ID()] = s
		r.tableOrder = append(r.tableOrder, s)
		if s.canAct() {
			r.ring.push(s)
		}
	}

	return r
}

// Post places a forced bet (a blind) for the seat
// Posting does not count as acting, so the seat keeps its option to raise. A seat without enough
// chips is put all-in for what it has. The amount actually posted is returned.
func (r *Round) Post(id, amount int) (int, error) {
	if r.started {
		return 0, ErrRoundStarted
	}

	s, ok := r.seats[id]
	if !ok {
		return 0, fmt.Errorf("seat %d is not in the hand", id)
	}

	// a seat put all-in by the ante has nothing left to post
	if amount <= 0 || s.allIn {
		return 0, nil
	}

	posted, err := r.contribute(s, amount)
	if err != nil {
		return 0, err
	}

	if s.roundContribution > r.currentBet {
		r.currentBet = s.roundContribution
	}

	return posted, nil
}

// Start puts the first seat that can act, at or after firstToAct in table order, on the clock
func (r *Round) Start(firstToAct int) error {
	if r.started {
		return ErrRoundStarted
	}

	s, ok := r.seats[firstToAct]
	if !ok {
		return fmt.Errorf("seat %d is not in the hand", firstToAct)
	}

	r.started = true
	r.pending = r.ring.size
	for i := 0; i < len(r.tableOrder); i++ {
		candidate := r.tableOrder[(s.tableIndex+i)%len(r.tableOrder)]
		if candidate.canAct() {
			r.current = candidate
			break
		}
	}

	r.updateState()
	return nil
}

// State returns the state of the round
func (r *Round) State() State {
	return r.state
}

// IsOver returns true if no further action can happen in this round
func (r *Round) IsOver() bool {
	return r.started && r.state != AwaitingAction
}

// Current returns the ID of the seat on the clock
func (r *Round) Current() (int, bool) {
	if !r.started || r.state != AwaitingAction {
		return 0, false
	}

	return r.current.ID(), true
}

// CurrentBet returns the highest round contribution
func (r *Round) CurrentBet() int {
	return r.currentBet
}

// MinRaise returns the smallest increment allowed for a full raise
func (r *Round) MinRaise() int {
	return r.minRaise
}

// RoundContribution returns what the seat has put in this round
func (r *Round) RoundContribution(id int) int {
	if s, ok := r.seats[id]; ok {
		return s.roundContribution
	}

	return 0
}

// CanActCount returns how many seats are neither folded nor all-in
func (r *Round) CanActCount() int {
	return r.ring.size
}

// LegalActions returns the actions available to the seat, or nil if the seat is not on the clock
func (r *Round) LegalActions(id int) []LegalAction {
	current, ok := r.Current()
	if !ok || current != id {
		return nil
	}

	s := r.current
	stack := s.Balance()
	maxTotal := s.roundContribution + stack
	legal := []LegalAction{{Action: action.Fold}}

	if s.roundContribution >= r.currentBet {
		legal = append(legal, LegalAction{Action: action.Check})
	} else {
		toCall := min(r.currentBet-s.roundContribution, stack)
		legal = append(legal, LegalAction{Action: action.Call, Min: toCall, Max: toCall})
	}

	if !r.canBetOrRaise(s) {
		return legal
	}

	if r.currentBet == 0 {
		legal = append(legal, LegalAction{Action: action.Bet, Min: min(r.bigBlind, stack), Max: stack})
	} else {
		minTotal := min(r.currentBet+r.minRaise, maxTotal)
		legal = append(legal,
			LegalAction{Action: action.Raise, Min: minTotal - r.currentBet, Max: maxTotal - r.currentBet},
			LegalAction{Action: action.RaiseTo, Min: minTotal, Max: maxTotal},
		)
	}

	return legal
}

// canBetOrRaise returns true if the seat may put in more than the current bet
func (r *Round) canBetOrRaise(s *seat) bool {
	// someone else must be able to respond
	if r.ring.size < 2 {
		return false
	}

	if s.roundContribution+s.Balance() <= r.currentBet {
		return false
	}

	// a short all-in does not reopen the raising to seats that already acted on a wager
	return !s.acted || s.facedBet == 0 || r.currentBet-s.facedBet >= r.minRaise
}

// Apply validates and applies the move for the seat
// Nothing is changed if an error is returned.
func (r *Round) Apply(id int, move action.Move) (Result, error) {
	if !r.started {
		return Result{}, ErrRoundNotStarted
	}

	s, ok := r.seats[id]
	if !ok {
		return Result{}, illegal(id, move.Action, "seat is not in the hand")
	}

	if !move.Action.IsValid() {
		return Result{}, illegal(id, move.Action, "unknown action")
	}

	if r.state != AwaitingAction {
		return Result{}, illegal(id, move.Action, "the betting round is over")
	}

	if r.current != s {
		return Result{}, illegal(id, move.Action, "it is not your turn")
	}

	if move.Action.NeedsAmount() && move.Amount <= 0 {
		return Result{}, &InvalidAmountError{Seat: id, Action: move.Action, Amount: move.Amount}
	}

	target, err := r.validate(s, move)
	if err != nil {
		return Result{}, err
	}

	next := s.next
	result := Result{Seat: id, Action: move.Action}

	switch move.Action {
	case action.Fold:
		if err := r.potManager.Fold(id); err != nil {
			return Result{}, err
		}

		s.folded = true
		r.ring.remove(s)
		r.pending--
	case action.Check:
		r.pending--
	case action.Call:
		amount, err := r.contribute(s, r.currentBet-s.roundContribution)
		if err != nil {
			return Result{}, err
		}

		result.Amount = amount
		r.pending--
	case action.Bet, action.Raise, action.RaiseTo:
		amount, err := r.contribute(s, target-s.roundContribution)
		if err != nil {
			return Result{}, err
		}

		result.Amount = amount
		if increment := s.roundContribution - r.currentBet; increment >= r.minRaise {
			r.minRaise = increment
		}

		r.currentBet = s.roundContribution
		// everyone else still in the ring has to respond
		r.pending = r.ring.size
		if r.ring.contains(s) {
			r.pending--
		}
	}

	if move.Action != action.Fold {
		s.acted = true
		s.facedBet = r.currentBet
	}

	result.RoundContribution = s.roundContribution
	result.AllIn = s.allIn

	if r.ring.size > 0 {
		r.current = next
	}

	r.updateState()
	return result, nil
}

// validate checks the move and returns the round contribution the seat will have after a bet or raise
func (r *Round) validate(s *seat, move action.Move) (int, error) {
	id := s.ID()
	stack := s.Balance()
	maxTotal := s.roundContribution + stack

	switch move.Action {
	case action.Fold:
		return 0, nil
	case action.Check:
		if s.roundContribution < r.currentBet {
			return 0, illegal(id, move.Action, "there is a bet of %d to call", r.currentBet-s.roundContribution)
		}

		return 0, nil
	case action.Call:
		if s.roundContribution >= r.currentBet {
			return 0, illegal(id, move.Action, "there is no bet to call")
		}

		return 0, nil
	case action.Bet:
		if r.currentBet > 0 {
			return 0, illegal(id, move.Action, "there is already a bet of %d", r.currentBet)
		}

		if !r.canBetOrRaise(s) {
			return 0, illegal(id, move.Action, "betting is closed")
		}

		target := min(move.Amount, stack)
		if target < r.bigBlind && target < stack {
			return 0, illegal(id, move.Action, "bet must be at least %d", r.bigBlind)
		}

		return target, nil
	case action.Raise, action.RaiseTo:
		if r.currentBet == 0 {
			return 0, illegal(id, move.Action, "there is no bet to raise")
		}

		if !r.canBetOrRaise(s) {
			return 0, illegal(id, move.Action, "raising is closed")
		}

		target := move.Amount
		if move.Action == action.Raise {
			// anything past the stack is an all-in
			target = min(move.Amount, maxTotal-r.currentBet) + r.currentBet
		}

		target = min(target, maxTotal)
		if target <= r.currentBet {
			return 0, illegal(id, move.Action, "raise must be more than the current bet of %d", r.currentBet)
		}

		if target < r.currentBet+r.minRaise && target < maxTotal {
			return 0, illegal(id, move.Action, "raise must be at least to %d", r.currentBet+r.minRaise)
		}

		return target, nil
	}

	return 0, illegal(id, move.Action, "unknown action")
}

func (r *Round) contribute(s *seat, amount int) (int, error) {
	if amount <= 0 {
		return 0, nil
	}

	moved, err := r.potManager.Contribute(s.ID(), amount)
	if err != nil {
		return 0, err
	}

	s.roundContribution += moved
	if r.potManager.IsAllIn(s.ID()) {
		s.allIn = true
		r.ring.remove(s)
	}

	return moved, nil
}

func (r *Round) updateState() {
	if !r.started {
		return
	}

	live := 0
	for _, s := range r.tableOrder {
		if !s.folded {
			live++
		}
	}

	switch {
	case live <= 1:
		r.state = HandEndsEarly
	case r.ring.size == 0, r.pending <= 0:
		r.state = RoundComplete
	case r.ring.size == 1 && r.ring.head.roundContribution >= r.currentBet:
		r.state = RoundComplete
	default:
		r.state = AwaitingAction
	}
}
