package potmanager

import (
	"errors"
	"fmt"
	"sort"
)

// ParticipantError is an error that happened because of a participant error
type ParticipantError string

func (p ParticipantError) Error() string {
	return string(p)
}

func newParticipantError(format string, a ...interface{}) ParticipantError {
	return ParticipantError(fmt.Sprintf(format, a...))
}

// ErrParticipantNotFound is an error when a participant with a provided ID cannot be found
var ErrParticipantNotFound = errors.New("participant not found")

// ErrPotSettled is an error when chips are moved after the pot has been paid out or refunded
var ErrPotSettled = errors.New("pot has already been settled")

// ErrNoEligibleWinner is an error when none of the winners can win a pot
var ErrNoEligibleWinner = errors.New("no winner is eligible for the pot")

// PotManager keeps track of every chip put into the pot during a hand
// Chips are only ever moved between a participant's balance and the pot, so the sum of
// balances and contributions never changes until the pot is paid out.
type PotManager struct {
	participants map[int]*participantInPot
	tableOrder   []*participantInPot
	settled      bool
	awards       []Award
}

// Award records how a single pot was paid out
type Award struct {
	Amount   int         `json:"amount"`
	Eligible []int       `json:"eligible"`
	Winners  []int       `json:"winners"`
	Shares   map[int]int `json:"shares"`
}

// IsContested returns true if more than one participant could have won the pot
func (a Award) IsContested() bool {
	return len(a.Eligible) > 1
}

// New instantiates a new PotManager
func New() *PotManager {
	return &PotManager{
		participants: make(map[int]*participantInPot),
		tableOrder:   make([]*participantInPot, 0),
	}
}

// SeatParticipant adds a participant to the table in the order called
// This method must be called in order of the players
func (p *PotManager) SeatParticipant(pt Participant) error {
	if _, ok := p.participants[pt.ID()]; ok {
		return fmt.Errorf("participant %d is already seated", pt.ID())
	}

	pip := &participantInPot{
		Participant: pt,
		tableIndex:  len(p.tableOrder),
		isAllIn:     pt.Balance() == 0,
	}

	p.participants[pt.ID()] = pip
	p.tableOrder = append(p.tableOrder, pip)
	return nil
}

// Contribute moves chips from the participant's balance into the pot
// If the amount is more than the participant has, the participant goes all-in for the balance.
// The amount actually moved is returned.
func (p *PotManager) Contribute(id, amount int) (int, error) {
	if amount <= 0 {
		return 0, newParticipantError("contribution must be positive, got %d", amount)
	}

	pip, err := p.getParticipantInPot(id)
	if err != nil {
		return 0, err
	}

	if pip.isFolded {
		return 0, newParticipantError("participant %d has folded", id)
	}

	if pip.isAllIn {
		return 0, newParticipantError("participant %d is all-in", id)
	}

	if amount >= pip.Balance() {
		amount = pip.Balance()
		pip.isAllIn = true
	}

	pip.AdjustBalance(-1 * amount)
	pip.contribution += amount
	return amount, nil
}

// Fold marks the participant as folded
// Anything already contributed stays in the pot.
func (p *PotManager) Fold(id int) error {
	pip, err := p.getParticipantInPot(id)
	if err != nil {
		return err
	}

	pip.isFolded = true
	return nil
}

// Contribution returns how much the participant has put in the pot
func (p *PotManager) Contribution(id int) int {
	if pip, ok := p.participants[id]; ok {
		return pip.contribution
	}

	return 0
}

// IsAllIn returns true if the participant has no chips left behind
func (p *PotManager) IsAllIn(id int) bool {
	pip, ok := p.participants[id]
	return ok && pip.isAllIn
}

// IsFolded returns true if the participant has folded
func (p *PotManager) IsFolded(id int) bool {
	pip, ok := p.participants[id]
	return ok && pip.isFolded
}

// Total returns every chip currently in the pot
func (p *PotManager) Total() int {
	total := 0
	for _, pip := range p.tableOrder {
		total += pip.contribution
	}

	return total
}

// Pots returns the main pot and any side pots
// Each distinct contribution level of a live participant closes a pot. A pot holds every
// participant's chips between the previous level and its own, and can be won by the live
// participants who reached its level. Chips folded above the highest live level go to the
// last pot.
func (p *PotManager) Pots() Pots {
	levelSet := make(map[int]bool)
	for _, pip := range p.tableOrder {
		if !pip.isFolded && pip.contribution > 0 {
			levelSet[pip.contribution] = true
		}
	}

	levels := make([]int, 0, len(levelSet))
	for level := range levelSet {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	total := p.Total()
	if len(levels) == 0 {
		if total == 0 {
			return Pots{}
		}

		eligible := make([]Participant, 0, len(p.tableOrder))
		for _, pip := range p.tableOrder {
			if !pip.isFolded {
				eligible = append(eligible, pip.Participant)
			}
		}

		return Pots{{Amount: total, Eligible: eligible}}
	}

	pots := make(Pots, 0, len(levels))
	allocated := 0
	prevLevel := 0
	for _, level := range levels {
		pot := &Pot{Eligible: make([]Participant, 0, len(p.tableOrder))}
		for _, pip := range p.tableOrder {
			amount := pip.contribution
			if amount > level {
				amount = level
			}

			if amount > prevLevel {
				pot.Amount += amount - prevLevel
			}

			if !pip.isFolded && pip.contribution >= level {
				pot.Eligible = append(pot.Eligible, pip.Participant)
			}
		}

		allocated += pot.Amount
		pots = append(pots, pot)
		prevLevel = level
	}

	pots[len(pots)-1].Amount += total - allocated
	return pots
}

// PayWinners will adjust balance for the winners and return the payouts keyed by participant ID
// Winners are tiers of tied participants, best hand first. Each pot goes to the first tier that
// has a participant eligible for it. A split pot's odd chips are handed out one at a time,
// clockwise from the seat to the left of the button.
func (p *PotManager) PayWinners(button int, winners [][]Participant) (map[int]int, error) {
	if p.settled {
		return nil, ErrPotSettled
	}

	buttonPip, err := p.getParticipantInPot(button)
	if err != nil {
		return nil, err
	}

	payouts := make(map[int]int)
	pots := p.Pots()
	awards := make([]Award, 0, len(pots))
	for potIndex, pot := range pots {
		potWinners := p.potWinners(pot, winners)
		if len(potWinners) == 0 {
			return nil, fmt.Errorf("pot %d: %w", potIndex, ErrNoEligibleWinner)
		}

		p.sortFromButton(buttonPip, potWinners)
		award := Award{
			Amount:   pot.Amount,
			Eligible: pot.EligibleIDs(),
			Winners:  make([]int, len(potWinners)),
			Shares:   make(map[int]int, len(potWinners)),
		}

		share := pot.Amount / len(potWinners)
		oddChips := pot.Amount % len(potWinners)
		for i, winner := range potWinners {
			amount := share
			if i < oddChips {
				amount++
			}

			award.Winners[i] = winner.ID()
			award.Shares[winner.ID()] = amount
			payouts[winner.ID()] += amount
		}

		awards = append(awards, award)
	}

	// nothing is moved until every pot has a winner
	for id, amount := range payouts {
		p.participants[id].AdjustBalance(amount)
	}

	p.settle()
	p.awards = awards
	return payouts, nil
}

// AwardAll gives every chip in the pot to one participant
func (p *PotManager) AwardAll(id int) (int, error) {
	if p.settled {
		return 0, ErrPotSettled
	}

	pip, err := p.getParticipantInPot(id)
	if err != nil {
		return 0, err
	}

	total := p.Total()
	pip.AdjustBalance(total)
	p.settle()
	p.awards = []Award{{
		Amount:   total,
		Eligible: []int{id},
		Winners:  []int{id},
		Shares:   map[int]int{id: total},
	}}

	return total, nil
}

// Refund returns every participant's contribution
func (p *PotManager) Refund() (map[int]int, error) {
	if p.settled {
		return nil, ErrPotSettled
	}

	refunds := make(map[int]int)
	for _, pip := range p.tableOrder {
		if pip.contribution > 0 {
			pip.AdjustBalance(pip.contribution)
			refunds[pip.ID()] = pip.contribution
		}
	}

	p.settle()
	return refunds, nil
}

// Awards returns how each pot was paid out, or nil if the pot has not been paid
func (p *PotManager) Awards() []Award {
	return p.awards
}

// IsSettled returns true once the pot has been paid out or refunded
func (p *PotManager) IsSettled() bool {
	return p.settled
}

func (p *PotManager) settle() {
	for _, pip := range p.tableOrder {
		pip.contribution = 0
	}

	p.settled = true
}

func (p *PotManager) potWinners(pot *Pot, winners [][]Participant) []*participantInPot {
	for _, tier := range winners {
		potWinners := make([]*participantInPot, 0, len(tier))
		for _, winner := range tier {
			if pot.IsEligible(winner.ID()) {
				potWinners = append(potWinners, p.participants[winner.ID()])
			}
		}

		if len(potWinners) > 0 {
			return potWinners
		}
	}

	return nil
}

// sortFromButton orders participants clockwise starting left of the button
func (p *PotManager) sortFromButton(button *participantInPot, pips []*participantInPot) {
	n := len(p.tableOrder)
	distance := func(pip *participantInPot) int {
		return (pip.tableIndex - button.tableIndex - 1 + n) % n
	}

	sort.Slice(pips, func(i, j int) bool {
		return distance(pips[i]) < distance(pips[j])
	})
}

func (p *PotManager) getParticipantInPot(id int) (*participantInPot, error) {
	pip, ok := p.participants[id]
	if !ok {
		return nil, ErrParticipantNotFound
	}

	return pip, nil
}
