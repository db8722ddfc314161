package potmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testParticipant struct {
	id      int
	balance int
}

func (t *testParticipant) ID() int {
	return t.id
}

func (t *testParticipant) Balance() int {
	return t.balance
}

func (t *testParticipant) AdjustBalance(amount int) {
	t.balance += amount
}

func newTestParticipant(id, balance int) *testParticipant {
	return &testParticipant{
		id:      id,
		balance: balance,
	}
}

func setupPotManager(t *testing.T, participants ...*testParticipant) *PotManager {
	t.Helper()

	pm := New()
	for _, p := range participants {
		if err := pm.SeatParticipant(p); err != nil {
			t.Fatal(err)
		}
	}

	return pm
}

func contribute(t *testing.T, pm *PotManager, id, amount int) {
	t.Helper()

	if _, err := pm.Contribute(id, amount); err != nil {
		t.Fatal(err)
	}
}

func totalChips(pm *PotManager, participants ...*testParticipant) int {
	total := pm.Total()
	for _, p := range participants {
		total += p.balance
	}

	return total
}

func TestPotManager_SeatParticipant(t *testing.T) {
	a := assert.New(t)

	pm := New()
	a.NoError(pm.SeatParticipant(newTestParticipant(1, 100)))
	a.EqualError(pm.SeatParticipant(newTestParticipant(1, 100)), "participant 1 is already seated")
	a.NoError(pm.SeatParticipant(newTestParticipant(2, 0)))
	a.True(pm.IsAllIn(2))
	a.False(pm.IsAllIn(1))
}

func TestPotManager_Contribute(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(1, 100)
	p2 := newTestParticipant(2, 100)
	pm := setupPotManager(t, p1, p2)

	amount, err := pm.Contribute(1, 40)
	a.NoError(err)
	a.Equal(40, amount)
	a.Equal(60, p1.balance)
	a.Equal(40, pm.Contribution(1))
	a.Equal(200, totalChips(pm, p1, p2))

	// more than the balance is an all-in
	amount, err = pm.Contribute(1, 500)
	a.NoError(err)
	a.Equal(60, amount)
	a.Equal(0, p1.balance)
	a.True(pm.IsAllIn(1))
	a.Equal(100, pm.Contribution(1))
	a.Equal(200, totalChips(pm, p1, p2))

	_, err = pm.Contribute(1, 10)
	a.EqualError(err, "participant 1 is all-in")

	_, err = pm.Contribute(2, 0)
	a.EqualError(err, "contribution must be positive, got 0")
	a.IsType(ParticipantError(""), err)

	_, err = pm.Contribute(3, 10)
	a.ErrorIs(err, ErrParticipantNotFound)

	a.NoError(pm.Fold(2))
	a.True(pm.IsFolded(2))
	_, err = pm.Contribute(2, 10)
	a.EqualError(err, "participant 2 has folded")
	a.ErrorIs(pm.Fold(3), ErrParticipantNotFound)
}

func TestPotManager_Pots_sidePots(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(1, 500)
	p2 := newTestParticipant(2, 1200)
	p3 := newTestParticipant(3, 5000)
	pm := setupPotManager(t, p1, p2, p3)

	contribute(t, pm, 1, 500)
	contribute(t, pm, 2, 1200)
	contribute(t, pm, 3, 2000)

	pots := pm.Pots()
	a.Len(pots, 3)
	a.Equal(1500, pots[0].Amount)
	a.Equal([]int{1, 2, 3}, pots[0].EligibleIDs())
	a.Equal(1400, pots[1].Amount)
	a.Equal([]int{2, 3}, pots[1].EligibleIDs())
	a.Equal(800, pots[2].Amount)
	a.Equal([]int{3}, pots[2].EligibleIDs())
	a.Equal(3700, pots.Total())
	a.Equal(pm.Total(), pots.Total())
}

func TestPotManager_Pots_foldedMoney(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(1, 1000)
	p2 := newTestParticipant(2, 300)
	p3 := newTestParticipant(3, 1000)
	p4 := newTestParticipant(4, 1000)
	pm := setupPotManager(t, p1, p2, p3, p4)

	contribute(t, pm, 1, 100)
	contribute(t, pm, 2, 300)
	contribute(t, pm, 3, 800)
	contribute(t, pm, 4, 800)
	a.NoError(pm.Fold(1))

	pots := pm.Pots()
	a.Len(pots, 2)
	a.Equal(100+300*3, pots[0].Amount)
	a.Equal([]int{2, 3, 4}, pots[0].EligibleIDs())
	a.Equal(500*2, pots[1].Amount)
	a.Equal([]int{3, 4}, pots[1].EligibleIDs())

	// a folded raise above every live level lands in the last pot
	pm = setupPotManager(t, newTestParticipant(1, 1000), newTestParticipant(2, 100), newTestParticipant(3, 1000))
	contribute(t, pm, 1, 600)
	contribute(t, pm, 2, 100)
	contribute(t, pm, 3, 200)
	a.NoError(pm.Fold(1))
	a.NoError(pm.Fold(3))

	pots = pm.Pots()
	a.Len(pots, 1)
	a.Equal(900, pots[0].Amount)
	a.Equal([]int{2}, pots[0].EligibleIDs())
}

func TestPotManager_Pots_empty(t *testing.T) {
	a := assert.New(t)

	pm := setupPotManager(t, newTestParticipant(1, 100), newTestParticipant(2, 100))
	a.Len(pm.Pots(), 0)
}

func TestPotManager_PayWinners_sidePots(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(1, 500)
	p2 := newTestParticipant(2, 1200)
	p3 := newTestParticipant(3, 5000)
	pm := setupPotManager(t, p1, p2, p3)
	contribute(t, pm, 1, 500)
	contribute(t, pm, 2, 1200)
	contribute(t, pm, 3, 2000)

	// the short stack has the best hand, then the middle stack
	payouts, err := pm.PayWinners(3, [][]Participant{{p1}, {p2}, {p3}})
	a.NoError(err)
	a.Equal(map[int]int{1: 1500, 2: 1400, 3: 800}, payouts)
	a.Equal(1500, p1.balance)
	a.Equal(1400, p2.balance)
	a.Equal(3800, p3.balance)
	a.Equal(0, pm.Total())
	a.True(pm.IsSettled())

	awards := pm.Awards()
	a.Len(awards, 3)
	a.Equal(Award{Amount: 1500, Eligible: []int{1, 2, 3}, Winners: []int{1}, Shares: map[int]int{1: 1500}}, awards[0])
	a.Equal(Award{Amount: 1400, Eligible: []int{2, 3}, Winners: []int{2}, Shares: map[int]int{2: 1400}}, awards[1])
	a.Equal(Award{Amount: 800, Eligible: []int{3}, Winners: []int{3}, Shares: map[int]int{3: 800}}, awards[2])
	a.True(awards[1].IsContested())
	a.False(awards[2].IsContested(), "uncalled chips go back to their owner")

	_, err = pm.PayWinners(3, [][]Participant{{p1}})
	a.ErrorIs(err, ErrPotSettled)
}

func TestPotManager_PayWinners_oddChip(t *testing.T) {
	a := assert.New(t)

	p0 := newTestParticipant(0, 5000)
	p1 := newTestParticipant(1, 5000)
	p2 := newTestParticipant(2, 5000)
	pm := setupPotManager(t, p0, p1, p2)
	contribute(t, pm, 0, 2000)
	contribute(t, pm, 1, 1)
	contribute(t, pm, 2, 2000)
	a.NoError(pm.Fold(1))

	// button is seat 2, so seat 0 is first to the left
	payouts, err := pm.PayWinners(2, [][]Participant{{p2, p0}})
	a.NoError(err)
	a.Equal(map[int]int{0: 2001, 2: 2000}, payouts)
	a.Equal(5001, p0.balance)
	a.Equal(5000, p2.balance)
	a.Equal(4999, p1.balance)

	a.Equal([]Award{{
		Amount:   4001,
		Eligible: []int{0, 2},
		Winners:  []int{0, 2},
		Shares:   map[int]int{0: 2001, 2: 2000},
	}}, pm.Awards())
}

func TestPotManager_PayWinners_oddChipsWrapAround(t *testing.T) {
	a := assert.New(t)

	ps := []*testParticipant{
		newTestParticipant(0, 100),
		newTestParticipant(1, 100),
		newTestParticipant(2, 100),
		newTestParticipant(3, 100),
	}
	pm := setupPotManager(t, ps...)
	for _, p := range ps {
		contribute(t, pm, p.id, 25)
	}
	contribute(t, pm, 3, 1)
	a.NoError(pm.Fold(3))

	// 101 chips split three ways, button on seat 1: seat 2 then seat 0 gets the odd chips
	payouts, err := pm.PayWinners(1, [][]Participant{{ps[0], ps[1], ps[2]}})
	a.NoError(err)
	a.Equal(map[int]int{0: 34, 1: 33, 2: 34}, payouts)
}

func TestPotManager_PayWinners_errors(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(1, 100)
	p2 := newTestParticipant(2, 100)
	pm := setupPotManager(t, p1, p2)
	contribute(t, pm, 1, 50)
	contribute(t, pm, 2, 50)
	a.NoError(pm.Fold(2))

	_, err := pm.PayWinners(5, [][]Participant{{p1}})
	a.ErrorIs(err, ErrParticipantNotFound)

	// a folded participant cannot win, and nothing is paid
	_, err = pm.PayWinners(1, [][]Participant{{p2}})
	a.ErrorIs(err, ErrNoEligibleWinner)
	a.EqualError(err, "pot 0: no winner is eligible for the pot")
	a.Equal(50, p1.balance)
	a.Equal(100, pm.Total())
	a.False(pm.IsSettled())
	a.Nil(pm.Awards())
}

func TestPotManager_AwardAll(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(1, 100)
	p2 := newTestParticipant(2, 100)
	pm := setupPotManager(t, p1, p2)
	contribute(t, pm, 1, 10)
	contribute(t, pm, 2, 20)

	_, err := pm.AwardAll(3)
	a.ErrorIs(err, ErrParticipantNotFound)

	amount, err := pm.AwardAll(2)
	a.NoError(err)
	a.Equal(30, amount)
	a.Equal(110, p2.balance)
	a.Equal(200, totalChips(pm, p1, p2))
	a.Equal([]Award{{Amount: 30, Eligible: []int{2}, Winners: []int{2}, Shares: map[int]int{2: 30}}}, pm.Awards())

	_, err = pm.AwardAll(2)
	a.ErrorIs(err, ErrPotSettled)
}

func TestPotManager_Refund(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(1, 100)
	p2 := newTestParticipant(2, 100)
	p3 := newTestParticipant(3, 100)
	pm := setupPotManager(t, p1, p2, p3)
	contribute(t, pm, 1, 10)
	contribute(t, pm, 2, 100)

	refunds, err := pm.Refund()
	a.NoError(err)
	a.Equal(map[int]int{1: 10, 2: 100}, refunds)
	a.Equal(100, p1.balance)
	a.Equal(100, p2.balance)
	a.Equal(100, p3.balance)

	_, err = pm.Refund()
	a.ErrorIs(err, ErrPotSettled)
}

func TestPot_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	pot := Pot{Amount: 300, Eligible: []Participant{newTestParticipant(4, 0), newTestParticipant(7, 0)}}
	b, err := pot.MarshalJSON()
	a.NoError(err)
	a.JSONEq(`{"amount":300,"eligible":[4,7]}`, string(b))
	a.True(pot.IsEligible(7))
	a.False(pot.IsEligible(1))
}
