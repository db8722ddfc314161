package bettinground

import (
	"holdem/pkg/playable/poker/potmanager"
)

type seat struct {
	potmanager.Participant
	tableIndex int

	// roundContribution is what the seat has put in during this round, blinds included
	roundContribution int
	// acted is false until the seat voluntarily acts; posting a blind is not acting
	acted bool
	// facedBet is the current bet the seat matched the last time it acted
	facedBet int
	folded   bool
	allIn    bool

	// links in the ring of seats that can still act
	next, prev *seat
}

func (s *seat) canAct() bool {
	return !s.folded && !s.allIn
}

// ring is a circular doubly linked list of the seats that can still act, in table order
type ring struct {
	size int
	head *seat
}

// push appends the seat to the end of the ring
// Seats must be pushed in table order.
func (r *ring) push(s *seat) {
	if r.head == nil {
		s.next, s.prev = s, s
		r.head = s
	} else {
		tail := r.head.prev
		tail.next, s.prev = s, tail
		s.next, r.head.prev = r.head, s
	}

	r.size++
}

// remove unlinks the seat in constant time
func (r *ring) remove(s *seat) {
	if s.next == nil {
		return
	}

	if r.size == 1 {
		r.head = nil
	} else {
		s.prev.next, s.next.prev = s.next, s.prev
		if r.head == s {
			r.head = s.next
		}
	}

	s.next, s.prev = nil, nil
	r.size--
}

func (r *ring) contains(s *seat) bool {
	return s.next != nil
}
