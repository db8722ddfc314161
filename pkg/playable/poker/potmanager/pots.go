package potmanager

import "encoding/json"

// Pot is a main pot or side pot
type Pot struct {
	Amount int
	// Eligible are the participants who can win the pot, in table order
	Eligible []Participant
}

type potJSON struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	ids := p.EligibleIDs()
	return json.Marshal(potJSON{
		Amount:   p.Amount,
		Eligible: ids,
	})
}

// EligibleIDs returns the ID of every eligible participant
func (p Pot) EligibleIDs() []int {
	ids := make([]int, len(p.Eligible))
	for i, pt := range p.Eligible {
		ids[i] = pt.ID()
	}

	return ids
}

// IsEligible returns true if the participant can win the pot
func (p Pot) IsEligible(id int) bool {
	for _, pt := range p.Eligible {
		if pt.ID() == id {
			return true
		}
	}

	return false
}

// Pots represents an ordered list of pots, main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}
