package potmanager

// Participant provides an interface for retrieving and adjusting a participants balance
type Participant interface {
	ID() int
	Balance() int
	AdjustBalance(amount int)
}

// participantInPot is a participant in a pot
type participantInPot struct {
	Participant
	// tableIndex is where the player is seated at the table
	tableIndex int
	// contribution is everything the player has put into the pot this hand
	contribution int
	isAllIn      bool
	isFolded     bool
}
