package texasholdem

// limits on the number of seats at a table
const (
	MinSeats = 2
	MaxSeats = 10
)

// Options configures how Texas Hold'em is played
type Options struct {
	Seats         int `json:"seats" yaml:"seats"`
	StartingStack int `json:"startingStack" yaml:"startingStack"`
	SmallBlind    int `json:"smallBlind" yaml:"smallBlind"`
	BigBlind      int `json:"bigBlind" yaml:"bigBlind"`
	Ante          int `json:"ante" yaml:"ante"`
	// Seed makes the shuffles repeatable when non-zero
	Seed int64 `json:"seed" yaml:"seed"`
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		Seats:         4,
		StartingStack: 10000,
		SmallBlind:    100,
		BigBlind:      200,
		Ante:          0,
	}
}

func validateOptions(opts Options) error {
	if opts.Seats < MinSeats || opts.Seats > MaxSeats {
		return &ConfigurationError{Field: "seats", Reason: "must be between 2 and 10"}
	}

	if opts.StartingStack <= 0 {
		return &ConfigurationError{Field: "starting stack", Reason: "must be greater than zero"}
	}

	if opts.BigBlind <= 0 {
		return &ConfigurationError{Field: "big blind", Reason: "must be greater than zero"}
	}

	if opts.SmallBlind < 0 {
		return &ConfigurationError{Field: "small blind", Reason: "must be zero or more"}
	}

	if opts.SmallBlind > opts.BigBlind {
		return &ConfigurationError{Field: "small blind", Reason: "must not be more than the big blind"}
	}

	if opts.Ante < 0 {
		return &ConfigurationError{Field: "ante", Reason: "must be zero or more"}
	}

	return nil
}
