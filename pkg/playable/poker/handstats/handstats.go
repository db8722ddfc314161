// Package handstats estimates how often each hand category is made, and how often it wins,
// by dealing random Texas Hold'em hands.
package handstats

import (
	"context"
	"errors"
	"fmt"

	"holdem/pkg/deck"
	"holdem/pkg/playable/poker/handanalyzer"
)

// limits on the number of players, each needs two hole cards from a single deck
const (
	MinPlayers = 2
	MaxPlayers = 23
)

// ErrInvalidHands is an error when fewer than one hand is requested
var ErrInvalidHands = errors.New("number of hands must be at least 1")

// ErrInvalidPlayers is an error when the number of players will not fit at the table
var ErrInvalidPlayers = fmt.Errorf("number of players must be between %d and %d", MinPlayers, MaxPlayers)

// how often the context is checked
const checkEvery = 1000

// Options configures a simulation
type Options struct {
	Hands   int
	Players int
	// Seed makes the simulation repeatable when non-zero
	Seed int64
}

// Frequency is how often a hand category was made
type Frequency struct {
	Hand handanalyzer.Hand `json:"hand"`
	// All counts every player's final hand
	All int `json:"all"`
	// Winning counts the hands that won or tied for the pot
	Winning int `json:"winning"`
}

// Report is the result of a simulation
type Report struct {
	Hands       int         `json:"hands"`
	Players     int         `json:"players"`
	Frequencies []Frequency `json:"frequencies"`

	totalAll     int
	totalWinning int
}

// AllPercent returns how often the category was made, out of every player's hand
func (r *Report) AllPercent(hand handanalyzer.Hand) float64 {
	return percent(r.Frequencies[hand].All, r.totalAll)
}

// WinningPercent returns how often the category won, out of every winning hand
func (r *Report) WinningPercent(hand handanalyzer.Hand) float64 {
	return percent(r.Frequencies[hand].Winning, r.totalWinning)
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(count) * 100 / float64(total)
}

// Simulate deals opts.Hands random hands to opts.Players players
// The context is checked periodically and its error is returned if it is done.
func Simulate(ctx context.Context, opts Options) (*Report, error) {
	if opts.Hands < 1 {
		return nil, ErrInvalidHands
	}

	if opts.Players < MinPlayers || opts.Players > MaxPlayers {
		return nil, ErrInvalidPlayers
	}

	d := deck.New()
	if opts.Seed != 0 {
		d.SetSeed(opts.Seed)
	}

	report := &Report{
		Hands:       opts.Hands,
		Players:     opts.Players,
		Frequencies: make([]Frequency, len(handanalyzer.Hands)),
	}

	for _, hand := range handanalyzer.Hands {
		report.Frequencies[hand].Hand = hand
	}

	ranks := make([]handanalyzer.HandRank, opts.Players)
	for i := 0; i < opts.Hands; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if err := dealHand(d, ranks); err != nil {
			return nil, err
		}

		report.record(ranks)
	}

	return report, nil
}

// dealHand deals hole cards to every player and a board, and ranks each player's best hand
func dealHand(d *deck.Deck, ranks []handanalyzer.HandRank) error {
	d.Shuffle()

	holeCards, err := d.Deal(2 * len(ranks))
	if err != nil {
		return err
	}

	board, err := d.Deal(5)
	if err != nil {
		return err
	}

	cards := make([]deck.Card, 7)
	copy(cards[2:], board)
	for i := range ranks {
		cards[0], cards[1] = holeCards[i], holeCards[i+len(ranks)]
		rank, err := handanalyzer.Evaluate(cards)
		if err != nil {
			return err
		}

		ranks[i] = rank
	}

	return nil
}

func (r *Report) record(ranks []handanalyzer.HandRank) {
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if best.Less(rank) {
			best = rank
		}
	}

	for _, rank := range ranks {
		r.Frequencies[rank.Hand].All++
		r.totalAll++

		if rank.Compare(best) == 0 {
			r.Frequencies[rank.Hand].Winning++
			r.totalWinning++
		}
	}
}
