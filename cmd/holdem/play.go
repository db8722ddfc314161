package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"holdem/internal/config"
	"holdem/pkg/playable"
	"holdem/pkg/playable/poker/action"
	"holdem/pkg/playable/poker/texasholdem"
)

// script is a list of hands, each a list of actions taken in turn order
// An action is free text such as "call", "bet 400" or "raise to 1200".
type script struct {
	Seed  int64      `yaml:"seed"`
	Hands [][]string `yaml:"hands"`
}

func play(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	scriptFile := fs.String("script", "", "the YAML file with the hands to play")
	history := fs.Bool("history", false, "print the log of each hand as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *scriptFile == "" {
		return errors.New("-script is required")
	}

	s, err := loadScript(*scriptFile)
	if err != nil {
		return err
	}

	opts := config.Instance().GameOptions()
	if s.Seed != 0 {
		opts.Seed = s.Seed
	}

	game, err := texasholdem.NewGame(logrus.StandardLogger(), opts)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		printLogs(game)
	}()

	onHand := func(*texasholdem.Game) {}
	if *history {
		onHand = printHandLog
	}

	err = runScript(game, s, onHand)
	game.Close()
	<-done

	if err != nil {
		return err
	}

	return renderStacks(game)
}

func loadScript(filename string) (*script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var s script
	if err := yaml.NewDecoder(file).Decode(&s); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", filename, err)
	}

	return &s, nil
}

// runScript plays every hand in the script
// Once a hand runs out of scripted actions, each seat checks when it can and folds otherwise.
func runScript(game *texasholdem.Game, s *script, onHand func(*texasholdem.Game)) error {
	for i, actions := range s.Hands {
		if err := game.StartHand(); err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		for _, text := range actions {
			if !game.IsHandInProgress() {
				return fmt.Errorf("hand %d: the hand is over before %q", i+1, text)
			}

			move, err := action.Parse(text)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}

			seat, _ := game.CurrentTurn()
			if _, err := game.SubmitAction(seat, move); err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}
		}

		for game.IsHandInProgress() {
			seat, _ := game.CurrentTurn()
			if _, err := game.SubmitAction(seat, passiveMove(game, seat)); err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}
		}

		onHand(game)
	}

	return nil
}

func passiveMove(game *texasholdem.Game, seat int) action.Move {
	for _, legal := range game.LegalActions(seat) {
		if legal.Action == action.Check {
			return action.Move{Action: action.Check}
		}
	}

	return action.Move{Action: action.Fold}
}

func printLogs(p playable.Playable) {
	for logs := range p.LogChan() {
		for _, l := range logs {
			pterm.Println(l.String())
		}
	}
}

func printHandLog(game *texasholdem.Game) {
	b, err := json.MarshalIndent(game.HandLog(), "", "  ")
	if err != nil {
		logrus.WithError(err).Error("could not encode the hand log")
		return
	}

	pterm.Println(string(b))
}

func renderStacks(game *texasholdem.Game) error {
	data := pterm.TableData{{"Seat", "Stack"}}
	for seat, stack := range game.Stacks() {
		data = append(data, []string{strconv.Itoa(seat), strconv.Itoa(stack)})
	}

	pterm.DefaultSection.Println(game.Name())
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
