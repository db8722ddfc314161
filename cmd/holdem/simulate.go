package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"holdem/internal/config"
	"holdem/pkg/playable/poker/handanalyzer"
	"holdem/pkg/playable/poker/handstats"
)

func simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	hands := fs.Int("n", 10000, "the number of hands to deal")
	players := fs.Int("players", 6, "the number of players at the table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logrus.WithFields(logrus.Fields{
		"hands":   *hands,
		"players": *players,
	}).Info("simulating")

	report, err := handstats.Simulate(ctx, handstats.Options{
		Hands:   *hands,
		Players: *players,
		Seed:    config.Instance().Seed,
	})
	if err != nil {
		return err
	}

	pterm.DefaultSection.Printfln("%d hands with %d players", report.Hands, report.Players)
	return pterm.DefaultTable.WithHasHeader().WithData(reportTable(report)).Render()
}

func reportTable(report *handstats.Report) pterm.TableData {
	data := pterm.TableData{{"Hand", "All hands", "Winning hands"}}
	for i := len(handanalyzer.Hands) - 1; i >= 0; i-- {
		hand := handanalyzer.Hands[i]
		data = append(data, []string{
			hand.String(),
			fmt.Sprintf("%.4f%%", report.AllPercent(hand)),
			fmt.Sprintf("%.4f%%", report.WinningPercent(hand)),
		})
	}

	return data
}
