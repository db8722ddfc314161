package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"holdem/internal/config"
)

const usage = `usage: holdem <command> [flags]

commands:
  play      plays scripted hands at a table built from the configuration
  simulate  deals random hands and reports how often each hand is made and wins
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	setupLogger()

	var err error
	switch os.Args[1] {
	case "play":
		err = play(os.Args[2:])
	case "simulate":
		err = simulate(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if useJSONLogs(cfg.Log.Format, os.Getenv("LOG_FORMAT"), term.IsTerminal(int(os.Stderr.Fd()))) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// useJSONLogs returns true if logs should be JSON
// LOG_FORMAT wins over the configured format. With neither set, logs that aren't going to a terminal are JSON.
func useJSONLogs(configured, env string, isTerminal bool) bool {
	format := strings.ToLower(env)
	if format == "" {
		format = strings.ToLower(configured)
	}

	switch format {
	case "json":
		return true
	case "text":
		return false
	}

	return !isTerminal
}
