package main

import (
	"flag"
	"log"
	"os"

	"germanbridge/internal/config"
	"germanbridge/internal/console"
	"germanbridge/internal/gateway"
	"germanbridge/internal/scoring"
)

func main() {
	cfg := config.Load()

	players := flag.String("players", "", "comma separated player names")
	ruleName := flag.String("rule", cfg.ScoringRule, "scoring rule: standard or split")
	serverURL := flag.String("server", cfg.GatewayURL, "persistence gateway URL")
	offline := flag.Bool("offline", false, "disable save and load")
	gameID := flag.String("game", "", "resume a saved game by id")
	flag.Parse()

	rule, err := scoring.ParseRule(*ruleName)
	if err != nil {
		log.Fatal(err.Error())
	}

	opts := console.Options{
		Players: *players,
		Rule:    rule,
		GameID:  *gameID,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
	if !*offline {
		opts.Gateway = gateway.New(*serverURL)
	}

	if err := console.Run(opts); err != nil {
		log.Fatal(err.Error())
	}
}
