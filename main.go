package main

import (
	"flag"
	"fmt"
	"os"
	"sanguine/config"
	"sanguine/engine"
	"sanguine/experiments"
	"sanguine/game"
	"sanguine/player"
	"sanguine/strategy"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	show := flag.Bool("show", false, "Play a single game between the first and last configured strategies and print every turn")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	if *show {
		if err := showGame(cfg); err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
		return
	}

	summary, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	fmt.Printf("%-10s %-10s %5s %5s %5s %5s %8s %8s\n", "red", "blue", "games", "red", "blue", "ties", "margin", "stddev")
	for _, s := range summary.MatchUps {
		fmt.Printf("%-10s %-10s %5d %5d %5d %5d %8.2f %8.2f\n", s.Red, s.Blue, s.Games, s.RedWins, s.BlueWins, s.Ties, s.MeanMargin, s.StdMargin)
	}
	if summary.Dir != "" {
		log.Info().Msgf("results written to %s", summary.Dir)
	}
}

// showGame plays one game and prints the board after every turn.
func showGame(cfg config.Config) error {
	redName, blueName := cfg.Strategies[0], cfg.Strategies[len(cfg.Strategies)-1]
	red, err := strategy.ByName(redName)
	if err != nil {
		return err
	}
	blue, err := strategy.ByName(blueName)
	if err != nil {
		return err
	}
	deck, err := cfg.Deck()
	if err != nil {
		return err
	}

	g := game.NewGame(game.WithSeed(cfg.Seed), game.WithLogger(log.Logger))
	if err := g.StartGame(cfg.Rows, cfg.Cols, deck, deck, cfg.HandSize); err != nil {
		return err
	}
	board, _ := g.Board()
	fmt.Print(game.Render(board))

	g.Subscribe(game.ListenerFuncs{
		OnTurn: func(turn game.Color) {
			board, _ := g.Board()
			fmt.Printf("\n%s to play\n%s", turn, game.Render(board))
		},
		OnGameOver: func(result game.Result) {
			red, _ := g.Score(game.Red)
			blue, _ := g.Score(game.Blue)
			fmt.Printf("\ngame over: %s (%d-%d)\n", result, red, blue)
		},
	})

	e := engine.LocalEngine(g, player.NewAI(game.Red, red), player.NewAI(game.Blue, blue))
	e.MaxTurns = cfg.MaxTurns
	_, _, _, err = e.Run()
	return err
}
