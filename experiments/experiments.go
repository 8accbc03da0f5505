package experiments

import (
	"fmt"
	"math"
	"sanguine/config"
	"sanguine/engine"
	"sanguine/experiments/metrics"
	"sanguine/game"
	"sanguine/player"
	"sanguine/strategy"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	MatchUps []metrics.MatchUpStat
	Dir      string // where the csv files went, empty when not written
}

// Run plays cfg.Games games for every ordered pair of the configured
// strategies. Game i of every match up uses seed cfg.Seed+i so all pairs
// see the same deals.
func Run(cfg config.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	deck, err := cfg.Deck()
	if err != nil {
		return Summary{}, err
	}

	matchUps := [][2]string{}
	for _, red := range cfg.Strategies {
		for _, blue := range cfg.Strategies {
			matchUps = append(matchUps, [2]string{red, blue})
		}
	}

	summary := Summary{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting tournament of %d match ups with %d games each...", len(matchUps), cfg.Games)

	for mi, matchUp := range matchUps {
		stats := metrics.MatchUpStat{ID: mi + 1, Red: matchUp[0], Blue: matchUp[1]}
		margins := make([]float64, 0, cfg.Games)

		log.Info().Msgf("starting match up %d of %d: %s (red) vs %s (blue)", mi+1, len(matchUps), stats.Red, stats.Blue)

		for i := 0; i < cfg.Games; i++ {
			result, gameMetric, moveMetrics, err := runGame(cfg, deck, cfg.Seed+uint64(i), stats.Red, stats.Blue)
			if err != nil {
				return Summary{}, fmt.Errorf("match up %d game %d: %w", mi+1, i+1, err)
			}

			stats.Games++
			switch {
			case result.Outcome == game.Tie:
				stats.Ties++
			case result.Winner == game.Red:
				stats.RedWins++
			default:
				stats.BlueWins++
			}
			margins = append(margins, float64(gameMetric.Margin()))

			gameRecords = append(gameRecords, metrics.GameRecord{
				MatchUp:    stats.ID,
				Red:        stats.Red,
				Blue:       stats.Blue,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}
		}

		stats.MeanMargin, stats.StdMargin = marginStats(margins)
		summary.MatchUps = append(summary.MatchUps, stats)

		log.Info().Msgf("completed match up %d of %d: red %d, blue %d, ties %d, mean margin %.2f",
			mi+1, len(matchUps), stats.RedWins, stats.BlueWins, stats.Ties, stats.MeanMargin)
	}

	log.Info().Msg("completed tournament")

	if cfg.OutputDir == "" {
		return summary, nil
	}
	dir, err := store(cfg.OutputDir, summary.MatchUps, gameRecords, moveRecords)
	if err != nil {
		return Summary{}, err
	}
	summary.Dir = dir
	return summary, nil
}

func runGame(cfg config.Config, deck []game.Card, seed uint64, redName, blueName string) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	red, err := strategy.ByName(redName)
	if err != nil {
		return game.Result{}, metrics.GameMetric{}, nil, err
	}
	blue, err := strategy.ByName(blueName)
	if err != nil {
		return game.Result{}, metrics.GameMetric{}, nil, err
	}

	g := game.NewGame(game.WithSeed(seed))
	if err := g.StartGame(cfg.Rows, cfg.Cols, deck, deck, cfg.HandSize); err != nil {
		return game.Result{}, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(g, player.NewAI(game.Red, red), player.NewAI(game.Blue, blue))
	e.MaxTurns = cfg.MaxTurns
	return e.Run()
}

// marginStats returns the mean and sample standard deviation of margins.
// The deviation is 0 for fewer than two games.
func marginStats(margins []float64) (float64, float64) {
	if len(margins) == 0 {
		return 0, 0
	}
	mean, std := stat.MeanStdDev(margins, nil)
	if len(margins) < 2 || math.IsNaN(std) {
		std = 0
	}
	return mean, std
}

func store(root string, stats []metrics.MatchUpStat, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteMatchUps(stats); err != nil {
		return "", fmt.Errorf("failed to write match ups: %w", err)
	}
	log.Info().Msg("stored match ups")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
