package engine

import (
	"errors"
	"fmt"
	"sanguine/experiments/metrics"
	"sanguine/game"
	"sanguine/player"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Engine drives a started game between two seats.
type Engine struct {
	Game     *game.Game
	Players  map[game.Color]player.Player
	MaxTurns int

	collector metrics.Collector
}

var _ Runner = (*Engine)(nil)

func LocalEngine(g *game.Game, players ...player.Player) *Engine {
	if g == nil {
		panic("game must not be nil")
	}
	if len(players) != len(game.Colors) {
		panic("need exactly one player per color")
	}

	seats := make(map[game.Color]player.Player, len(players))
	for _, p := range players {
		color := p.Color()
		if color != game.Red && color != game.Blue {
			panic(fmt.Sprintf("player has invalid color %s", color))
		}
		if _, taken := seats[color]; taken {
			panic(fmt.Sprintf("two players share %s", color))
		}
		seats[color] = p
	}

	return &Engine{
		Game:      g,
		Players:   seats,
		MaxTurns:  MaxTurns,
		collector: metrics.NewCollector(),
	}
}

// Run executes the game loop. A move the game rejects is logged and played
// as a pass so a faulty seat cannot stall the game.
func (e *Engine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{ID: uuid.New(), StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("game %s is starting", gameMetric.ID)

	for step := 1; ; step++ {
		over, err := e.Game.IsGameOver()
		if err != nil {
			return game.Result{}, gameMetric, moveMetrics, err
		}
		if over {
			break
		}
		if step > e.MaxTurns {
			return game.Result{}, gameMetric, moveMetrics, fmt.Errorf("%w: %d turns", ErrTurnLimit, e.MaxTurns)
		}

		color, _ := e.Game.Turn()
		e.collector.Start(step, color)

		action, err := e.Players[color].TakeTurn(e.Game)
		if err != nil {
			return game.Result{}, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", step, err)
		}

		rejected, err := e.apply(color, action)
		if err != nil {
			return game.Result{}, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", step, err)
		}

		moveMetric := e.collector.Complete(action.String(), action.Pass || rejected, rejected)
		moveMetric.RedScore, _ = e.Game.Score(game.Red)
		moveMetric.BlueScore, _ = e.Game.Score(game.Blue)
		moveMetrics = append(moveMetrics, moveMetric)

		gameMetric.TotalMoves++
		switch {
		case rejected:
			gameMetric.Rejected++
		case !action.Pass:
			gameMetric.Placements++
		}
	}

	result, err := e.Game.Result()
	if err != nil {
		return game.Result{}, gameMetric, moveMetrics, err
	}
	gameMetric.Result = result
	gameMetric.RedScore, _ = e.Game.Score(game.Red)
	gameMetric.BlueScore, _ = e.Game.Score(game.Blue)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Debug().Msgf("game %s over after %d moves: %s (%d-%d)", gameMetric.ID, gameMetric.TotalMoves, result, gameMetric.RedScore, gameMetric.BlueScore)

	return result, gameMetric, moveMetrics, nil
}

// apply plays action for color and reports whether it had to be replaced by
// a pass.
func (e *Engine) apply(color game.Color, action player.Action) (bool, error) {
	if action.Pass {
		return false, e.Game.PassTurn()
	}

	m := action.Move
	err := e.Game.PlayTurn(m.Row, m.Col, m.Card)
	if !errors.Is(err, game.ErrInvalidMove) {
		return false, err
	}

	log.Warn().Err(err).Msgf("%s move %s rejected, passing instead", color, m)
	return true, e.Game.PassTurn()
}
