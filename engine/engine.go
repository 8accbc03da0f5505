package engine

import (
	"errors"
	"sanguine/experiments/metrics"
	"sanguine/game"
)

// MaxTurns caps a single game. A finite board ends long before this; the cap
// only stops a pair of seats that never finish.
const MaxTurns = 300

var ErrTurnLimit = errors.New("turn limit reached")

type Runner interface {
	// Run plays the game until it is over or the turn limit is reached.
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
