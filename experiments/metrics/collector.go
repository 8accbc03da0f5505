package metrics

import (
	"sanguine/game"
	"time"

	"github.com/google/uuid"
)

type MoveMetric struct {
	Step      int
	Player    game.Color
	Action    string
	Pass      bool
	Rejected  bool // the engine refused the move and recorded a pass instead
	Duration  time.Duration
	RedScore  int
	BlueScore int
}

type GameMetric struct {
	ID         uuid.UUID
	Result     game.Result
	RedScore   int
	BlueScore  int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Placements int
	Rejected   int
}

// Margin is red's final score minus blue's.
func (m GameMetric) Margin() int {
	return m.RedScore - m.BlueScore
}

// Collector times a single decision.
type Collector interface {
	Start(step int, player game.Color)
	Complete(action string, pass, rejected bool) MoveMetric
}

type collector struct {
	step      int
	player    game.Color
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(step int, player game.Color) {
	m.startTime = time.Now()
	m.step = step
	m.player = player
}

func (m *collector) Complete(action string, pass, rejected bool) MoveMetric {
	return MoveMetric{
		Step:     m.step,
		Player:   m.player,
		Action:   action,
		Pass:     pass,
		Rejected: rejected,
		Duration: time.Since(m.startTime),
	}
}
