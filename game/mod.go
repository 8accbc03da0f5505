package game

// Color identifies one of the two sides. Red always moves first.
type Color int

const (
	NoColor Color = iota
	Red
	Blue
)

// Colors lists the playing colors in turn order.
var Colors = [2]Color{Red, Blue}

func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

func (c Color) valid() bool {
	return c == Red || c == Blue
}

type Outcome int

const (
	Ongoing Outcome = iota
	Win
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "ongoing"
	}
}

// Result is the answer to "who won?". Winner is only set when Outcome is Win.
type Result struct {
	Outcome Outcome
	Winner  Color
}

func (r Result) String() string {
	if r.Outcome == Win {
		return r.Winner.String()
	}
	return r.Outcome.String()
}

// View is the read-only surface of a game, consumed by strategies and
// presentation layers. Nothing reachable through it mutates the game.
type View interface {
	Turn() (Color, error)
	Hand(color Color) ([]Card, error)
	CellAt(row, col int) (Cell, error)
	Owner(row, col int) (Color, error)
	RowScore(color Color, row int) (int, error)
	Score(color Color) (int, error)
	Result() (Result, error)
	IsGameOver() (bool, error)
	Dimensions() (rows, cols int, err error)
	IsLegal(row, col int, card Card, color Color) bool
	// Board returns a deep copy that the caller may freely mutate.
	Board() (*Board, error)
}
