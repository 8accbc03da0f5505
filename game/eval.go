package game

// Score sums color's row scores over the rows color strictly leads. Tied
// rows count for neither side.
func (g *Game) Score(color Color) (int, error) {
	if err := g.checkStarted(); err != nil {
		return 0, err
	}
	if !color.valid() {
		return 0, ErrInvalidColor
	}
	return score(g.board, color), nil
}

// Result is Ongoing until the game is over, then a Win for the higher
// score or a Tie.
func (g *Game) Result() (Result, error) {
	if err := g.checkStarted(); err != nil {
		return Result{}, err
	}
	return g.result(), nil
}

func (g *Game) result() Result {
	if g.passes < 2 {
		return Result{Outcome: Ongoing}
	}
	red, blue := score(g.board, Red), score(g.board, Blue)
	switch {
	case red > blue:
		return Result{Outcome: Win, Winner: Red}
	case blue > red:
		return Result{Outcome: Win, Winner: Blue}
	default:
		return Result{Outcome: Tie}
	}
}

func score(b *Board, color Color) int {
	total := 0
	for row := 0; row < b.Rows(); row++ {
		if leader, _ := b.RowLeader(row); leader != color {
			continue
		}
		s, _ := b.RowScore(color, row)
		total += s
	}
	return total
}
