package strategy

import "sanguine/game"

// MaxOwnership simulates every legal placement with its influence and keeps
// the one leaving color with the most owned cells. Ties go to the lowest
// row, then the lowest column.
type MaxOwnership struct{}

func (MaxOwnership) Choose(view game.View, color game.Color) (Move, bool, error) {
	moves, err := candidates(view, color)
	if err != nil || len(moves) == 0 {
		return Move{}, false, err
	}
	board, err := view.Board()
	if err != nil {
		return Move{}, false, err
	}

	best := -1
	var choice Move
	for _, m := range moves {
		next, err := simulate(board, m, color)
		if err != nil {
			continue
		}
		owned := next.Count(color)
		if owned > best || (owned == best && before(m, choice)) {
			best = owned
			choice = m
		}
	}
	if best < 0 {
		return Move{}, false, nil
	}
	return choice, true, nil
}
