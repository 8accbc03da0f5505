package strategy

import "sanguine/game"

// FirstLegal plays the first legal placement it finds, scanning the hand in
// order and the board row by row.
type FirstLegal struct{}

func (FirstLegal) Choose(view game.View, color game.Color) (Move, bool, error) {
	moves, err := candidates(view, color)
	if err != nil || len(moves) == 0 {
		return Move{}, false, err
	}
	return moves[0], true, nil
}
