package strategy

import (
	"fmt"
	"sanguine/game"
)

// Move is a recommended placement.
type Move struct {
	Row, Col int
	Card     game.Card
}

func (m Move) String() string {
	return fmt.Sprintf("%s@(%d,%d)", m.Card.Name(), m.Row, m.Col)
}

// Strategy recommends a move for color. ok is false when the strategy
// recommends passing, which is not an error. Implementations only read the
// view; any lookahead runs on board snapshots.
type Strategy interface {
	Choose(view game.View, color game.Color) (move Move, ok bool, err error)
}

var ErrNilView = fmt.Errorf("%w: nil view", game.ErrPrecondition)

// candidates lists every legal placement for color, hand order first and
// then cells in row-major order.
func candidates(view game.View, color game.Color) ([]Move, error) {
	if view == nil {
		return nil, ErrNilView
	}
	hand, err := view.Hand(color)
	if err != nil {
		return nil, err
	}
	rows, cols, err := view.Dimensions()
	if err != nil {
		return nil, err
	}

	var moves []Move
	for _, card := range hand {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if view.IsLegal(row, col, card, color) {
					moves = append(moves, Move{Row: row, Col: col, Card: card})
				}
			}
		}
	}
	return moves, nil
}

// simulate applies m for color on a copy of board.
func simulate(board *game.Board, m Move, color game.Color) (*game.Board, error) {
	next := board.Snapshot()
	if err := next.Apply(m.Row, m.Col, m.Card, color); err != nil {
		return nil, err
	}
	return next, nil
}

// before orders moves by row, then column.
func before(a, b Move) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
