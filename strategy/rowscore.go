package strategy

import "sanguine/game"

// MaxRowScore walks the rows top to bottom looking for the first row it
// does not already lead where one card would take the lead.
type MaxRowScore struct{}

func (MaxRowScore) Choose(view game.View, color game.Color) (Move, bool, error) {
	if view == nil {
		return Move{}, false, ErrNilView
	}
	hand, err := view.Hand(color)
	if err != nil {
		return Move{}, false, err
	}
	rows, cols, err := view.Dimensions()
	if err != nil {
		return Move{}, false, err
	}

	for row := 0; row < rows; row++ {
		mine, err := view.RowScore(color, row)
		if err != nil {
			return Move{}, false, err
		}
		theirs, err := view.RowScore(color.Opponent(), row)
		if err != nil {
			return Move{}, false, err
		}
		if mine > theirs {
			continue
		}
		for col := 0; col < cols; col++ {
			for _, card := range hand {
				if mine+card.Value() > theirs && view.IsLegal(row, col, card, color) {
					return Move{Row: row, Col: col, Card: card}, true, nil
				}
			}
		}
	}
	return Move{}, false, nil
}
