package strategy

import (
	"sanguine/game"
	"sanguine/utils"
)

const (
	// TopHalfThreshold is the share of the opponent's presence in the top
	// half of the board that marks it as a first-legal player.
	TopHalfThreshold = 0.5
	// RowLeadThreshold is the share of rows the opponent must lead to be
	// read as a row-score player.
	RowLeadThreshold = 0.5
)

// Counter guesses which strategy the opponent follows, predicts its next
// placement and tries to take the target cell first. Without anything to
// block it plays like MaxOwnership.
type Counter struct {
	first     FirstLegal
	ownership MaxOwnership
	rowScore  MaxRowScore
}

func (s Counter) Choose(view game.View, color game.Color) (Move, bool, error) {
	if view == nil {
		return Move{}, false, ErrNilView
	}
	board, err := view.Board()
	if err != nil {
		return Move{}, false, err
	}
	hand, err := view.Hand(color)
	if err != nil {
		return Move{}, false, err
	}
	opponent := color.Opponent()

	var (
		top, lead     Move
		okTop, okLead bool
	)
	if topHalfShare(board, opponent) >= TopHalfThreshold {
		if top, okTop, err = s.block(view, board, hand, color, s.first); err != nil {
			return Move{}, false, err
		}
	}
	if rowLeadShare(board, opponent) >= RowLeadThreshold {
		if lead, okLead, err = s.block(view, board, hand, color, s.rowScore); err != nil {
			return Move{}, false, err
		}
	}

	switch {
	case okTop && okLead:
		if earlier(lead, top, hand) {
			return lead, true, nil
		}
		return top, true, nil
	case okTop:
		return top, true, nil
	case okLead:
		return lead, true, nil
	}

	m, ok, err := s.block(view, board, hand, color, s.ownership)
	if err != nil || ok {
		return m, ok, err
	}
	return s.ownership.Choose(view, color)
}

// block predicts the opponent's move with predictor and returns the first
// legal placement that leaves color owning the predicted target cell.
func (s Counter) block(view game.View, board *game.Board, hand []game.Card, color game.Color, predictor Strategy) (Move, bool, error) {
	predicted, ok, err := predictor.Choose(view, color.Opponent())
	if err != nil || !ok {
		return Move{}, false, err
	}

	for _, card := range hand {
		for row := 0; row < board.Rows(); row++ {
			for col := 0; col < board.Cols(); col++ {
				m := Move{Row: row, Col: col, Card: card}
				next, err := simulate(board, m, color)
				if err != nil {
					continue
				}
				if cell, _ := next.CellAt(predicted.Row, predicted.Col); cell.Owner() == color {
					return m, true, nil
				}
			}
		}
	}
	return Move{}, false, nil
}

// earlier orders blocking moves by row, column and then hand position.
func earlier(a, b Move, hand []game.Card) bool {
	if a.Row != b.Row || a.Col != b.Col {
		return before(a, b)
	}
	return utils.FindIndex(hand, a.Card) < utils.FindIndex(hand, b.Card)
}

// topHalfShare is the fraction of color's presence sitting in the top half
// of the board. A card counts once, pawns count individually.
func topHalfShare(board *game.Board, color game.Color) float64 {
	top, total := 0, 0
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell, _ := board.CellAt(row, col)
			if cell.Owner() != color {
				continue
			}
			units := cell.Pawns()
			if cell.HasCard() {
				units = 1
			}
			total += units
			if row <= board.Rows()/2 {
				top += units
			}
		}
	}
	return utils.Ratio(top, total)
}

// rowLeadShare is the fraction of rows color strictly leads.
func rowLeadShare(board *game.Board, color game.Color) float64 {
	led := 0
	for row := 0; row < board.Rows(); row++ {
		if leader, _ := board.RowLeader(row); leader == color {
			led++
		}
	}
	return utils.Ratio(led, board.Rows())
}
