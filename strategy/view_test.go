package strategy

import (
	"sanguine/game"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	crab       = game.MustCard("Crab", 1, 1, "XXXXX", "XXXXX", "XICIX", "XXXXX", "XXXXX")
	lancer     = game.MustCard("Lancer", 1, 3, "XXXXX", "XXXXX", "XXCXX", "XXXXX", "XXXXX")
	mandragora = game.MustCard("Mandragora", 1, 2, "XXXXX", "XXIXX", "XXCXX", "XXIXX", "XXXXX")
	queen      = game.MustCard("Queen", 2, 3, "XXXXX", "XXIXX", "XICIX", "XXIXX", "XXXXX")
	dragon     = game.MustCard("Dragon", 3, 6, "XXIXX", "XIIIX", "IICII", "XIIIX", "XXIXX")
)

// boardView serves a hand-built position to strategies.
type boardView struct {
	board *game.Board
	hands map[game.Color][]game.Card
}

var _ game.View = boardView{}

func (v boardView) Turn() (game.Color, error) { return game.Red, nil }

func (v boardView) Hand(color game.Color) ([]game.Card, error) {
	return append([]game.Card(nil), v.hands[color]...), nil
}

func (v boardView) CellAt(row, col int) (game.Cell, error) { return v.board.CellAt(row, col) }

func (v boardView) Owner(row, col int) (game.Color, error) {
	cell, err := v.board.CellAt(row, col)
	return cell.Owner(), err
}

func (v boardView) RowScore(color game.Color, row int) (int, error) {
	return v.board.RowScore(color, row)
}

func (v boardView) Score(game.Color) (int, error) { return 0, nil }

func (v boardView) Result() (game.Result, error) { return game.Result{}, nil }

func (v boardView) IsGameOver() (bool, error) { return false, nil }

func (v boardView) Board() (*game.Board, error) { return v.board.Snapshot(), nil }

func (v boardView) Dimensions() (int, int, error) { return v.board.Rows(), v.board.Cols(), nil }

func (v boardView) IsLegal(row, col int, card game.Card, color game.Color) bool {
	return v.board.Legal(row, col, card, color)
}

// newView builds a 3x5 board with the opening pawns.
func newView(t *testing.T, red, blue []game.Card) boardView {
	t.Helper()
	b, err := game.NewBoard(3, 5)
	require.NoError(t, err)
	for row := 0; row < b.Rows(); row++ {
		require.NoError(t, b.PlacePawn(row, 0, game.Red))
		require.NoError(t, b.PlacePawn(row, b.Cols()-1, game.Blue))
	}
	return boardView{board: b, hands: map[game.Color][]game.Card{game.Red: red, game.Blue: blue}}
}

func startedGame(t *testing.T, seed uint64) *game.Game {
	t.Helper()
	g := game.NewGame(game.WithSeed(seed))
	require.NoError(t, g.StartGame(3, 5, nil, nil, 3))
	return g
}
