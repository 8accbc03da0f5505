package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func startedGame(t *testing.T, options ...Option) *Game {
	t.Helper()
	g := NewGame(options...)
	require.NoError(t, g.StartGame(3, 5, nil, nil, 3))
	return g
}

func TestStartGame(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		g := startedGame(t)

		turn, err := g.Turn()
		require.NoError(t, err)
		require.Equal(t, Red, turn)

		hand, err := g.Hand(Red)
		require.NoError(t, err)
		require.Len(t, hand, 3)
		require.Equal(t, security, hand[0])

		size, err := g.DeckSize(Blue)
		require.NoError(t, err)
		require.Equal(t, 27, size)

		for row := 0; row < 3; row++ {
			owner, err := g.Owner(row, 0)
			require.NoError(t, err)
			require.Equal(t, Red, owner)
			owner, _ = g.Owner(row, 4)
			require.Equal(t, Blue, owner)
			owner, _ = g.Owner(row, 2)
			require.Equal(t, NoColor, owner)
		}

		over, err := g.IsGameOver()
		require.NoError(t, err)
		require.False(t, over)
		result, err := g.Result()
		require.NoError(t, err)
		require.Equal(t, Ongoing, result.Outcome)
	})

	t.Run("queries fail before start", func(t *testing.T) {
		g := NewGame()
		_, err := g.Turn()
		require.ErrorIs(t, err, ErrNotStarted)
		_, err = g.Score(Red)
		require.ErrorIs(t, err, ErrNotStarted)
		_, err = g.Hand(Red)
		require.ErrorIs(t, err, ErrNotStarted)
		_, err = g.Board()
		require.ErrorIs(t, err, ErrPrecondition)
		require.ErrorIs(t, g.PassTurn(), ErrNotStarted)
		require.ErrorIs(t, g.PlayTurn(0, 0, security), ErrNotStarted)
		require.False(t, g.IsLegal(0, 0, security, Red))
	})

	t.Run("invalid setups", func(t *testing.T) {
		tooSmall := DefaultDeck()[:10]
		tripled := append(DefaultDeck(), security)

		cases := []struct {
			name       string
			rows, cols int
			deck       []Card
			hand       int
			want       error
		}{
			{"even columns", 3, 4, nil, 3, ErrInvalidDimensions},
			{"no rows", 0, 5, nil, 3, ErrInvalidDimensions},
			{"deck smaller than board", 3, 5, tooSmall, 3, ErrInvalidDeck},
			{"three copies of a card", 3, 5, tripled, 3, ErrInvalidDeck},
			{"hand too large", 3, 5, nil, 11, ErrInvalidDeck},
			{"empty hand", 3, 5, nil, 0, ErrInvalidDeck},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				g := NewGame()
				require.ErrorIs(t, g.StartGame(tc.rows, tc.cols, tc.deck, tc.deck, tc.hand), tc.want)
				_, err := g.Turn()
				require.ErrorIs(t, err, ErrNotStarted)
			})
		}
	})

	t.Run("cannot start twice", func(t *testing.T) {
		g := startedGame(t)
		require.ErrorIs(t, g.StartGame(3, 5, nil, nil, 3), ErrAlreadyStarted)
	})

	t.Run("seeded shuffle is reproducible", func(t *testing.T) {
		a, _ := startedGame(t, WithSeed(7)).Hand(Blue)
		b, _ := startedGame(t, WithSeed(7)).Hand(Blue)
		require.Equal(t, a, b)
	})
}

func TestPlayTurn(t *testing.T) {
	t.Run("opening placement at the corner", func(t *testing.T) {
		g := startedGame(t)
		require.NoError(t, g.PlayTurn(0, 0, security))

		owner, _ := g.Owner(0, 0)
		require.Equal(t, Red, owner)
		owner, _ = g.Owner(0, 1)
		require.Equal(t, Red, owner)

		red, err := g.Score(Red)
		require.NoError(t, err)
		require.Equal(t, 2, red)
		blue, _ := g.Score(Blue)
		require.Equal(t, 0, blue)

		cell, _ := g.CellAt(0, 0)
		require.Equal(t, 0, cell.Pawns())
		got, _ := cell.Card()
		require.Equal(t, security, got)

		hand, _ := g.Hand(Red)
		require.Len(t, hand, 3, "hand is refilled after the placement")
		size, _ := g.DeckSize(Red)
		require.Equal(t, 26, size)

		turn, _ := g.Turn()
		require.Equal(t, Blue, turn)
	})

	t.Run("rejected moves change nothing", func(t *testing.T) {
		g := startedGame(t)
		before, _ := g.Board()
		hand, _ := g.Hand(Red)

		cases := []struct {
			name     string
			row, col int
			card     Card
			want     error
		}{
			{"out of bounds", 3, 0, security, ErrOutOfBounds},
			{"no pawns", 0, 1, security, ErrInsufficientPawns},
			{"opponent pawns", 0, 4, security, ErrOwnershipConflict},
			{"not in hand", 0, 0, dragon, ErrCardNotInHand},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := g.PlayTurn(tc.row, tc.col, tc.card)
				require.ErrorIs(t, err, tc.want)
				require.ErrorIs(t, err, ErrInvalidMove)

				var moveErr *MoveError
				require.True(t, errors.As(err, &moveErr))
				require.Equal(t, tc.row, moveErr.Row)
				require.Equal(t, tc.col, moveErr.Col)
			})
		}

		require.ErrorIs(t, g.PlayTurn(0, 0, Card{}), ErrPrecondition)

		after, _ := g.Board()
		require.Equal(t, before, after)
		handAfter, _ := g.Hand(Red)
		require.Equal(t, hand, handAfter)
		turn, _ := g.Turn()
		require.Equal(t, Red, turn)
	})

	t.Run("occupied cell", func(t *testing.T) {
		g := startedGame(t)
		require.NoError(t, g.PlayTurn(0, 0, security))
		require.NoError(t, g.PassTurn())
		require.ErrorIs(t, g.PlayTurn(0, 0, security), ErrOccupied)
	})

	t.Run("board snapshots are detached", func(t *testing.T) {
		g := startedGame(t)
		snap, err := g.Board()
		require.NoError(t, err)
		require.NoError(t, snap.Apply(0, 0, security, Red))

		cell, _ := g.CellAt(0, 0)
		require.False(t, cell.HasCard())
	})
}

func TestPassTurn(t *testing.T) {
	t.Run("two passes end the game in a tie", func(t *testing.T) {
		g := startedGame(t)
		require.NoError(t, g.PassTurn())
		over, _ := g.IsGameOver()
		require.False(t, over)

		require.NoError(t, g.PassTurn())
		over, _ = g.IsGameOver()
		require.True(t, over)

		result, err := g.Result()
		require.NoError(t, err)
		require.Equal(t, Result{Outcome: Tie}, result)
		require.Equal(t, "tie", result.String())

		require.ErrorIs(t, g.PassTurn(), ErrGameOver)
		require.ErrorIs(t, g.PlayTurn(0, 0, security), ErrGameOver)
	})

	t.Run("a placement resets the pass streak", func(t *testing.T) {
		g := startedGame(t)
		require.NoError(t, g.PassTurn())
		require.NoError(t, g.PlayTurn(0, 4, cheapCard(t, g, Blue)))
		require.Equal(t, 0, g.ConsecutivePasses())
		require.NoError(t, g.PassTurn())
		over, _ := g.IsGameOver()
		require.False(t, over)
	})

	t.Run("winner after a placement", func(t *testing.T) {
		g := startedGame(t)
		require.NoError(t, g.PlayTurn(0, 0, security))
		require.NoError(t, g.PassTurn())
		require.NoError(t, g.PassTurn())

		result, _ := g.Result()
		require.Equal(t, Result{Outcome: Win, Winner: Red}, result)
	})
}

// cheapCard returns the first cost-one card in color's hand.
func cheapCard(t *testing.T, g *Game, color Color) Card {
	t.Helper()
	hand, err := g.Hand(color)
	require.NoError(t, err)
	for _, c := range hand {
		if c.Cost() == 1 {
			return c
		}
	}
	t.Fatalf("no cost one card in %s hand", color)
	return Card{}
}

// TestGreedyGameStaysConsistent plays a full game greedily and checks the board and hand
// rules after every turn.
func TestGreedyGameStaysConsistent(t *testing.T) {
	g := startedGame(t, WithSeed(42))
	rows, cols, _ := g.Dimensions()

	for turn := 0; turn < 200; turn++ {
		if over, _ := g.IsGameOver(); over {
			break
		}
		color, _ := g.Turn()
		hand, _ := g.Hand(color)

		played := false
		for _, card := range hand {
			for row := 0; row < rows && !played; row++ {
				for col := 0; col < cols && !played; col++ {
					if g.IsLegal(row, col, card, color) {
						require.NoError(t, g.PlayTurn(row, col, card))
						played = true
					}
				}
			}
			if played {
				break
			}
		}
		if !played {
			require.NoError(t, g.PassTurn())
		}

		placed := 0
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				cell, _ := g.CellAt(row, col)
				if cell.HasCard() {
					require.Zero(t, cell.Pawns(), "cell (%d,%d) holds both", row, col)
					placed += cell.Value()
				}
				require.LessOrEqual(t, cell.Pawns(), MaxPawns)
			}
		}
		for _, c := range Colors {
			h, _ := g.Hand(c)
			require.LessOrEqual(t, len(h), 3)
		}
		red, _ := g.Score(Red)
		blue, _ := g.Score(Blue)
		require.LessOrEqual(t, red+blue, placed)

		again, _ := g.Score(Red)
		require.Equal(t, red, again)
	}

	over, _ := g.IsGameOver()
	require.True(t, over)
}
