package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListeners(t *testing.T) {
	t.Run("notified in registration order after each mutation", func(t *testing.T) {
		g := startedGame(t)
		var calls []string
		g.Subscribe(ListenerFuncs{OnTurn: func(turn Color) { calls = append(calls, "a:"+turn.String()) }})
		g.Subscribe(ListenerFuncs{OnTurn: func(turn Color) { calls = append(calls, "b:"+turn.String()) }})

		require.NoError(t, g.PlayTurn(0, 0, security))
		require.NoError(t, g.PassTurn())
		require.Equal(t, []string{"a:blue", "b:blue", "a:red", "b:red"}, calls)
	})

	t.Run("rejected moves are silent", func(t *testing.T) {
		g := startedGame(t)
		notified := 0
		g.Subscribe(ListenerFuncs{OnTurn: func(Color) { notified++ }})

		require.Error(t, g.PlayTurn(0, 2, security))
		require.Zero(t, notified)
	})

	t.Run("listeners observe the refilled hand", func(t *testing.T) {
		g := startedGame(t)
		var size int
		g.Subscribe(ListenerFuncs{OnTurn: func(Color) {
			hand, err := g.Hand(Red)
			require.NoError(t, err)
			size = len(hand)
		}})
		require.NoError(t, g.PlayTurn(0, 0, security))
		require.Equal(t, 3, size)
	})

	t.Run("game over fires once", func(t *testing.T) {
		g := startedGame(t)
		var results []Result
		g.Subscribe(ListenerFuncs{OnGameOver: func(r Result) { results = append(results, r) }})

		require.NoError(t, g.PassTurn())
		require.Empty(t, results)
		require.NoError(t, g.PassTurn())
		require.ErrorIs(t, g.PassTurn(), ErrGameOver)
		require.Equal(t, []Result{{Outcome: Tie}}, results)
	})

	t.Run("listeners cannot mutate the game", func(t *testing.T) {
		g := startedGame(t)
		var reentrant error
		g.Subscribe(ListenerFuncs{OnTurn: func(Color) {
			reentrant = g.PassTurn()
		}})

		require.NoError(t, g.PassTurn())
		require.ErrorIs(t, reentrant, ErrReentrant)
		require.Equal(t, 1, g.ConsecutivePasses())
		turn, _ := g.Turn()
		require.Equal(t, Blue, turn)
	})

	t.Run("nil listener is ignored", func(t *testing.T) {
		g := startedGame(t)
		g.Subscribe(nil)
		require.NoError(t, g.PassTurn())
	})
}
