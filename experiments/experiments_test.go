package experiments

import (
	"os"
	"path/filepath"
	"sanguine/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.Games = 3
	cfg.Strategies = []string{"first", "ownership"}
	cfg.OutputDir = t.TempDir()

	summary, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, summary.MatchUps, 4)

	for _, s := range summary.MatchUps {
		require.Equal(t, 3, s.Games)
		require.Equal(t, s.Games, s.RedWins+s.BlueWins+s.Ties)
		require.GreaterOrEqual(t, s.StdMargin, 0.0)
	}
	require.Equal(t, "first", summary.MatchUps[0].Red)
	require.Equal(t, "ownership", summary.MatchUps[1].Blue)

	for _, name := range []string{"match_ups.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(summary.Dir, name))
		require.NoError(t, err, name)
	}
}

func TestRunIsReproducible(t *testing.T) {
	cfg := config.Default()
	cfg.Games = 2
	cfg.Strategies = []string{"counter", "rowscore"}

	a, err := Run(cfg)
	require.NoError(t, err)
	b, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Empty(t, a.Dir)
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Strategies = []string{"random"}
	_, err := Run(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.HandSize = 20
	_, err = Run(cfg)
	require.Error(t, err)
}

func TestMarginStats(t *testing.T) {
	mean, std := marginStats([]float64{2, 4, 6})
	require.InDelta(t, 4.0, mean, 1e-9)
	require.InDelta(t, 2.0, std, 1e-9)

	mean, std = marginStats([]float64{5})
	require.Equal(t, 5.0, mean)
	require.Zero(t, std)

	mean, std = marginStats(nil)
	require.Zero(t, mean)
	require.Zero(t, std)
}
