package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type GameRecord struct {
	MatchUp int // MatchUpStat.ID
	Red     string
	Blue    string
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameMetric.ID
	MoveMetric
}

// MatchUpStat summarises every game played between two strategies.
type MatchUpStat struct {
	ID         int
	Red        string
	Blue       string
	Games      int
	RedWins    int
	BlueWins   int
	Ties       int
	MeanMargin float64
	StdMargin  float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped run directory below root.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the directory the files are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchUps(stats []MatchUpStat) error {
	header := []string{"id", "red", "blue", "games", "red_wins", "blue_wins", "ties", "mean_margin", "std_margin"}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			s.Red,
			s.Blue,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.RedWins),
			strconv.Itoa(s.BlueWins),
			strconv.Itoa(s.Ties),
			strconv.FormatFloat(s.MeanMargin, 'f', 3, 64),
			strconv.FormatFloat(s.StdMargin, 'f', 3, 64),
		})
	}
	return w.write("match_ups.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "match_up", "red", "blue", "result", "red_score", "blue_score", "moves", "placements", "rejected", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.MatchUp),
			record.Red,
			record.Blue,
			record.Result.String(),
			strconv.Itoa(record.RedScore),
			strconv.Itoa(record.BlueScore),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Placements),
			strconv.Itoa(record.Rejected),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "pass", "rejected", "duration", "red_score", "blue_score"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game.String(),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Action,
			strconv.FormatBool(record.Pass),
			strconv.FormatBool(record.Rejected),
			record.Duration.String(),
			strconv.Itoa(record.RedScore),
			strconv.Itoa(record.BlueScore),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
