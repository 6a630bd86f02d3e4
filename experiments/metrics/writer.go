package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type MatchupRecord struct {
	ID       int
	Red      string // Strategy name
	Blue     string // Strategy name
	Games    int
	RedWins  int
	BlueWins int
	Ties     int
}

type GameRecord struct {
	ID      int
	Matchup int // MatchupRecord.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh timestamped directory under outDir/name.
func NewWriter(outDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	baseDir := filepath.Join(outDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the directory the writer stores its files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchups(records []MatchupRecord) error {
	header := []string{"id", "red", "blue", "games", "red_wins", "blue_wins", "ties"}
	return w.write("matchups.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			strconv.Itoa(r.ID),
			r.Red,
			r.Blue,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.RedWins),
			strconv.Itoa(r.BlueWins),
			strconv.Itoa(r.Ties),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "game_id", "winner", "red_score", "blue_score", "start_time", "end_time", "duration", "moves", "passes"}
	return w.write("game_records.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Matchup),
			r.GameID,
			r.Winner,
			strconv.Itoa(r.RedScore),
			strconv.Itoa(r.BlueScore),
			r.StartTime.Format(time.RFC3339Nano),
			r.EndTime.Format(time.RFC3339Nano),
			r.Duration.String(),
			strconv.Itoa(r.TotalMoves),
			strconv.Itoa(r.Passes),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "side", "pass", "card", "row", "col", "red_score", "blue_score", "elapsed"}
	return w.write("move_records.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Side,
			strconv.FormatBool(r.Pass),
			r.Card,
			strconv.Itoa(r.Row),
			strconv.Itoa(r.Col),
			strconv.Itoa(r.RedScore),
			strconv.Itoa(r.BlueScore),
			r.Elapsed.String(),
		}
	})
}

// write stores a header and n rows in the named CSV file.
func (w *Writer) write(name string, header []string, n int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
