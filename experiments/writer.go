package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores matchup results as CSV files under a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the experiment and the
// current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory this writer stores files in.
func (w *Writer) BaseDir() string { return w.baseDir }

// WriteGameRecords stores every per-game record of a series.
func (w *Writer) WriteGameRecords(result *MatchupResult) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "matchup", "bot1_led", "bot1_won", "game_points", "winner_score", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}
	for _, record := range result.Records {
		row := []string{
			strconv.Itoa(record.ID),
			result.Name,
			strconv.FormatBool(record.Bot1Led),
			strconv.FormatBool(record.Bot1Won),
			strconv.Itoa(record.GamePoints),
			strconv.Itoa(record.WinnerScore),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}

// WriteSummary stores one aggregate row per series plus its significance
// test results.
func (w *Writer) WriteSummary(results []*MatchupResult, tests []TestResult) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"matchup", "games", "wins1", "wins2", "win_rate1", "test", "statistic", "p_value"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for i, result := range results {
		test := TestResult{}
		if i < len(tests) {
			test = tests[i]
		}
		row := []string{
			result.Name,
			strconv.Itoa(result.Games),
			strconv.Itoa(result.Wins1),
			strconv.Itoa(result.Wins2),
			strconv.FormatFloat(result.WinRate1(), 'f', 4, 64),
			test.Name,
			strconv.FormatFloat(test.Statistic, 'f', 4, 64),
			strconv.FormatFloat(test.PValue, 'f', 6, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}
