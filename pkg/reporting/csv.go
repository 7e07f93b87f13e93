package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quantdesk/trading-advisor/internal/scoring"
)

// CSVReporter implements CSV output functionality
type CSVReporter struct{}

// NewCSVReporter creates a new CSV reporter
func NewCSVReporter() *CSVReporter {
	return &CSVReporter{}
}

// WriteRankingCSV writes the ranked scores to a CSV file. Paths ending
// in .xlsx are delegated to the Excel writer.
func (r *CSVReporter) WriteRankingCSV(ranked []scoring.StockScore, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return NewExcelReporter().WriteRankingXLSX(ranked, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"Rank", "Symbol", "Exchange", "Score", "Recommendation",
		"Value", "Quality", "Momentum", "Technical", "Risk",
		"BullSignals", "BearSignals", "Timestamp",
	}); err != nil {
		return err
	}

	for i, score := range ranked {
		row := []string{
			strconv.Itoa(i + 1),
			score.Symbol,
			string(score.Exchange),
			strconv.FormatFloat(score.Score, 'f', 2, 64),
			string(score.Recommendation),
			strconv.FormatFloat(score.FactorScores.Value, 'f', 0, 64),
			strconv.FormatFloat(score.FactorScores.Quality, 'f', 0, 64),
			strconv.FormatFloat(score.FactorScores.Momentum, 'f', 0, 64),
			strconv.FormatFloat(score.FactorScores.Technical, 'f', 0, 64),
			strconv.FormatFloat(score.FactorScores.Risk, 'f', 0, 64),
			strings.Join(score.BullSignals, "; "),
			strings.Join(score.BearSignals, "; "),
			score.Timestamp.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
