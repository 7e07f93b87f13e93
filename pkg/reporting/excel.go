package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/quantdesk/trading-advisor/internal/scoring"
)

// ExcelReporter implements Excel output functionality
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// WriteRankingXLSX writes the ranked scores and their factor breakdown
// to an Excel workbook.
func (r *ExcelReporter) WriteRankingXLSX(ranked []scoring.StockScore, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const sheet = "Ranking"
	fx.SetSheetName(fx.GetSheetName(0), sheet)

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	scoreStyle, err := fx.NewStyle(&excelize.Style{
		NumFmt: 2, // two decimals
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return err
	}

	headers := []string{
		"Rank", "Symbol", "Exchange", "Score", "Recommendation",
		"Value", "Quality", "Momentum", "Technical", "Risk",
		"Bull Signals", "Bear Signals",
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		fx.SetCellValue(sheet, cell, header)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	fx.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for i, score := range ranked {
		row := i + 2
		values := []interface{}{
			i + 1,
			score.Symbol,
			string(score.Exchange),
			score.Score,
			string(score.Recommendation),
			score.FactorScores.Value,
			score.FactorScores.Quality,
			score.FactorScores.Momentum,
			score.FactorScores.Technical,
			score.FactorScores.Risk,
			strings.Join(score.BullSignals, "; "),
			strings.Join(score.BearSignals, "; "),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			fx.SetCellValue(sheet, cell, value)
		}
		scoreCell, _ := excelize.CoordinatesToCellName(4, row)
		fx.SetCellStyle(sheet, scoreCell, scoreCell, scoreStyle)
	}

	fx.SetColWidth(sheet, "B", "B", 16)
	fx.SetColWidth(sheet, "E", "E", 16)
	fx.SetColWidth(sheet, "K", "L", 40)

	return fx.SaveAs(path)
}
