package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/quantdesk/trading-advisor/internal/scoring"
)

// RenderRankingTable renders the ranked scores as a rounded table.
func RenderRankingTable(out io.Writer, ranked []scoring.StockScore, profile scoring.RiskProfile) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("INSTRUMENT RANKING (%s)", strings.ToUpper(string(profile))))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"#", "Symbol", "Exchange", "Score", "Reco", "Value", "Quality", "Momentum", "Technical", "Risk", "Signals"})

	for i, score := range ranked {
		signals := strings.Join(score.BullSignals, "; ")
		if len(score.BearSignals) > 0 {
			if signals != "" {
				signals += " | "
			}
			signals += "⚠ " + strings.Join(score.BearSignals, "; ")
		}
		t.AppendRow(table.Row{
			i + 1,
			score.Symbol,
			score.Exchange,
			fmt.Sprintf("%.2f", score.Score),
			score.Recommendation,
			score.FactorScores.Value,
			score.FactorScores.Quality,
			score.FactorScores.Momentum,
			score.FactorScores.Technical,
			score.FactorScores.Risk,
			signals,
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 11, WidthMax: 48},
	})

	t.Render()
}
