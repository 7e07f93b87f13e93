package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/quantdesk/trading-advisor/internal/config"
	"github.com/quantdesk/trading-advisor/internal/monitoring"
	"github.com/quantdesk/trading-advisor/internal/scoring"
	"github.com/quantdesk/trading-advisor/pkg/reporting"
)

func main() {
	inputFile := flag.String("input", "", "JSON file with candidates (symbol, fundamentals, technicals); built-in samples when empty")
	profileFlag := flag.String("profile", "", "Risk profile: conservative, moderate, aggressive (overrides RISK_PROFILE)")
	outputFile := flag.String("output", "", "Report path (.csv or .xlsx); console only when empty")
	envFile := flag.String("env", ".env", "Environment file path")
	flag.Parse()

	if _, err := os.Stat(*envFile); err == nil {
		if err := godotenv.Load(*envFile); err != nil {
			log.Printf("Warning: could not load %s: %v", *envFile, err)
		}
	}

	cfg := config.Load()
	if *profileFlag != "" {
		cfg.RiskProfile = *profileFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	profile := scoring.RiskProfile(cfg.RiskProfile)

	candidates, err := loadCandidates(*inputFile)
	if err != nil {
		log.Fatalf("Failed to load candidates: %v", err)
	}
	if len(candidates) == 0 {
		log.Fatal("No candidates to score")
	}

	scorer := scoring.NewScorer()
	ranked := scorer.ScoreAndRank(candidates, profile)

	for _, score := range ranked {
		monitoring.RecordScore(string(score.Exchange), score.Score)
	}

	reporting.RenderRankingTable(os.Stdout, ranked, profile)

	if *outputFile != "" {
		path := *outputFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Reporting.OutputDir, path)
		}
		if err := reporting.NewCSVReporter().WriteRankingCSV(ranked, path); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Printf("\n📄 Report written to %s\n", path)
	}
}

func loadCandidates(path string) ([]scoring.Candidate, error) {
	if path == "" {
		return sampleCandidates(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}

	var candidates []scoring.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	return candidates, nil
}

// sampleCandidates covers every exchange suffix the scorer understands.
func sampleCandidates() []scoring.Candidate {
	return []scoring.Candidate{
		{
			Symbol: "RELIANCE.NS",
			Fundamentals: scoring.Fundamentals{
				PERatio: 24, PBRatio: 2.1, DividendYield: 0.4,
				ROE: 9.2, ProfitMargin: 7.8, DebtToEquity: 0.44, Beta: 1.1,
			},
			Technicals: scoring.Technicals{
				RSI: 56, Trend: scoring.TrendUptrend, RSISignal: scoring.RSINeutral,
				MACDTrend: scoring.MACDBullish, SMA20: 2870, SMA50: 2790,
			},
		},
		{
			Symbol: "ITC.NS",
			Fundamentals: scoring.Fundamentals{
				PERatio: 26, PBRatio: 7.1, DividendYield: 3.2,
				ROE: 28.5, ProfitMargin: 27.0, DebtToEquity: 0.01, Beta: 0.7,
			},
			Technicals: scoring.Technicals{
				RSI: 48, Trend: scoring.TrendMixed, RSISignal: scoring.RSINeutral,
				MACDTrend: scoring.MACDBearish, SMA20: 432, SMA50: 441,
			},
		},
		{
			Symbol: "TATASTEEL.BO",
			Fundamentals: scoring.Fundamentals{
				PERatio: 12, PBRatio: 1.4, DividendYield: 2.5,
				ROE: 11.8, ProfitMargin: 6.1, DebtToEquity: 1.2, Beta: 1.4,
			},
			Technicals: scoring.Technicals{
				RSI: 29, Trend: scoring.TrendDowntrend, RSISignal: scoring.RSIOversold,
				MACDTrend: scoring.MACDBearish, SMA20: 141, SMA50: 149,
			},
		},
		{
			Symbol: "HSBA.L",
			Fundamentals: scoring.Fundamentals{
				PERatio: 7.5, PBRatio: 0.9, DividendYield: 5.1,
				ROE: 12.4, ProfitMargin: 22.0, DebtToEquity: 0.9, Beta: 0.9,
			},
			Technicals: scoring.Technicals{
				RSI: 61, Trend: scoring.TrendUptrend, RSISignal: scoring.RSINeutral,
				MACDTrend: scoring.MACDBullish, SMA20: 705, SMA50: 681,
			},
		},
		{
			Symbol: "AAPL",
			Fundamentals: scoring.Fundamentals{
				PERatio: 29, PBRatio: 45, DividendYield: 0.5,
				ROE: 160, ProfitMargin: 25.3, DebtToEquity: 1.8, Beta: 1.25,
			},
			Technicals: scoring.Technicals{
				RSI: 72, Trend: scoring.TrendStrongUptrend, RSISignal: scoring.RSIOverbought,
				MACDTrend: scoring.MACDBullish, SMA20: 229, SMA50: 221,
			},
		},
		{
			Symbol: "BTC-USD",
			Fundamentals: scoring.Fundamentals{
				Beta: 2.3,
			},
			Technicals: scoring.Technicals{
				RSI: 66, Trend: scoring.TrendUptrend, RSISignal: scoring.RSINeutral,
				MACDTrend: scoring.MACDBullish, SMA20: 64200, SMA50: 61400,
			},
		},
	}
}
