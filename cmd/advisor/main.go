package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quantdesk/trading-advisor/internal/config"
	"github.com/quantdesk/trading-advisor/internal/geopolitics"
	"github.com/quantdesk/trading-advisor/internal/logger"
	"github.com/quantdesk/trading-advisor/internal/monitoring"
	"github.com/quantdesk/trading-advisor/internal/notifications"
	"github.com/quantdesk/trading-advisor/internal/risk"
	"github.com/quantdesk/trading-advisor/pkg/reporting"
)

func main() {
	envFile := flag.String("env", ".env", "Environment file path")
	flag.Parse()

	if _, err := os.Stat(*envFile); err == nil {
		if err := godotenv.Load(*envFile); err != nil {
			log.Printf("Warning: could not load %s: %v", *envFile, err)
		}
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Configuration loaded: %s mode, %s profile", cfg.Environment, cfg.RiskProfile)

	sessionLog, err := logger.NewLogger("advisor")
	if err != nil {
		log.Fatalf("Failed to create session logger: %v", err)
	}
	defer sessionLog.Close()

	var notifier notifications.Notifier = notifications.NoopNotifier{}
	if cfg.Notifications.TelegramToken != "" {
		notifier = notifications.NewTelegramNotifier(cfg.Notifications.TelegramToken, cfg.Notifications.TelegramChatID)
	} else {
		log.Println("Telegram notifications disabled (no token configured)")
	}

	limits := risk.DefaultLimits()
	breaker := risk.NewCircuitBreaker()
	validator := risk.NewValidator(limits, breaker)
	validator.SetHaltCallback(func(reason string, d time.Duration) {
		monitoring.RecordBreakerTrip()
		sessionLog.LogHalt(reason, time.Now().Add(d))
		message := fmt.Sprintf("Trading halted: %s (resumes in %s)", reason, d)
		if err := notifier.SendAlert("error", message); err != nil {
			log.Printf("Failed to send halt alert: %v", err)
		}
	})

	// The host orchestration layer owns live portfolio state; this
	// process tracks the latest snapshot it was fed for /health.
	state := newPortfolioState()

	healthChecker := monitoring.NewHealthChecker(func() (*risk.Status, error) {
		portfolio, stats := state.snapshot()
		return validator.RiskStatus(portfolio, stats)
	})

	startMonitoringServers(cfg, healthChecker)

	// Walk the engine through a representative session so a fresh
	// deployment shows meaningful output and metrics immediately.
	runDemoSession(cfg, validator, limits, state, sessionLog)

	log.Println("Advisor running; Ctrl-C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Advisor stopped")
}

func startMonitoringServers(cfg *config.Config, health *monitoring.HealthChecker) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", monitoring.NewMetricsHandler())
		addr := fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort)
		log.Printf("Metrics server listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("Metrics server error: %v", err)
		}
	}()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/health", health)
		addr := fmt.Sprintf(":%d", cfg.Monitoring.HealthPort)
		log.Printf("Health server listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("Health server error: %v", err)
		}
	}()
}

func runDemoSession(cfg *config.Config, validator *risk.Validator, limits risk.Limits, state *portfolioState, sessionLog *logger.Logger) {
	console := reporting.NewConsoleReporter()
	sizer := risk.NewSizer(limits)
	geo := geopolitics.NewEngine()

	portfolio, stats := state.snapshot()

	for _, sig := range demoSignals() {
		// Pre-size the signal before validation when no quantity was given.
		if sig.Quantity == 0 {
			qty, err := sizer.CalculatePositionSize(sig.EntryPrice, portfolio.TotalValue, risk.SizingInput{})
			if err != nil {
				log.Printf("Sizing error for %s: %v", sig.Symbol, err)
				monitoring.RecordError("sizing")
				continue
			}
			if qty == 0 {
				log.Printf("Skipping %s: sized position rounds to zero shares", sig.Symbol)
				continue
			}
			sig.Quantity = float64(qty)
		}

		check, err := validator.ValidateSignal(sig, portfolio, stats)
		if err != nil {
			log.Printf("Validation error for %s: %v", sig.Symbol, err)
			monitoring.RecordError("validation")
			continue
		}

		rules := make([]string, 0, len(check.Violations))
		messages := make([]string, 0, len(check.Violations))
		for _, violation := range check.Violations {
			rules = append(rules, violation.Rule)
			messages = append(messages, violation.Message)
		}
		monitoring.RecordValidation(check.Approved, rules)
		sessionLog.LogVerdict(sig.Symbol, check.Approved, messages, check.Warnings)
		console.PrintVerdict(sig.Symbol, check)

		if check.Approved {
			value := sig.EntryPrice * sig.Quantity
			if limits.RequiresHumanApproval(value, "INR") {
				fmt.Printf("✋ Trade value %.0f INR needs human approval\n", value)
			}
			state.recordTrade(sig.EntryPrice * sig.Quantity * -0.001) // assume small friction
		}
	}

	portfolio, stats = state.snapshot()
	if status, err := validator.RiskStatus(portfolio, stats); err == nil {
		console.PrintRiskStatus(status)
	}

	headlines := demoHeadlines()
	active := geo.DetectActiveScenarios(headlines)
	names := make([]string, 0, len(active))
	for _, scenario := range active {
		names = append(names, scenario.Name)
		stocks := geo.StocksForScenario(scenario.ID, cfg.Markets)
		log.Printf("Scenario %s: watch %v", scenario.ID, stocks)
	}
	console.PrintCurrencyImpact(names, geo.NetCurrencyImpact(active), geopolitics.TrackedCurrencies)
}
