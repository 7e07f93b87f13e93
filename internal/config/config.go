package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries the application-level settings for the advisor
// binaries. Risk limits are deliberately NOT configurable here: the
// limit table is hard-coded in the risk package so no deployment can
// quietly loosen it.
type Config struct {
	Environment string
	RiskProfile string // conservative | moderate | aggressive
	Markets     []string

	Monitoring struct {
		PrometheusPort int
		HealthPort     int
	}

	Notifications struct {
		TelegramToken  string
		TelegramChatID string
	}

	Reporting struct {
		OutputDir string
	}
}

// Load reads configuration from the environment. Call godotenv.Load
// first if a .env file should be honored.
func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		RiskProfile: getEnv("RISK_PROFILE", "moderate"),
		Markets:     getEnvList("MARKETS", []string{"india", "us"}),
	}

	cfg.Monitoring.PrometheusPort = getEnvInt("PROMETHEUS_PORT", 8080)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 8081)

	cfg.Notifications.TelegramToken = getEnv("TELEGRAM_TOKEN", "")
	cfg.Notifications.TelegramChatID = getEnv("TELEGRAM_CHAT_ID", "")

	cfg.Reporting.OutputDir = getEnv("REPORT_DIR", "reports")

	return cfg
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	switch c.RiskProfile {
	case "conservative", "moderate", "aggressive":
	default:
		return fmt.Errorf("invalid risk profile %q: must be conservative, moderate, or aggressive", c.RiskProfile)
	}

	if c.Monitoring.PrometheusPort <= 0 || c.Monitoring.PrometheusPort > 65535 {
		return fmt.Errorf("invalid prometheus port %d", c.Monitoring.PrometheusPort)
	}
	if c.Monitoring.HealthPort <= 0 || c.Monitoring.HealthPort > 65535 {
		return fmt.Errorf("invalid health port %d", c.Monitoring.HealthPort)
	}
	if c.Monitoring.PrometheusPort == c.Monitoring.HealthPort {
		return fmt.Errorf("prometheus and health ports collide on %d", c.Monitoring.HealthPort)
	}

	if c.Notifications.TelegramToken != "" && c.Notifications.TelegramChatID == "" {
		return fmt.Errorf("telegram token set without chat id")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := []string{}
	for _, part := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return defaultVal
	}
	return parts
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
