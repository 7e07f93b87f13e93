package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.RiskProfile != "moderate" {
		t.Fatalf("default risk profile = %q, want moderate", cfg.RiskProfile)
	}
	if cfg.Monitoring.PrometheusPort != 8080 || cfg.Monitoring.HealthPort != 8081 {
		t.Fatalf("unexpected default ports: %+v", cfg.Monitoring)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RISK_PROFILE", "aggressive")
	t.Setenv("PROMETHEUS_PORT", "9090")

	cfg := Load()

	if cfg.RiskProfile != "aggressive" {
		t.Fatalf("risk profile = %q, want aggressive", cfg.RiskProfile)
	}
	if cfg.Monitoring.PrometheusPort != 9090 {
		t.Fatalf("prometheus port = %d, want 9090", cfg.Monitoring.PrometheusPort)
	}
}

func TestLoadMarketsList(t *testing.T) {
	t.Setenv("MARKETS", "india, uk ,us")

	cfg := Load()

	want := []string{"india", "uk", "us"}
	if len(cfg.Markets) != len(want) {
		t.Fatalf("markets = %v, want %v", cfg.Markets, want)
	}
	for i, market := range want {
		if cfg.Markets[i] != market {
			t.Fatalf("markets[%d] = %q, want %q", i, cfg.Markets[i], market)
		}
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad profile", func(c *Config) { c.RiskProfile = "reckless" }},
		{"bad port", func(c *Config) { c.Monitoring.PrometheusPort = -1 }},
		{"port collision", func(c *Config) { c.Monitoring.HealthPort = c.Monitoring.PrometheusPort }},
		{"token without chat", func(c *Config) { c.Notifications.TelegramToken = "abc" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Load()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
