package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "GOOGLE_SHEET_ID", "GOOGLE_SHEET_DASHBOARD_GID", "GOOGLE_SHEET_MONTHLY_GID", "CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DataBackend != BackendCSV {
		t.Fatalf("DataBackend = %q, want %q", cfg.DataBackend, BackendCSV)
	}
	if cfg.DashboardGID != "0" || cfg.MonthlyGID != "0" {
		t.Fatalf("GIDs = %q/%q, want 0/0", cfg.DashboardGID, cfg.MonthlyGID)
	}
	if cfg.CacheTTL != time.Minute {
		t.Fatalf("CacheTTL = %v, want 1m", cfg.CacheTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("GOOGLE_SHEET_ID", "doc123")
	t.Setenv("GOOGLE_SHEET_DASHBOARD_GID", "11")
	t.Setenv("GOOGLE_SHEET_MONTHLY_GID", "22")
	t.Setenv("CACHE_TTL", "90s")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DataBackend != "memory" || cfg.SheetID != "doc123" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DashboardGID != "11" || cfg.MonthlyGID != "22" {
		t.Fatalf("GIDs = %q/%q", cfg.DashboardGID, cfg.MonthlyGID)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Fatalf("CacheTTL = %v, want 90s", cfg.CacheTTL)
	}
}

func TestLoadYearGIDs(t *testing.T) {
	environ := []string{
		"GOOGLE_SHEET_2025_GID=111",
		"GOOGLE_SHEET_2026_GID=222",
		"GOOGLE_SHEET_MONTHLY_GID=9",  // not a year entry
		"GOOGLE_SHEET_20261_GID=333",  // five digits
		"GOOGLE_SHEET_2027_GID=   ",   // blank value
		"OTHER=1",
	}
	got := loadYearGIDs(environ)
	if len(got) != 2 {
		t.Fatalf("got %v, want exactly 2025 and 2026", got)
	}
	if got[2025] != "111" || got[2026] != "222" {
		t.Fatalf("got %v", got)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:         "8080",
			DataBackend:  BackendCSV,
			SheetID:      "doc",
			DashboardGID: "0",
			MonthlyGID:   "0",
			YearGIDs:     map[int]string{2026: "5"},
			CacheTTL:     time.Minute,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid csv", func(*Config) {}, false},
		{"valid memory without sheet id", func(c *Config) { c.DataBackend = BackendMemory; c.SheetID = "" }, false},
		{"non-numeric port", func(c *Config) { c.Port = "abc" }, true},
		{"port out of range", func(c *Config) { c.Port = "70000" }, true},
		{"unknown backend", func(c *Config) { c.DataBackend = "ftp" }, true},
		{"csv without sheet id", func(c *Config) { c.SheetID = "" }, true},
		{"ttl too small", func(c *Config) { c.CacheTTL = 100 * time.Millisecond }, true},
		{"ttl too large", func(c *Config) { c.CacheTTL = 2 * time.Hour }, true},
		{"implausible year", func(c *Config) { c.YearGIDs = map[int]string{1200: "1"} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
