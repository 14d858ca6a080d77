package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Backends for the sheet source.
const (
	BackendCSV    = "csv"    // public CSV export of a published spreadsheet
	BackendSheets = "sheets" // authenticated Sheets API
	BackendMemory = "memory" // seeded fixtures, for development
)

type Config struct {
	// HTTP server
	Port string

	// Sheet source
	DataBackend  string
	SheetID      string
	DashboardGID string
	MonthlyGID   string

	// Per-year transaction tabs, scanned from GOOGLE_SHEET_<year>_GID.
	YearGIDs map[int]string

	// Dashboard snapshot revalidation interval.
	CacheTTL time.Duration
}

var yearGIDPattern = regexp.MustCompile(`^GOOGLE_SHEET_(\d{4})_GID=(.+)$`)

func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DataBackend:  getEnv("DATA_BACKEND", BackendCSV),
		SheetID:      getEnv("GOOGLE_SHEET_ID", ""),
		DashboardGID: getEnv("GOOGLE_SHEET_DASHBOARD_GID", "0"),
		MonthlyGID:   getEnv("GOOGLE_SHEET_MONTHLY_GID", "0"),
		YearGIDs:     loadYearGIDs(os.Environ()),
		CacheTTL:     getEnvDuration("CACHE_TTL", time.Minute),
	}
	return cfg
}

// loadYearGIDs collects the per-year tab identifiers from the environment.
// Each configured year gets its own variable, e.g. GOOGLE_SHEET_2026_GID.
func loadYearGIDs(environ []string) map[int]string {
	out := make(map[int]string)
	for _, kv := range environ {
		m := yearGIDPattern.FindStringSubmatch(kv)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		gid := strings.TrimSpace(m[2])
		if gid != "" {
			out[year] = gid
		}
	}
	return out
}

// Validate checks the configuration and returns an error listing every
// problem found.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case BackendCSV, BackendSheets, BackendMemory:
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [%s %s %s]",
			c.DataBackend, BackendCSV, BackendSheets, BackendMemory))
	}

	if c.DataBackend != BackendMemory && c.SheetID == "" {
		errs = append(errs, fmt.Sprintf("GOOGLE_SHEET_ID is required for the %s backend", c.DataBackend))
	}

	if c.CacheTTL < time.Second {
		errs = append(errs, fmt.Sprintf("invalid cache TTL %v: must be at least 1 second", c.CacheTTL))
	} else if c.CacheTTL > time.Hour {
		errs = append(errs, fmt.Sprintf("invalid cache TTL %v: must be at most 1 hour", c.CacheTTL))
	}

	for year := range c.YearGIDs {
		if year < 1900 || year > 2999 {
			errs = append(errs, fmt.Sprintf("implausible transaction sheet year %d", year))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
