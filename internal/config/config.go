package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"planner/internal/dateutil"
)

// Config keeps runtime settings for the planner.
type Config struct {
	DatabaseURL    string
	ReminderTime   string // HH:MM, local time
	ReportInterval time.Duration
}

// Load reads configuration from the environment (with an optional .env
// file) applying sane defaults.
func Load() (Config, error) {
	// A missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:    strings.TrimSpace(os.Getenv("PLANNER_DB")),
		ReminderTime:   strings.TrimSpace(os.Getenv("PLANNER_REMINDER_TIME")),
		ReportInterval: parseInterval(strings.TrimSpace(os.Getenv("PLANNER_REPORT_INTERVAL_HOURS"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "planner.db"
	}

	if cfg.ReminderTime == "" {
		cfg.ReminderTime = "08:00"
	}
	if _, _, err := dateutil.ParseClock(cfg.ReminderTime); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
