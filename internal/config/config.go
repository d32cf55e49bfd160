// Package config reads the scraper's configuration from the environment.
//
// A .env file in the working directory is honored when present. Every
// setting has a CLI flag override; see internal/cli.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ucsc-menus/menu-sync/internal/store"
)

// Config carries the process-level settings consumed by the entry point.
type Config struct {
	// OutputPath is where the per-date JSON artifact is written.
	OutputPath string
	// Headless is forwarded to browser-backed fetchers.
	Headless bool
	// DatabaseURL is the Postgres DSN. Empty disables the persistent
	// store (registry and synchronization degrade accordingly).
	DatabaseURL string
	// ScheduleTable overrides the schedule table name.
	ScheduleTable string
	// ScrapeDate overrides the target date (any accepted date format).
	ScrapeDate string
	// BaseURL overrides the menu site landing page.
	BaseURL string
}

// Load reads configuration from the environment, honoring a .env file
// when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		OutputPath:    envOr("MENU_JSON", "menu_data.json"),
		Headless:      envOr("IS_HEADLESS", "1") == "1",
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		ScheduleTable: envOr("MENU_TABLE", store.DefaultScheduleTable),
		ScrapeDate:    os.Getenv("SCRAPE_DATE"),
		BaseURL:       os.Getenv("MENU_BASE_URL"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
