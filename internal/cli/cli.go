package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ucsc-menus/menu-sync/internal/artifact"
	"github.com/ucsc-menus/menu-sync/internal/config"
	"github.com/ucsc-menus/menu-sync/internal/fetch"
	"github.com/ucsc-menus/menu-sync/internal/logger"
	"github.com/ucsc-menus/menu-sync/internal/menu"
	"github.com/ucsc-menus/menu-sync/internal/pipeline"
	"github.com/ucsc-menus/menu-sync/internal/registry"
	"github.com/ucsc-menus/menu-sync/internal/schedule"
	"github.com/ucsc-menus/menu-sync/internal/store"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDate    string
	flagOut     string
	flagDSN     string
	flagTable   string
	flagBaseURL string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu-sync",
		Short: "Scrape UCSC dining hall menus and synchronize the schedule",
		Long: `Scrapes the campus dining site's short-menu pages, writes the
per-date JSON artifact, and keeps the schedule table's menu snapshots
in sync.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagDate, "date", "", "Date to scrape (default: today; accepts common date formats)")
	cmd.PersistentFlags().StringVar(&flagOut, "out", "", "Path for the JSON artifact (env: MENU_JSON)")
	cmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "Postgres connection string (env: DATABASE_URL)")
	cmd.PersistentFlags().StringVar(&flagTable, "table", "", "Schedule table name (env: MENU_TABLE)")
	cmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Menu site landing page (env: MENU_BASE_URL)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newBacklogCmd())

	return cmd
}

func newScrapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Scrape one date's menus and synchronize the schedule",
		RunE:  runScrape,
	}
}

func newBacklogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backlog",
		Short: "Drain the scrape backlog, re-scraping each queued date",
		RunE:  runBacklog,
	}
}

// resolve merges flag overrides into the environment configuration.
func resolve() config.Config {
	cfg := config.Load()
	if flagDate != "" {
		cfg.ScrapeDate = flagDate
	}
	if flagOut != "" {
		cfg.OutputPath = flagOut
	}
	if flagDSN != "" {
		cfg.DatabaseURL = flagDSN
	}
	if flagTable != "" {
		cfg.ScheduleTable = flagTable
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	return cfg
}

// buildPipeline wires the full stack from configuration. The returned
// store must be closed by the caller.
func buildPipeline(ctx context.Context, cfg config.Config) (*pipeline.Pipeline, *store.Postgres, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}

	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("no database configured: set DATABASE_URL or pass --dsn")
	}
	pg, err := store.NewPostgres(ctx, cfg.DatabaseURL, cfg.ScheduleTable)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	fetcher, err := fetch.NewHTTP(fetch.Options{
		BaseURL:  cfg.BaseURL,
		Headless: cfg.Headless,
	})
	if err != nil {
		pg.Close()
		return nil, nil, fmt.Errorf("creating fetcher: %w", err)
	}

	p := pipeline.New(
		fetcher,
		registry.New(pg),
		schedule.NewSynchronizer(pg),
		artifact.NewWriter(cfg.OutputPath),
		0,
	)
	return p, pg, nil
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg := resolve()
	ctx := cmd.Context()

	date := menu.Today()
	if cfg.ScrapeDate != "" {
		var err error
		date, err = menu.NormalizeDate(cfg.ScrapeDate)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", cfg.ScrapeDate, err)
		}
	}

	p, pg, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer pg.Close()

	if _, err := p.RunDate(ctx, date); err != nil {
		return fmt.Errorf("scraping %s: %w", date, err)
	}

	logger.Info("scrape complete", logger.Fields{
		"date":    date,
		"metrics": logger.GetMetricsSnapshot(),
	})
	return nil
}

func runBacklog(cmd *cobra.Command, args []string) error {
	cfg := resolve()
	ctx := cmd.Context()

	p, pg, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer pg.Close()

	proc := schedule.NewProcessor(pg, func(ctx context.Context, date string) error {
		_, err := p.RunDate(ctx, date)
		return err
	})
	if err := proc.Drain(ctx); err != nil {
		return fmt.Errorf("draining backlog: %w", err)
	}

	logger.Info("backlog drained", logger.Fields{
		"metrics": logger.GetMetricsSnapshot(),
	})
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
