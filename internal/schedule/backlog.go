package schedule

import (
	"context"
	"fmt"

	"github.com/ucsc-menus/menu-sync/internal/logger"
	"github.com/ucsc-menus/menu-sync/internal/menu"
	"github.com/ucsc-menus/menu-sync/internal/store"
)

// ScrapeFunc runs the fetch→build→synchronize pipeline for one canonical
// MM/DD/YYYY date.
type ScrapeFunc func(ctx context.Context, date string) error

// Processor drains the scrape backlog, re-running the pipeline for each
// queued date.
type Processor struct {
	backlog store.Backlog
	scrape  ScrapeFunc
}

// NewProcessor creates a backlog processor that invokes scrape per entry.
func NewProcessor(backlog store.Backlog, scrape ScrapeFunc) *Processor {
	return &Processor{backlog: backlog, scrape: scrape}
}

// Drain processes every pending backlog entry. Entries whose date cannot
// be normalized are logged and left queued for manual correction. Entries
// with a valid date are deleted once a scrape has been attempted,
// whether or not synchronization succeeded; sync failures are already
// self-contained and non-retryable within this pass.
func (p *Processor) Drain(ctx context.Context) error {
	entries, err := p.backlog.List(ctx)
	if err != nil {
		return fmt.Errorf("listing backlog: %w", err)
	}

	logger.Info("draining backlog", logger.Fields{"pending": len(entries)})

	for _, raw := range entries {
		date, err := menu.NormalizeDate(raw)
		if err != nil {
			logger.Warn("backlog entry has unusable date, leaving queued", logger.Fields{
				"date_to_scrape": raw,
			})
			logger.IncrCounter("backlog.skipped")
			continue
		}

		if err := p.scrape(ctx, date); err != nil {
			logger.Error("backlog scrape failed", logger.Fields{"date": date}, err)
		}

		if err := p.backlog.Delete(ctx, raw); err != nil {
			store.Degrade("backlog.delete", err)
			continue
		}
		logger.IncrCounter("backlog.drained")
	}

	return nil
}
