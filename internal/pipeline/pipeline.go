// Package pipeline orchestrates one scrape run: fetch each tracked
// venue's page, build its menu, aggregate the per-date result, write the
// JSON artifact, and synchronize the schedule store.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/ucsc-menus/menu-sync/internal/artifact"
	"github.com/ucsc-menus/menu-sync/internal/fetch"
	"github.com/ucsc-menus/menu-sync/internal/logger"
	"github.com/ucsc-menus/menu-sync/internal/menu"
	"github.com/ucsc-menus/menu-sync/internal/parser"
	"github.com/ucsc-menus/menu-sync/internal/schedule"
)

// DefaultPause is the courtesy delay between venue fetches; it bounds the
// request rate against the upstream site.
const DefaultPause = time.Second

// Pipeline ties the fetcher, builder, registry, synchronizer, and
// artifact writer together. Venues are processed sequentially, one date
// at a time.
type Pipeline struct {
	fetcher  fetch.Fetcher
	registry parser.Registry
	sync     *schedule.Synchronizer
	writer   *artifact.Writer
	pause    time.Duration
}

// New creates a pipeline. writer may be nil to skip the JSON artifact;
// pause < 0 disables the courtesy delay (tests), pause == 0 selects
// DefaultPause.
func New(fetcher fetch.Fetcher, registry parser.Registry, sync *schedule.Synchronizer, writer *artifact.Writer, pause time.Duration) *Pipeline {
	if pause == 0 {
		pause = DefaultPause
	}
	return &Pipeline{
		fetcher:  fetcher,
		registry: registry,
		sync:     sync,
		writer:   writer,
		pause:    pause,
	}
}

// RunDate scrapes every tracked venue for the canonical MM/DD/YYYY date
// and synchronizes the aggregated result. Venue-level fetch failures are
// absorbed as empty menus; the run always produces a best-effort result.
func (p *Pipeline) RunDate(ctx context.Context, date string) (menu.DateResult, error) {
	result := menu.NewDateResult(date)

	links, err := p.fetcher.VenueLinks(ctx)
	if err != nil {
		return result, fmt.Errorf("collecting venue links: %w", err)
	}

	logger.Info("scraping venues", logger.Fields{"date": date, "venues": len(links)})

	for i, link := range links {
		start := time.Now()
		doc, err := p.fetcher.FetchMenu(ctx, link, date)
		logger.RecordTiming("fetch.venue", time.Since(start))

		if err != nil {
			logger.Warn("venue fetch failed, recording empty menu", logger.Fields{
				"venue": link.Name,
				"error": err.Error(),
			})
			result.Halls[link.Name] = menu.VenueMenu{}
		} else {
			result.Halls[link.Name] = parser.BuildVenueMenu(ctx, doc, p.registry)
		}
		logger.IncrCounter("venues.scraped")

		if p.pause > 0 && i < len(links)-1 {
			time.Sleep(p.pause)
		}
	}

	if p.writer != nil {
		if err := p.writer.Write(result); err != nil {
			logger.Error("writing menu artifact", logger.Fields{"path": p.writer.Path()}, err)
		}
	}

	action := p.sync.Sync(ctx, date, result)
	logger.Info("schedule synchronized", logger.Fields{"date": date, "action": string(action)})

	return result, nil
}
