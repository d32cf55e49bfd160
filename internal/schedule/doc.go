// Package schedule decides the fate of scraped menu snapshots: the
// synchronizer performs diff-aware upserts into the schedule store, and
// the backlog processor drains queued dates through the scrape pipeline.
package schedule
