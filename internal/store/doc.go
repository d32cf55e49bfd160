// Package store provides persistence for schedule snapshots, the item
// registry, and the scrape backlog.
//
// The Schedule, Items, and Backlog interfaces are implemented twice: once
// over Postgres (pgx) for production and once in memory for tests. Store
// access is fail-open throughout the scraper; call sites report failures
// through Degrade and fall back to a documented default instead of
// aborting the run.
package store
