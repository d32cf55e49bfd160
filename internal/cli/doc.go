// Package cli implements the command-line interface for menu-sync.
//
// The cli package provides the Cobra-based CLI with a scrape command that
// runs the full fetch, parse, and synchronize cycle for one date, and a
// backlog command that drains queued scrape requests. It coordinates the
// fetch, parser, schedule, and store packages.
package cli
