package store

import (
	"context"
	"errors"

	"github.com/ucsc-menus/menu-sync/internal/logger"
	"github.com/ucsc-menus/menu-sync/internal/menu"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// ScheduleRecord is the persisted snapshot of one date's multi-venue menu
// result. DataFetched marks whether downstream consumers have derived
// state from MenuData; it is forced false whenever MenuData changes.
type ScheduleRecord struct {
	Date        string
	MenuData    menu.DateResult
	DataFetched bool
}

// Schedule persists per-date menu snapshots. At most one record exists
// per date.
type Schedule interface {
	// Get returns the record for date, or ErrNotFound.
	Get(ctx context.Context, date string) (*ScheduleRecord, error)
	// Insert creates a new record. DataFetched starts false.
	Insert(ctx context.Context, rec *ScheduleRecord) error
	// UpdateMenuData replaces the snapshot for date and resets DataFetched
	// to false.
	UpdateMenuData(ctx context.Context, date string, data menu.DateResult) error
}

// ItemRecord is one durable registry row. AvgScore is nil until ratings
// have been recorded by external collaborators.
type ItemRecord struct {
	ID       int64
	Name     string
	AvgScore *float64
}

// Items persists the durable item registry. Rows are created once per
// distinct item name and never deleted here; ratings are written
// elsewhere and only read by this system.
type Items interface {
	// GetByName returns the row matching name exactly, or ErrNotFound.
	GetByName(ctx context.Context, name string) (*ItemRecord, error)
	// Create inserts a row with only the name populated and returns it
	// with the generated id.
	Create(ctx context.Context, name string) (*ItemRecord, error)
}

// Backlog is the queue of dates awaiting a (re)scrape. Entries are created
// externally and consumed here.
type Backlog interface {
	// List returns the raw date_to_scrape value of every pending entry.
	List(ctx context.Context) ([]string, error)
	// Delete removes entries matching the raw stored value.
	Delete(ctx context.Context, rawDate string) error
}

// Degrade records a store failure that the caller is about to absorb. The
// fail-open policy lives here so every call site logs the same way before
// substituting its documented default.
func Degrade(op string, err error) {
	logger.Error("store access degraded", logger.Fields{"op": op}, err)
	logger.IncrCounter("store.errors")
}
