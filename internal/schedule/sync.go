package schedule

import (
	"context"
	"errors"

	"github.com/ucsc-menus/menu-sync/internal/logger"
	"github.com/ucsc-menus/menu-sync/internal/menu"
	"github.com/ucsc-menus/menu-sync/internal/store"
)

// Action is the outcome of one synchronization attempt.
type Action string

const (
	// ActionInserted means no record existed and one was created.
	ActionInserted Action = "inserted"
	// ActionUnchanged means the stored snapshot already matched.
	ActionUnchanged Action = "unchanged"
	// ActionUpdated means the snapshot was replaced and data_fetched reset.
	ActionUpdated Action = "updated"
	// ActionFailed means a store error was absorbed; the store keeps its
	// prior state.
	ActionFailed Action = "failed"
)

// Synchronizer performs idempotent, diff-aware upserts of per-date menu
// results into the schedule store.
type Synchronizer struct {
	schedule store.Schedule
}

// NewSynchronizer creates a synchronizer over the given schedule store.
func NewSynchronizer(schedule store.Schedule) *Synchronizer {
	return &Synchronizer{schedule: schedule}
}

// Sync reads the stored record for date and inserts, skips, or updates.
// An update forces data_fetched back to false so downstream consumers
// recompute derived state. Store errors are absorbed; the attempt for this
// date is abandoned and the store keeps its prior state.
func (s *Synchronizer) Sync(ctx context.Context, date string, result menu.DateResult) Action {
	existing, err := s.schedule.Get(ctx, date)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if err := s.schedule.Insert(ctx, &store.ScheduleRecord{Date: date, MenuData: result}); err != nil {
			store.Degrade("schedule.insert", err)
			return ActionFailed
		}
		logger.IncrCounter("sync.inserted")
		return ActionInserted
	case err != nil:
		store.Degrade("schedule.get", err)
		return ActionFailed
	}

	if existing.MenuData.Equal(result) {
		logger.IncrCounter("sync.unchanged")
		return ActionUnchanged
	}

	if err := s.schedule.UpdateMenuData(ctx, date, result); err != nil {
		store.Degrade("schedule.update", err)
		return ActionFailed
	}
	logger.IncrCounter("sync.updated")
	return ActionUpdated
}
