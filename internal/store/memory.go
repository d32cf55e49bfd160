package store

import (
	"context"
	"fmt"

	"github.com/ucsc-menus/menu-sync/internal/menu"
)

// Memory implements Schedule, Items, and Backlog in process memory. It
// backs tests and local dry runs; nothing survives the process.
type Memory struct {
	schedule map[string]*ScheduleRecord
	items    map[string]*ItemRecord
	nextID   int64
	backlog  []string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		schedule: make(map[string]*ScheduleRecord),
		items:    make(map[string]*ItemRecord),
		nextID:   1,
	}
}

// Get returns the schedule record for date, or ErrNotFound.
func (m *Memory) Get(ctx context.Context, date string) (*ScheduleRecord, error) {
	rec, ok := m.schedule[date]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

// Insert creates a new schedule record with DataFetched false.
func (m *Memory) Insert(ctx context.Context, rec *ScheduleRecord) error {
	if _, exists := m.schedule[rec.Date]; exists {
		return fmt.Errorf("duplicate schedule date %q", rec.Date)
	}
	m.schedule[rec.Date] = &ScheduleRecord{Date: rec.Date, MenuData: rec.MenuData}
	return nil
}

// UpdateMenuData replaces the stored snapshot and resets DataFetched.
func (m *Memory) UpdateMenuData(ctx context.Context, date string, data menu.DateResult) error {
	rec, ok := m.schedule[date]
	if !ok {
		return fmt.Errorf("no schedule row for date %q", date)
	}
	rec.MenuData = data
	rec.DataFetched = false
	return nil
}

// SetDataFetched flips the processed flag on an existing record. Exercised
// by tests standing in for the downstream consumer.
func (m *Memory) SetDataFetched(date string, fetched bool) {
	if rec, ok := m.schedule[date]; ok {
		rec.DataFetched = fetched
	}
}

// GetByName returns the registry row matching name exactly, or ErrNotFound.
func (m *Memory) GetByName(ctx context.Context, name string) (*ItemRecord, error) {
	rec, ok := m.items[name]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

// Create inserts a registry row and returns it with a generated id.
func (m *Memory) Create(ctx context.Context, name string) (*ItemRecord, error) {
	if _, exists := m.items[name]; exists {
		return nil, fmt.Errorf("duplicate item name %q", name)
	}
	rec := &ItemRecord{ID: m.nextID, Name: name}
	m.nextID++
	m.items[name] = rec
	copied := *rec
	return &copied, nil
}

// SetAvgScore writes a rating for name, standing in for the external
// rating writers.
func (m *Memory) SetAvgScore(name string, score float64) {
	if rec, ok := m.items[name]; ok {
		rec.AvgScore = &score
	}
}

// AddBacklog queues a raw date entry.
func (m *Memory) AddBacklog(rawDate string) {
	m.backlog = append(m.backlog, rawDate)
}

// List returns every pending backlog entry in queue order.
func (m *Memory) List(ctx context.Context) ([]string, error) {
	out := make([]string, len(m.backlog))
	copy(out, m.backlog)
	return out, nil
}

// Delete removes backlog entries matching the raw stored value.
func (m *Memory) Delete(ctx context.Context, rawDate string) error {
	kept := m.backlog[:0]
	for _, d := range m.backlog {
		if d != rawDate {
			kept = append(kept, d)
		}
	}
	m.backlog = kept
	return nil
}

// Backlog returns the remaining queued entries. Test helper.
func (m *Memory) Backlog() []string {
	out := make([]string, len(m.backlog))
	copy(out, m.backlog)
	return out
}
