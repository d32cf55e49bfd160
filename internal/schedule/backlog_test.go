package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/ucsc-menus/menu-sync/internal/store"
)

func TestDrainProcessesValidDates(t *testing.T) {
	mem := store.NewMemory()
	mem.AddBacklog("2025-10-28")
	mem.AddBacklog("10/29/2025")

	var scraped []string
	proc := NewProcessor(mem, func(ctx context.Context, date string) error {
		scraped = append(scraped, date)
		return nil
	})

	if err := proc.Drain(context.Background()); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}

	if len(scraped) != 2 || scraped[0] != "10/28/2025" || scraped[1] != "10/29/2025" {
		t.Errorf("unexpected scraped dates: %v", scraped)
	}
	if remaining := mem.Backlog(); len(remaining) != 0 {
		t.Errorf("expected an empty backlog, got %v", remaining)
	}
}

func TestDrainRetainsUnparsableDates(t *testing.T) {
	mem := store.NewMemory()
	mem.AddBacklog("next tuesday")
	mem.AddBacklog("10/29/2025")

	proc := NewProcessor(mem, func(ctx context.Context, date string) error {
		return nil
	})

	if err := proc.Drain(context.Background()); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}

	remaining := mem.Backlog()
	if len(remaining) != 1 || remaining[0] != "next tuesday" {
		t.Errorf("expected the unparsable entry to stay queued, got %v", remaining)
	}
}

func TestDrainDeletesAfterFailedScrape(t *testing.T) {
	mem := store.NewMemory()
	mem.AddBacklog("10/29/2025")

	proc := NewProcessor(mem, func(ctx context.Context, date string) error {
		return errors.New("venue page never loaded")
	})

	if err := proc.Drain(context.Background()); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}

	if remaining := mem.Backlog(); len(remaining) != 0 {
		t.Errorf("a failed scrape attempt must still clear the entry, got %v", remaining)
	}
}

func TestDrainDeletesByRawValue(t *testing.T) {
	mem := store.NewMemory()
	mem.AddBacklog("2025-10-28")

	var got string
	proc := NewProcessor(mem, func(ctx context.Context, date string) error {
		got = date
		return nil
	})

	if err := proc.Drain(context.Background()); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}

	if got != "10/28/2025" {
		t.Errorf("scrape should receive the normalized date, got %q", got)
	}
	if remaining := mem.Backlog(); len(remaining) != 0 {
		t.Errorf("deletion must match the raw stored value, got %v", remaining)
	}
}
