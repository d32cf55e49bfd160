package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ucsc-menus/menu-sync/internal/menu"
)

// DefaultScheduleTable is the schedule table name unless overridden by
// configuration.
const DefaultScheduleTable = "schedule"

// Postgres implements Schedule, Items, and Backlog over a pgx pool.
type Postgres struct {
	pool          *pgxpool.Pool
	scheduleTable string
}

// NewPostgres connects to the database, verifies the connection, and
// ensures the schema exists. scheduleTable falls back to
// DefaultScheduleTable when empty.
func NewPostgres(ctx context.Context, dsn, scheduleTable string) (*Postgres, error) {
	if scheduleTable == "" {
		scheduleTable = DefaultScheduleTable
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	cfg.MaxConns = 4
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	p := &Postgres{pool: pool, scheduleTable: scheduleTable}
	if err := p.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return p, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// initSchema creates the tables if they do not exist.
func (p *Postgres) initSchema(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				date TEXT PRIMARY KEY,
				menu_data JSONB NOT NULL,
				data_fetched BOOLEAN NOT NULL DEFAULT FALSE
			)
		`, p.scheduleTable),
		`
			CREATE TABLE IF NOT EXISTS menu_items (
				id BIGSERIAL PRIMARY KEY,
				name TEXT UNIQUE NOT NULL,
				avg_score DOUBLE PRECISION
			)
		`,
		`
			CREATE TABLE IF NOT EXISTS scrape_backlog (
				date_to_scrape TEXT NOT NULL
			)
		`,
	}

	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the schedule record for date, or ErrNotFound.
func (p *Postgres) Get(ctx context.Context, date string) (*ScheduleRecord, error) {
	var (
		raw     []byte
		fetched bool
	)
	query := fmt.Sprintf(`SELECT menu_data, data_fetched FROM %s WHERE date = $1`, p.scheduleTable)
	err := p.pool.QueryRow(ctx, query, date).Scan(&raw, &fetched)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading schedule row: %w", err)
	}

	var data menu.DateResult
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decoding stored menu data: %w", err)
	}

	return &ScheduleRecord{Date: date, MenuData: data, DataFetched: fetched}, nil
}

// Insert creates a new schedule record with data_fetched false.
func (p *Postgres) Insert(ctx context.Context, rec *ScheduleRecord) error {
	raw, err := json.Marshal(rec.MenuData)
	if err != nil {
		return fmt.Errorf("encoding menu data: %w", err)
	}
	query := fmt.Sprintf(`INSERT INTO %s (date, menu_data, data_fetched) VALUES ($1, $2, FALSE)`, p.scheduleTable)
	if _, err := p.pool.Exec(ctx, query, rec.Date, raw); err != nil {
		return fmt.Errorf("inserting schedule row: %w", err)
	}
	return nil
}

// UpdateMenuData replaces the stored snapshot and resets data_fetched.
func (p *Postgres) UpdateMenuData(ctx context.Context, date string, data menu.DateResult) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding menu data: %w", err)
	}
	query := fmt.Sprintf(`UPDATE %s SET menu_data = $1, data_fetched = FALSE WHERE date = $2`, p.scheduleTable)
	if _, err := p.pool.Exec(ctx, query, raw, date); err != nil {
		return fmt.Errorf("updating schedule row: %w", err)
	}
	return nil
}

// GetByName returns the registry row matching name exactly, or ErrNotFound.
func (p *Postgres) GetByName(ctx context.Context, name string) (*ItemRecord, error) {
	rec := &ItemRecord{}
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, avg_score FROM menu_items WHERE name = $1`, name,
	).Scan(&rec.ID, &rec.Name, &rec.AvgScore)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading item row: %w", err)
	}
	return rec, nil
}

// Create inserts a registry row with only the name populated and returns
// it with the generated id.
func (p *Postgres) Create(ctx context.Context, name string) (*ItemRecord, error) {
	rec := &ItemRecord{}
	err := p.pool.QueryRow(ctx,
		`INSERT INTO menu_items (name) VALUES ($1) RETURNING id, name, avg_score`, name,
	).Scan(&rec.ID, &rec.Name, &rec.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("inserting item row: %w", err)
	}
	return rec, nil
}

// List returns every pending backlog entry's raw date value.
func (p *Postgres) List(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `SELECT date_to_scrape FROM scrape_backlog`)
	if err != nil {
		return nil, fmt.Errorf("listing backlog: %w", err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning backlog row: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating backlog rows: %w", err)
	}
	return dates, nil
}

// Delete removes backlog entries matching the raw stored value.
func (p *Postgres) Delete(ctx context.Context, rawDate string) error {
	if _, err := p.pool.Exec(ctx,
		`DELETE FROM scrape_backlog WHERE date_to_scrape = $1`, rawDate,
	); err != nil {
		return fmt.Errorf("deleting backlog entry: %w", err)
	}
	return nil
}
