// Package sqlite archives decoded observations in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/couchcryptid/ish-observation-etl/internal/domain"
	"github.com/couchcryptid/ish-observation-etl/internal/ish"
	"github.com/couchcryptid/ish-observation-etl/internal/observability"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get when no observation has the requested ID.
var ErrNotFound = errors.New("observation not found")

// Record is an archived observation row.
type Record struct {
	ID               string
	Station          string
	ReportType       string
	ObservedAt       time.Time
	Lat              float64
	Lon              float64
	AirTemperature   *float64
	DewPoint         *float64
	SeaLevelPressure *float64
	RelativeHumidity *float64
	RawLine          string
	ReportJSON       string
	ProcessedAt      time.Time
}

// Store implements pipeline.BatchLoader on top of SQLite. Inserts are keyed
// by the deterministic observation ID, so replayed batches are ignored.
type Store struct {
	db      *sql.DB
	metrics *observability.Metrics
}

// Open opens or creates the archive at path.
func Open(path string, metrics *observability.Metrics) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	// One writer at a time; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, metrics: metrics}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS observations (
		id TEXT PRIMARY KEY,
		station TEXT NOT NULL,
		report_type TEXT NOT NULL,
		observed_at TEXT NOT NULL,
		lat REAL,
		lon REAL,
		air_temperature REAL,
		dew_point REAL,
		sea_level_pressure REAL,
		relative_humidity REAL,
		raw_line TEXT NOT NULL,
		report_json TEXT NOT NULL,
		processed_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_observations_station ON observations(station, observed_at);
	CREATE INDEX IF NOT EXISTS idx_observations_observed_at ON observations(observed_at);
	`
	_, err := db.Exec(schema)
	return err
}

const insertObservation = `
	INSERT OR IGNORE INTO observations (
		id, station, report_type, observed_at, lat, lon,
		air_temperature, dew_point, sea_level_pressure, relative_humidity,
		raw_line, report_json, processed_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// LoadBatch archives the observations in a single transaction.
func (s *Store) LoadBatch(ctx context.Context, observations []domain.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertObservation)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var inserted int64
	for i := range observations {
		args, err := insertArgs(observations[i])
		if err != nil {
			return err
		}
		res, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return fmt.Errorf("insert observation %s: %w", observations[i].ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}

	s.metrics.ArchiveInserted.Add(float64(inserted))
	s.metrics.ArchiveIgnored.Add(float64(int64(len(observations)) - inserted))
	return nil
}

func insertArgs(obs domain.Observation) ([]any, error) {
	reportJSON, err := json.Marshal(obs.Report)
	if err != nil {
		return nil, fmt.Errorf("marshal report %s: %w", obs.ID, err)
	}

	var air, dew, slp sql.NullFloat64
	if obs.Report != nil {
		air = nullable(obs.Report.AirTemperature)
		dew = nullable(obs.Report.DewPoint)
		slp = nullable(obs.Report.SeaLevelPressure)
	}
	var lat, lon sql.NullFloat64
	if obs.Geo != nil {
		lat = sql.NullFloat64{Float64: obs.Geo.Lat, Valid: true}
		lon = sql.NullFloat64{Float64: obs.Geo.Lon, Valid: true}
	}
	var rh sql.NullFloat64
	if obs.RelativeHumidity != nil {
		rh = sql.NullFloat64{Float64: *obs.RelativeHumidity, Valid: true}
	}

	return []any{
		obs.ID,
		obs.Station,
		obs.ReportType,
		obs.ObservedAt.UTC().Format(time.RFC3339),
		lat, lon,
		air, dew, slp, rh,
		string(obs.RawPayload),
		string(reportJSON),
		obs.ProcessedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func nullable(m ish.Measurement) sql.NullFloat64 {
	v := m.Value()
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

const selectColumns = `SELECT id, station, report_type, observed_at, lat, lon,
	air_temperature, dew_point, sea_level_pressure, relative_humidity,
	raw_line, report_json, processed_at FROM observations`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var r Record
	var observedAt, processedAt string
	var lat, lon, air, dew, slp, rh sql.NullFloat64

	if err := row.Scan(&r.ID, &r.Station, &r.ReportType, &observedAt, &lat, &lon,
		&air, &dew, &slp, &rh, &r.RawLine, &r.ReportJSON, &processedAt); err != nil {
		return Record{}, err
	}

	var err error
	if r.ObservedAt, err = time.Parse(time.RFC3339, observedAt); err != nil {
		return Record{}, fmt.Errorf("parse observed_at: %w", err)
	}
	if r.ProcessedAt, err = time.Parse(time.RFC3339Nano, processedAt); err != nil {
		return Record{}, fmt.Errorf("parse processed_at: %w", err)
	}
	r.Lat, r.Lon = lat.Float64, lon.Float64
	r.AirTemperature = floatPtr(air)
	r.DewPoint = floatPtr(dew)
	r.SeaLevelPressure = floatPtr(slp)
	r.RelativeHumidity = floatPtr(rh)
	return r, nil
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// Get returns the archived observation with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get observation: %w", err)
	}
	return r, nil
}

// StationHistory returns a station's observations with from <= observed_at < to,
// oldest first.
func (s *Store) StationHistory(ctx context.Context, station string, from, to time.Time) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` WHERE station = ? AND observed_at >= ? AND observed_at < ? ORDER BY observed_at, id`,
		station, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("query station history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Count returns the number of archived observations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM observations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count observations: %w", err)
	}
	return n, nil
}
