package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/reportgen/internal/model"
)

// FileName is the name of the SQLite database file inside the data directory.
const FileName = "reportgen.db"

// RecordDB provides SQLite-based storage for report records.
type RecordDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures RecordDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging so report runs can be read
	// while an import is in progress.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a RecordDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist,
// ErrDatabaseNotFound is returned.
func Open(dbDir string, opts Options) (*RecordDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	var dsn string
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = dbPath + "?mode=rwc"
	} else {
		if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrDatabaseNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
		// mode=rw keeps the driver from creating a new file.
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RecordDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Path returns the database file path.
func (rdb *RecordDB) Path() string {
	return rdb.dbPath
}

// Close closes the database connection.
func (rdb *RecordDB) Close() error {
	return rdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
// Timestamps are stored as UTC text in timestampLayout so that
// comparisons on the column order chronologically.
func (rdb *RecordDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS members (
		number INTEGER PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		zip INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS providers (
		number INTEGER PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		zip INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS services (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		provider_id INTEGER NOT NULL,
		member_id INTEGER NOT NULL,
		service_id INTEGER NOT NULL,
		service_name TEXT NOT NULL DEFAULT '',
		service_date TEXT NOT NULL,
		received_at TEXT NOT NULL,
		fee REAL NOT NULL DEFAULT 0,
		UNIQUE(provider_id, member_id, service_id, service_date, received_at)
	);

	CREATE INDEX IF NOT EXISTS idx_services_member ON services(member_id);
	CREATE INDEX IF NOT EXISTS idx_services_provider ON services(provider_id);
	CREATE INDEX IF NOT EXISTS idx_services_date ON services(service_date);

	CREATE TABLE IF NOT EXISTS report_runs (
		id TEXT PRIMARY KEY,
		report_type INTEGER NOT NULL,
		subject_id INTEGER NOT NULL,
		file_name TEXT NOT NULL DEFAULT '',
		created INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		run_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_run_at ON report_runs(run_at);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// Member retrieves a member by number.
func (rdb *RecordDB) Member(ctx context.Context, number int) (*model.MemberRecord, error) {
	var m model.MemberRecord
	err := rdb.db.QueryRowContext(ctx, selectMemberQuery, number).Scan(
		&m.Name, &m.Address, &m.City, &m.State, &m.Number, &m.Zip,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &m, nil
}

// Provider retrieves a provider by number.
func (rdb *RecordDB) Provider(ctx context.Context, number int) (*model.ProviderRecord, error) {
	var p model.ProviderRecord
	err := rdb.db.QueryRowContext(ctx, selectProviderQuery, number).Scan(
		&p.Name, &p.Address, &p.City, &p.State, &p.Number, &p.Zip,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return &p, nil
}

// ServicesForMember returns every service the member received, oldest first.
func (rdb *RecordDB) ServicesForMember(ctx context.Context, number int) ([]model.ProvidedService, error) {
	return rdb.queryServices(ctx, servicesForMemberQuery, number)
}

// ServicesForProvider returns every service the provider billed, oldest first.
func (rdb *RecordDB) ServicesForProvider(ctx context.Context, number int) ([]model.ProvidedService, error) {
	return rdb.queryServices(ctx, servicesForProviderQuery, number)
}

// ServicesBetween returns services dated within [from, to], oldest first.
func (rdb *RecordDB) ServicesBetween(ctx context.Context, from, to time.Time) ([]model.ProvidedService, error) {
	return rdb.queryServices(ctx, servicesBetweenQuery, formatTimestamp(from), formatTimestamp(to))
}

func (rdb *RecordDB) queryServices(ctx context.Context, query string, args ...any) ([]model.ProvidedService, error) {
	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := make([]model.ProvidedService, 0)
	for rows.Next() {
		var s model.ProvidedService
		var serviceDate, receivedAt string

		err := rows.Scan(
			&s.ProviderName,
			&s.ProviderID,
			&s.MemberName,
			&s.MemberID,
			&s.ServiceID,
			&s.ServiceName,
			&serviceDate,
			&receivedAt,
			&s.Fee,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}

		s.ServiceDate = parseTimestamp(serviceDate)
		s.DateTimeReceived = parseTimestamp(receivedAt)
		services = append(services, s)
	}

	return services, rows.Err()
}

// Import upserts members, providers and services from f.
// Either every record is stored or none is.
func (rdb *RecordDB) Import(ctx context.Context, f *Fixture) error {
	if f.Empty() {
		return ErrEmptyFixture
	}

	tx, err := rdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range f.Members {
		if _, err := tx.ExecContext(ctx, upsertMemberQuery,
			m.Number, m.Name, m.Address, m.City, m.State, m.Zip,
		); err != nil {
			return fmt.Errorf("failed to import member %d: %w", m.Number, err)
		}
	}

	for _, p := range f.Providers {
		if _, err := tx.ExecContext(ctx, upsertProviderQuery,
			p.Number, p.Name, p.Address, p.City, p.State, p.Zip,
		); err != nil {
			return fmt.Errorf("failed to import provider %d: %w", p.Number, err)
		}
	}

	for _, s := range f.Services {
		if _, err := tx.ExecContext(ctx, upsertServiceQuery,
			s.ProviderID,
			s.MemberID,
			s.ServiceID,
			s.ServiceName,
			formatTimestamp(s.ServiceDate),
			formatTimestamp(s.DateTimeReceived),
			s.Fee,
		); err != nil {
			return fmt.Errorf("failed to import service %d for member %d: %w", s.ServiceID, s.MemberID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// SaveReportRun records the outcome of one report request.
func (rdb *RecordDB) SaveReportRun(ctx context.Context, run *model.ReportRun) error {
	_, err := rdb.db.ExecContext(ctx, insertRunQuery,
		run.ID,
		int(run.Type),
		run.SubjectID,
		run.FileName,
		run.Created,
		run.ErrorMessage,
		formatTimestamp(run.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("failed to save report run: %w", err)
	}
	return nil
}

// ReportRuns returns up to limit report runs, newest first.
func (rdb *RecordDB) ReportRuns(ctx context.Context, limit int) ([]model.ReportRun, error) {
	rows, err := rdb.db.QueryContext(ctx, selectRunsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query report runs: %w", err)
	}
	defer rows.Close()

	var runs []model.ReportRun
	for rows.Next() {
		var run model.ReportRun
		var reportType int
		var timestamp string

		if err := rows.Scan(
			&run.ID,
			&reportType,
			&run.SubjectID,
			&run.FileName,
			&run.Created,
			&run.ErrorMessage,
			&timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report run: %w", err)
		}

		run.Type = model.ReportType(reportType)
		run.Timestamp = parseTimestamp(timestamp)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// timestampLayout is how SQLite columns store instants. Fixed width UTC
// text sorts in time order.
const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// timestampFormats contains the timestamp formats accepted on read.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	timestampLayout,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
