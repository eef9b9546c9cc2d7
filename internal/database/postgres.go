package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nao1215/reportgen/internal/model"
)

// postgresSchema mirrors the SQLite schema with native column types.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS members (
	number BIGINT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL DEFAULT '',
	zip BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS providers (
	number BIGINT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL DEFAULT '',
	zip BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS services (
	id BIGSERIAL PRIMARY KEY,
	provider_id BIGINT NOT NULL,
	member_id BIGINT NOT NULL,
	service_id BIGINT NOT NULL,
	service_name TEXT NOT NULL DEFAULT '',
	service_date TIMESTAMPTZ NOT NULL,
	received_at TIMESTAMPTZ NOT NULL,
	fee DOUBLE PRECISION NOT NULL DEFAULT 0,
	UNIQUE (provider_id, member_id, service_id, service_date, received_at)
);

CREATE INDEX IF NOT EXISTS idx_services_member ON services (member_id);
CREATE INDEX IF NOT EXISTS idx_services_provider ON services (provider_id);
CREATE INDEX IF NOT EXISTS idx_services_date ON services (service_date);

CREATE TABLE IF NOT EXISTS report_runs (
	id TEXT PRIMARY KEY,
	report_type INTEGER NOT NULL,
	subject_id BIGINT NOT NULL,
	file_name TEXT NOT NULL DEFAULT '',
	created BOOLEAN NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	run_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_run_at ON report_runs (run_at);
`

// PostgresDB provides PostgreSQL-based storage for report records.
type PostgresDB struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to the database at dsn, verifies the connection
// and creates the schema if needed.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresDB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, ErrEmptyDSN
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &PostgresDB{pool: pool}, nil
}

// Close releases every pooled connection.
func (pdb *PostgresDB) Close() error {
	pdb.pool.Close()
	return nil
}

// Member retrieves a member by number.
func (pdb *PostgresDB) Member(ctx context.Context, number int) (*model.MemberRecord, error) {
	var m model.MemberRecord
	err := pdb.pool.QueryRow(ctx, rebind(selectMemberQuery), number).Scan(
		&m.Name, &m.Address, &m.City, &m.State, &m.Number, &m.Zip,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &m, nil
}

// Provider retrieves a provider by number.
func (pdb *PostgresDB) Provider(ctx context.Context, number int) (*model.ProviderRecord, error) {
	var p model.ProviderRecord
	err := pdb.pool.QueryRow(ctx, rebind(selectProviderQuery), number).Scan(
		&p.Name, &p.Address, &p.City, &p.State, &p.Number, &p.Zip,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return &p, nil
}

// ServicesForMember returns every service the member received, oldest first.
func (pdb *PostgresDB) ServicesForMember(ctx context.Context, number int) ([]model.ProvidedService, error) {
	return pdb.queryServices(ctx, servicesForMemberQuery, number)
}

// ServicesForProvider returns every service the provider billed, oldest first.
func (pdb *PostgresDB) ServicesForProvider(ctx context.Context, number int) ([]model.ProvidedService, error) {
	return pdb.queryServices(ctx, servicesForProviderQuery, number)
}

// ServicesBetween returns services dated within [from, to], oldest first.
func (pdb *PostgresDB) ServicesBetween(ctx context.Context, from, to time.Time) ([]model.ProvidedService, error) {
	return pdb.queryServices(ctx, servicesBetweenQuery, from, to)
}

func (pdb *PostgresDB) queryServices(ctx context.Context, query string, args ...any) ([]model.ProvidedService, error) {
	rows, err := pdb.pool.Query(ctx, rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := make([]model.ProvidedService, 0)
	for rows.Next() {
		var s model.ProvidedService
		if err := rows.Scan(
			&s.ProviderName,
			&s.ProviderID,
			&s.MemberName,
			&s.MemberID,
			&s.ServiceID,
			&s.ServiceName,
			&s.ServiceDate,
			&s.DateTimeReceived,
			&s.Fee,
		); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}

		s.ServiceDate = s.ServiceDate.UTC()
		s.DateTimeReceived = s.DateTimeReceived.UTC()
		services = append(services, s)
	}

	return services, rows.Err()
}

// Import upserts members, providers and services from f as one batch
// inside a transaction.
func (pdb *PostgresDB) Import(ctx context.Context, f *Fixture) error {
	if f.Empty() {
		return ErrEmptyFixture
	}

	batch := &pgx.Batch{}
	for _, m := range f.Members {
		batch.Queue(rebind(upsertMemberQuery), m.Number, m.Name, m.Address, m.City, m.State, m.Zip)
	}
	for _, p := range f.Providers {
		batch.Queue(rebind(upsertProviderQuery), p.Number, p.Name, p.Address, p.City, p.State, p.Zip)
	}
	for _, s := range f.Services {
		batch.Queue(rebind(upsertServiceQuery),
			s.ProviderID,
			s.MemberID,
			s.ServiceID,
			s.ServiceName,
			s.ServiceDate,
			s.DateTimeReceived,
			s.Fee,
		)
	}

	tx, err := pdb.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to import records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// SaveReportRun records the outcome of one report request.
func (pdb *PostgresDB) SaveReportRun(ctx context.Context, run *model.ReportRun) error {
	_, err := pdb.pool.Exec(ctx, rebind(insertRunQuery),
		run.ID,
		int(run.Type),
		run.SubjectID,
		run.FileName,
		run.Created,
		run.ErrorMessage,
		run.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save report run: %w", err)
	}
	return nil
}

// ReportRuns returns up to limit report runs, newest first.
func (pdb *PostgresDB) ReportRuns(ctx context.Context, limit int) ([]model.ReportRun, error) {
	rows, err := pdb.pool.Query(ctx, rebind(selectRunsQuery), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query report runs: %w", err)
	}
	defer rows.Close()

	var runs []model.ReportRun
	for rows.Next() {
		var run model.ReportRun
		var reportType int
		if err := rows.Scan(
			&run.ID,
			&reportType,
			&run.SubjectID,
			&run.FileName,
			&run.Created,
			&run.ErrorMessage,
			&run.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report run: %w", err)
		}

		run.Type = model.ReportType(reportType)
		run.Timestamp = run.Timestamp.UTC()
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// rebind rewrites "?" placeholders to PostgreSQL's "$n" form.
func rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
