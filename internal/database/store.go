package database

import (
	"context"
	"io"
	"time"

	"github.com/nao1215/reportgen/internal/model"
)

// Store is a record store backing report generation.
type Store interface {
	io.Closer

	// Member returns the member with the given number, or nil.
	Member(ctx context.Context, number int) (*model.MemberRecord, error)

	// Provider returns the provider with the given number, or nil.
	Provider(ctx context.Context, number int) (*model.ProviderRecord, error)

	// ServicesForMember returns the services a member received.
	ServicesForMember(ctx context.Context, number int) ([]model.ProvidedService, error)

	// ServicesForProvider returns the services a provider billed.
	ServicesForProvider(ctx context.Context, number int) ([]model.ProvidedService, error)

	// ServicesBetween returns services with a service date in [from, to].
	ServicesBetween(ctx context.Context, from, to time.Time) ([]model.ProvidedService, error)

	// Import upserts every record in f in a single transaction.
	Import(ctx context.Context, f *Fixture) error

	// SaveReportRun appends run to the history.
	SaveReportRun(ctx context.Context, run *model.ReportRun) error

	// ReportRuns returns up to limit runs, newest first.
	ReportRuns(ctx context.Context, limit int) ([]model.ReportRun, error)
}

// Both backends share their DML. Queries use "?" placeholders; the
// PostgreSQL store rebinds them.
const (
	upsertMemberQuery = `
	INSERT INTO members (number, name, address, city, state, zip)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(number) DO UPDATE SET
		name = excluded.name,
		address = excluded.address,
		city = excluded.city,
		state = excluded.state,
		zip = excluded.zip
	`

	upsertProviderQuery = `
	INSERT INTO providers (number, name, address, city, state, zip)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(number) DO UPDATE SET
		name = excluded.name,
		address = excluded.address,
		city = excluded.city,
		state = excluded.state,
		zip = excluded.zip
	`

	upsertServiceQuery = `
	INSERT INTO services (provider_id, member_id, service_id, service_name, service_date, received_at, fee)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(provider_id, member_id, service_id, service_date, received_at) DO UPDATE SET
		service_name = excluded.service_name,
		fee = excluded.fee
	`

	selectMemberQuery = `
	SELECT name, address, city, state, number, zip
	FROM members
	WHERE number = ?
	`

	selectProviderQuery = `
	SELECT name, address, city, state, number, zip
	FROM providers
	WHERE number = ?
	`

	selectServicesQuery = `
	SELECT COALESCE(p.name, ''), s.provider_id, COALESCE(m.name, ''), s.member_id,
		s.service_id, s.service_name, s.service_date, s.received_at, s.fee
	FROM services s
	LEFT JOIN providers p ON p.number = s.provider_id
	LEFT JOIN members m ON m.number = s.member_id
	`

	servicesForMemberQuery   = selectServicesQuery + "WHERE s.member_id = ? ORDER BY s.service_date, s.id"
	servicesForProviderQuery = selectServicesQuery + "WHERE s.provider_id = ? ORDER BY s.service_date, s.id"
	servicesBetweenQuery     = selectServicesQuery + "WHERE s.service_date BETWEEN ? AND ? ORDER BY s.service_date, s.id"

	insertRunQuery = `
	INSERT INTO report_runs (id, report_type, subject_id, file_name, created, error_message, run_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	selectRunsQuery = `
	SELECT id, report_type, subject_id, file_name, created, error_message, run_at
	FROM report_runs
	ORDER BY run_at DESC, id
	LIMIT ?
	`
)

var (
	_ Store = (*RecordDB)(nil)
	_ Store = (*PostgresDB)(nil)
)
