// Package database stores the records reports are built from.
//
// Two backends implement the same Store interface:
//   - RecordDB keeps members, providers, services and the report run
//     history in a single SQLite file (modernc.org/sqlite, CGO-free).
//   - PostgresDB keeps the same tables in PostgreSQL through a pgx
//     connection pool, for deployments that share one database.
//
// Services reference members and providers by number. Member and provider
// names shown in reports are joined in at query time, so a service whose
// member or provider was never imported comes back with an empty name.
//
// Lookups of a record that does not exist return (nil, nil). Service
// lookups return an empty, non-nil slice when nothing matches.
package database
