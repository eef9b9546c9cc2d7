package database

import "errors"

var (
	// ErrDatabaseNotFound is returned by Open when the database file is
	// missing and Options.CreateIfNotExists is false.
	ErrDatabaseNotFound = errors.New("database not found")

	// ErrEmptyDSN is returned by OpenPostgres when no DSN is given.
	ErrEmptyDSN = errors.New("database URL is empty")

	// ErrEmptyFixture is returned when a fixture holds no records.
	ErrEmptyFixture = errors.New("fixture contains no records")
)
