package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrEmptyOutputDir is returned when no output directory is configured.
	ErrEmptyOutputDir = errors.New("output directory is empty")

	// ErrNoStore is returned when neither a database directory nor a
	// database URL is configured.
	ErrNoStore = errors.New("no record store configured: set db_dir or database_url")

	// ErrInvalidLocale is returned when the locale is not a BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrInvalidCurrency is returned when the currency is not an ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidLogFormat is returned for a log format other than text or json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
