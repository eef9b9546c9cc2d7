package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "reportgen"

	// DefaultLocale formats amounts the way the reports were first written.
	DefaultLocale = "en-US"

	// DefaultCurrency is the ISO 4217 code of the currency fees are kept in.
	DefaultCurrency = "USD"

	// LogFormatText selects slog's key=value handler.
	LogFormatText = "text"

	// LogFormatJSON selects slog's JSON handler.
	LogFormatJSON = "json"

	// reportsDirName is the subdirectory of the data directory that holds
	// report artifacts.
	reportsDirName = "reports"
)

// Config holds all configuration options for reportgen.
// It is populated from defaults, then the config file, then CLI flags,
// and passed through the application rather than kept in global state.
type Config struct {
	// OutputDir is the directory report artifacts are written to.
	// Defaults to <XDG data dir>/reportgen/reports.
	OutputDir string

	// DBDir is the directory holding the SQLite database.
	// Defaults to the XDG data directory. Ignored when DatabaseURL is set.
	DBDir string

	// DatabaseURL is a PostgreSQL connection string. When set, records are
	// read from PostgreSQL instead of SQLite.
	DatabaseURL string

	// Locale is the BCP 47 tag used to format amounts, e.g. "en-US".
	Locale string

	// Currency is the ISO 4217 code whose symbol prefixes amounts.
	Currency string

	// Markdown also writes each report as a Markdown document next to the
	// text artifact.
	Markdown bool

	// LogFormat is "text" or "json".
	LogFormat string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputDir: filepath.Join(XDGDataDir(), reportsDirName),
		DBDir:     XDGDataDir(),
		Locale:    DefaultLocale,
		Currency:  DefaultCurrency,
		LogFormat: LogFormatText,
	}
}

// XDGDataDir returns the XDG data directory for reportgen.
// On Linux: ~/.local/share/reportgen
// On macOS: ~/Library/Application Support/reportgen
// On Windows: %LOCALAPPDATA%\reportgen
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for reportgen.
// On Linux: ~/.config/reportgen
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// UsePostgres reports whether records live in PostgreSQL.
func (c *Config) UsePostgres() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// LanguageTag parses Locale.
func (c *Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrInvalidLocale, c.Locale)
	}
	return tag, nil
}

// CurrencyUnit parses Currency.
func (c *Config) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, c.Currency)
	}
	return unit, nil
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrEmptyOutputDir
	}

	if !c.UsePostgres() && strings.TrimSpace(c.DBDir) == "" {
		return ErrNoStore
	}

	if _, err := c.LanguageTag(); err != nil {
		return err
	}

	if _, err := c.CurrencyUnit(); err != nil {
		return err
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}

// Apply copies every value set in f onto c. Unset file values leave the
// current value alone.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if f.DBDir != "" {
		c.DBDir = f.DBDir
	}
	if f.DatabaseURL != "" {
		c.DatabaseURL = f.DatabaseURL
	}
	if f.Locale != "" {
		c.Locale = f.Locale
	}
	if f.Currency != "" {
		c.Currency = f.Currency
	}
	if f.LogFormat != "" {
		c.LogFormat = f.LogFormat
	}
	if f.Markdown != nil {
		c.Markdown = *f.Markdown
	}
	if f.Verbose != nil {
		c.Verbose = *f.Verbose
	}
}
