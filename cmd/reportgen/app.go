package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/reportgen/internal/config"
	"github.com/nao1215/reportgen/internal/database"
	"github.com/nao1215/reportgen/internal/distribute"
	"github.com/nao1215/reportgen/internal/log"
	"github.com/nao1215/reportgen/internal/report"
)

// buildConfig loads the configuration file and applies every flag the
// user set explicitly, then validates the result.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := stringFlag(cmd, "config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	overrides := []struct {
		name   string
		target *string
	}{
		{"output-dir", &cfg.OutputDir},
		{"db-dir", &cfg.DBDir},
		{"database-url", &cfg.DatabaseURL},
	}
	for _, o := range overrides {
		if !flagChanged(cmd, o.name) {
			continue
		}
		if *o.target, err = stringFlag(cmd, o.name); err != nil {
			return nil, err
		}
	}

	if flagChanged(cmd, "markdown") {
		if cfg.Markdown, err = cmd.Flags().GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flagChanged(cmd, "verbose") {
		if cfg.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// flagChanged reports whether the named flag exists and was set.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// stringFlag returns the named flag's value, or "" if the command has no
// such flag.
func stringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	return cmd.Flags().GetString(name)
}

// setupLogger creates the secure structured logger described by cfg.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return log.New(w, cfg.LogFormat, cfg.Verbose)
}

// openStore opens the record store selected by cfg.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (database.Store, error) {
	if cfg.UsePostgres() {
		db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		logger.Info("database opened", "database_url", cfg.DatabaseURL)
		return db, nil
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Info("database opened", "path", db.Path())
	return db, nil
}

// newFactory builds the report strategies with the configured money format.
func newFactory(cfg *config.Config) (*report.Factory, error) {
	tag, err := cfg.LanguageTag()
	if err != nil {
		return nil, err
	}
	unit, err := cfg.CurrencyUnit()
	if err != nil {
		return nil, err
	}
	return report.NewFactory(report.WithMoneyFormat(report.NewMoneyFormat(tag, unit))), nil
}

// newDistributor writes text reports to the output directory, and
// Markdown copies next to them when enabled.
func newDistributor(cfg *config.Config, logger *slog.Logger) distribute.Distributor {
	files := distribute.NewFileDistributor(cfg.OutputDir, distribute.WithFileLogger(logger))
	if !cfg.Markdown {
		return files
	}
	return distribute.NewMultiDistributor(
		files,
		distribute.NewMarkdownDistributor(cfg.OutputDir, distribute.WithFileLogger(logger)),
	)
}
