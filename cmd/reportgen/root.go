package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for reportgen.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reportgen",
		Short: "Generate member, provider and summary reports",
		Long: `reportgen generates fixed-layout text reports from member, provider and
service records.

Three report types are available:
  provider (1)  services a provider billed, with consultation count and fee total
  member   (2)  services a member received
  summary  (3)  every provider who billed in the last 7 days, with totals

Records are kept in SQLite by default, or in PostgreSQL when a database
URL is configured. Load them with "reportgen import".`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .reportgen in current, home or XDG config directory)")
	cmd.PersistentFlags().String("db-dir", "",
		"Directory of the SQLite database (default: XDG data directory)")
	cmd.PersistentFlags().String("database-url", "",
		"PostgreSQL connection string; replaces SQLite when set")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
