package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/reportgen/internal/database"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import members, providers and services from a YAML file",
		Long: `Import loads records from a YAML file into the configured database.

Members and providers are matched by number and updated in place. A
service is identified by its provider, member, service code, service date
and receipt time, so importing the same file twice changes nothing.

File format:
  members:
    - number: 7
      name: Alex Burbank
      address: "1111"
      city: Blah
      state: OR
      zip: 1111
  providers:
    - number: 100
      name: John Smith
      address: 42 Main St
      city: Portland
      state: OR
      zip: 97201
  services:
    - provider_id: 100
      member_id: 7
      service_id: 555
      service_name: AA
      service_date: 2024-03-08
      date_time_received: 2024-03-08T10:00:00Z
      fee: 50`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	fixture, err := database.LoadFixture(args[0])
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(ctx, fixture); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d members, %d providers, %d services from %s\n",
		len(fixture.Members), len(fixture.Providers), len(fixture.Services), args[0])
	return nil
}
