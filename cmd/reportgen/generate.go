package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/reportgen/internal/model"
	"github.com/nao1215/reportgen/internal/pipeline"
)

// successMessage is printed when a report was written.
const successMessage = "Successful"

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one report",
		Long: `Generate validates, formats and writes one report.

The report type is given by name or number:
  provider or 1, member or 2, summary or 3

Member and provider reports need --id, the member or provider number.
The summary report covers the 7 days ending now and ignores --id.

On success "Successful" is printed. Otherwise the reason is printed and
the command exits with a non-zero status.

Examples:
  # Member report for member 7
  reportgen generate --type member --id 7

  # Provider report, also written as Markdown
  reportgen generate -t 1 -i 100200300 --markdown

  # Weekly summary into a custom directory
  reportgen generate -t summary -o ./reports`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("type", "t", "", "Report type: provider|member|summary or 1|2|3")
	cmd.Flags().IntP("id", "i", 0, "Member or provider number")
	cmd.Flags().StringP("output-dir", "o", "", "Directory to write the report to")
	cmd.Flags().BoolP("markdown", "m", false, "Also write a Markdown copy of the report")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	typeFlag, err := cmd.Flags().GetString("type")
	if err != nil {
		return err
	}
	reportType, err := model.ParseReportType(typeFlag)
	if err != nil {
		return err
	}

	id, err := cmd.Flags().GetInt("id")
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

	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}

	processor := pipeline.NewProcessor(
		newDistributor(cfg, logger),
		pipeline.WithProcessorLogger(logger),
		pipeline.WithRunRecorder(store),
	)

	created, message := processor.GenerateReport(ctx, reportType, store, factory, id)
	if !created {
		return errors.New(message)
	}

	fmt.Fprintln(cmd.OutOrStdout(), successMessage)
	return nil
}
