package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/nao1215/reportgen/internal/model"
)

// defaultHistoryLimit is how many runs history shows without --limit.
const defaultHistoryLimit = 20

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent report runs",
		Long: `History prints the most recent report requests as a Markdown table,
newest first, including failed ones and their reasons.

Examples:
  reportgen history
  reportgen history -n 5`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Maximum number of runs to show")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit <= 0 {
		return errors.New("limit must be positive")
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	store, err := openStore(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ReportRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No report runs recorded.")
		return nil
	}

	md := markdown.NewMarkdown(cmd.OutOrStdout())
	md.Table(markdown.TableSet{
		Header: []string{"Time", "Type", "Subject", "Result", "Detail"},
		Rows:   historyRows(runs),
	})
	return md.Build()
}

// historyRows converts runs to table rows. Successful runs show the file
// name, failed runs the reason.
func historyRows(runs []model.ReportRun) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		result, detail := "failed", run.ErrorMessage
		if run.Created {
			result, detail = "created", run.FileName
		}

		subject := strconv.Itoa(run.SubjectID)
		if run.Type == model.ReportTypeSummary {
			subject = "-"
		}

		rows = append(rows, []string{
			run.Timestamp.Local().Format(time.DateTime),
			run.Type.String(),
			subject,
			result,
			detail,
		})
	}
	return rows
}
