package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/nao1215/reportgen/internal/distribute"
	"github.com/nao1215/reportgen/internal/model"
	"github.com/nao1215/reportgen/internal/report"
)

// TestSteps tests each step on its own.
func TestSteps(t *testing.T) {
	t.Parallel()

	strategy, err := report.NewFactory().Strategy(model.ReportTypeMember)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("validate step returns a StageError", func(t *testing.T) {
		t.Parallel()

		job := &Job{Data: &model.ReportData{}}
		err := NewValidateStep(strategy).Do(context.Background(), job)

		var stageErr *StageError
		if !errors.As(err, &stageErr) {
			t.Fatalf("expected StageError, got %v", err)
		}
		if stageErr.Stage != StepValidate {
			t.Errorf("expected stage %q, got %q", StepValidate, stageErr.Stage)
		}
		if stageErr.Error() != "Member record cannot be null" {
			t.Errorf("unexpected message %q", stageErr.Error())
		}
		if job.Validation.Valid {
			t.Error("expected invalid verdict on the job")
		}
	})

	t.Run("format step fills the output", func(t *testing.T) {
		t.Parallel()

		job := &Job{Data: &model.ReportData{
			Member: &model.MemberRecord{Name: "Alex Burbank", Address: "1111", City: "Blah", State: "OR", Number: 7, Zip: 1111},
			ProvidedServices: []model.ProvidedService{
				{ProviderName: "John Smith", ServiceName: "AA"},
			},
		}}

		if err := NewFormatStep(strategy).Do(context.Background(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.FileName() != "Alex Burbank.txt" {
			t.Errorf("unexpected file name %q", job.FileName())
		}
	})

	t.Run("format step wraps formatter errors", func(t *testing.T) {
		t.Parallel()

		err := NewFormatStep(strategy).Do(context.Background(), &Job{})
		if !errors.Is(err, report.ErrNilReportData) {
			t.Errorf("expected ErrNilReportData, got %v", err)
		}
	})

	t.Run("distribute step relays the distributor message", func(t *testing.T) {
		t.Parallel()

		job := &Job{Output: &model.ReportOutput{FileName: "a.txt"}}
		err := NewDistributeStep(distribute.NewMemoryDistributor()).Do(context.Background(), job)

		var stageErr *StageError
		if !errors.As(err, &stageErr) {
			t.Fatalf("expected StageError, got %v", err)
		}
		if stageErr.Stage != StepDistribute {
			t.Errorf("expected stage %q, got %q", StepDistribute, stageErr.Stage)
		}
		if stageErr.Message != "No output lines in report" {
			t.Errorf("unexpected message %q", stageErr.Message)
		}
	})
}
