package pipeline

import (
	"context"
	"fmt"

	"github.com/nao1215/reportgen/internal/distribute"
	"github.com/nao1215/reportgen/internal/report"
)

// Step names, as reported by Name and recorded in Job.PerformedSteps.
const (
	StepValidate   = "validate"
	StepFormat     = "format"
	StepDistribute = "distribute"
)

// StageError is returned by a step whose stage reported an expected
// failure. Message is the stage's own text and is relayed to the caller
// unchanged.
type StageError struct {
	// Stage is the name of the failing step.
	Stage string

	// Message is the validator's or distributor's message.
	Message string
}

// Error returns the stage message verbatim.
func (e *StageError) Error() string {
	return e.Message
}

// ValidateStep checks the job's data with the strategy's validator.
type ValidateStep struct {
	strategy report.Strategy
}

// NewValidateStep creates a validate step for the given strategy.
func NewValidateStep(strategy report.Strategy) *ValidateStep {
	return &ValidateStep{strategy: strategy}
}

// Name returns the step name.
func (s *ValidateStep) Name() string {
	return StepValidate
}

// Do validates job.Data and fails with a StageError on an invalid verdict.
func (s *ValidateStep) Do(_ context.Context, job *Job) error {
	job.Validation = s.strategy.Validate(job.Data)
	if !job.Validation.Valid {
		return &StageError{Stage: StepValidate, Message: job.Validation.ErrorMessage}
	}
	return nil
}

// FormatStep renders the job's data with the strategy's formatter.
type FormatStep struct {
	strategy report.Strategy
}

// NewFormatStep creates a format step for the given strategy.
func NewFormatStep(strategy report.Strategy) *FormatStep {
	return &FormatStep{strategy: strategy}
}

// Name returns the step name.
func (s *FormatStep) Name() string {
	return StepFormat
}

// Do formats job.Data into job.Output.
func (s *FormatStep) Do(_ context.Context, job *Job) error {
	out, err := s.strategy.Format(job.Data)
	if err != nil {
		return fmt.Errorf("failed to format %s report: %w", s.strategy.Type, err)
	}
	job.Output = out
	return nil
}

// DistributeStep persists the job's output.
type DistributeStep struct {
	distributor distribute.Distributor
}

// NewDistributeStep creates a distribute step writing through d.
func NewDistributeStep(d distribute.Distributor) *DistributeStep {
	return &DistributeStep{distributor: d}
}

// Name returns the step name.
func (s *DistributeStep) Name() string {
	return StepDistribute
}

// Do distributes job.Output and fails with a StageError when the
// distributor reports it was not created.
func (s *DistributeStep) Do(_ context.Context, job *Job) error {
	job.Distribution = s.distributor.Distribute(job.Output)
	if !job.Distribution.Created {
		return &StageError{Stage: StepDistribute, Message: job.Distribution.ErrorMessage}
	}
	return nil
}
