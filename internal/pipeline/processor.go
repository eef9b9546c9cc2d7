package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nao1215/reportgen/internal/distribute"
	"github.com/nao1215/reportgen/internal/model"
	"github.com/nao1215/reportgen/internal/report"
)

// SummaryPeriod is the span of service dates covered by a summary report.
const SummaryPeriod = 7 * 24 * time.Hour

// Errors for collaborators the caller must supply.
var (
	// ErrNoRecordSource is returned when GenerateReport gets a nil source.
	ErrNoRecordSource = errors.New("record source is not configured")

	// ErrNoFactory is returned when GenerateReport gets a nil factory.
	ErrNoFactory = errors.New("report factory is not configured")
)

// RecordSource supplies the records a report is built from.
//
// A record that does not exist is returned as (nil, nil); the validator
// turns it into a "record cannot be null" message. Service lookups for an
// existing subject with no services return an empty, non-nil slice.
// Errors are reserved for failures of the source itself.
type RecordSource interface {
	// Member returns the member with the given number.
	Member(ctx context.Context, number int) (*model.MemberRecord, error)

	// Provider returns the provider with the given number.
	Provider(ctx context.Context, number int) (*model.ProviderRecord, error)

	// ServicesForMember returns the services a member received, by service date.
	ServicesForMember(ctx context.Context, number int) ([]model.ProvidedService, error)

	// ServicesForProvider returns the services a provider billed, by service date.
	ServicesForProvider(ctx context.Context, number int) ([]model.ProvidedService, error)

	// ServicesBetween returns services whose service date is in [from, to], by service date.
	ServicesBetween(ctx context.Context, from, to time.Time) ([]model.ProvidedService, error)
}

// RunRecorder keeps a history of report runs.
type RunRecorder interface {
	SaveReportRun(ctx context.Context, run *model.ReportRun) error
}

// Processor generates one report per call.
// It holds no per-request state and may be reused.
type Processor struct {
	distributor distribute.Distributor
	recorder    RunRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithProcessorLogger sets a custom logger for the processor.
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithClock sets the clock used for summary periods and run timestamps.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *Processor) {
		p.now = now
	}
}

// WithRunRecorder records every run, successful or not.
// Recording failures are logged and never change the outcome of a run.
func WithRunRecorder(recorder RunRecorder) ProcessorOption {
	return func(p *Processor) {
		p.recorder = recorder
	}
}

// NewProcessor creates a Processor that writes reports through d.
func NewProcessor(d distribute.Distributor, opts ...ProcessorOption) *Processor {
	p := &Processor{
		distributor: d,
		logger:      slog.Default(),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// GenerateReport produces and distributes one report.
//
// It selects the strategy for reportType, fetches the subject identified
// by id (ignored for summary reports) and its services from source, then
// validates, formats and distributes. The first failure ends the run.
// Validator and distributor messages are returned verbatim; any other
// failure, including a panic, is returned as its description.
func (p *Processor) GenerateReport(
	ctx context.Context,
	reportType model.ReportType,
	source RecordSource,
	factory *report.Factory,
	id int,
) (created bool, errorMessage string) {
	job := &Job{RunID: uuid.NewString()}
	logger := p.logger.With(
		"run_id", job.RunID,
		"report_type", reportType.String(),
		"subject_id", id,
	)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("report generation panicked", "panic", r)
			created, errorMessage = false, fmt.Sprintf("unexpected failure: %v", r)
		}
		p.recordRun(ctx, logger, &model.ReportRun{
			ID:           job.RunID,
			Type:         reportType,
			SubjectID:    id,
			FileName:     job.FileName(),
			Created:      created,
			ErrorMessage: errorMessage,
			Timestamp:    p.now(),
		})
	}()

	if factory == nil {
		return false, ErrNoFactory.Error()
	}
	if source == nil {
		return false, ErrNoRecordSource.Error()
	}

	strategy, err := factory.Strategy(reportType)
	if err != nil {
		logger.Warn("unsupported report type", "error", err)
		return false, err.Error()
	}
	job.Strategy = strategy

	job.Data, err = p.fetch(ctx, reportType, source, id)
	if err != nil {
		logger.Error("failed to fetch records", "error", err)
		return false, err.Error()
	}

	pl := New(WithLogger(logger))
	pl.AddSteps(
		NewValidateStep(strategy),
		NewFormatStep(strategy),
		NewDistributeStep(p.distributor),
	)

	if err := pl.Execute(ctx, job); err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			return false, stageErr.Message
		}
		return false, err.Error()
	}

	logger.Info("report generated", "file", job.FileName())
	return true, ""
}

// fetch asks source for everything reportType needs and assembles it.
func (p *Processor) fetch(ctx context.Context, reportType model.ReportType, source RecordSource, id int) (*model.ReportData, error) {
	data := &model.ReportData{Type: reportType}

	switch reportType {
	case model.ReportTypeMember:
		member, err := source.Member(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch member %d: %w", id, err)
		}
		if member == nil {
			return data, nil
		}
		data.Member = member
		data.ProvidedServices, err = source.ServicesForMember(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch services for member %d: %w", id, err)
		}

	case model.ReportTypeProvider:
		provider, err := source.Provider(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch provider %d: %w", id, err)
		}
		if provider == nil {
			return data, nil
		}
		data.Provider = provider
		data.ProvidedServices, err = source.ServicesForProvider(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch services for provider %d: %w", id, err)
		}

	case model.ReportTypeSummary:
		end := p.now()
		services, err := source.ServicesBetween(ctx, end.Add(-SummaryPeriod), end)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch services for summary: %w", err)
		}
		data.ProvidedServices = services
		data.PeriodEnd = end

	default:
		return nil, fmt.Errorf("%w: %d", model.ErrUnsupportedReportType, int(reportType))
	}

	return data, nil
}

// recordRun saves run if a recorder is configured.
func (p *Processor) recordRun(ctx context.Context, logger *slog.Logger, run *model.ReportRun) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.SaveReportRun(context.WithoutCancel(ctx), run); err != nil {
		logger.Warn("failed to record report run", "error", err)
	}
}
