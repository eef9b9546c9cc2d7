package report

import (
	"fmt"

	"github.com/nao1215/reportgen/internal/model"
)

// Strategy pairs the validator and formatter of one report type.
// It is a plain value; the set of strategies is closed and known at
// compile time, so no interface hierarchy is needed.
type Strategy struct {
	// Type is the report type this strategy handles.
	Type model.ReportType

	// Validate checks report data before formatting.
	Validate func(data *model.ReportData) model.ValidationResult

	// Format renders validated report data.
	Format func(data *model.ReportData) (*model.ReportOutput, error)
}

// Factory selects the Strategy for a report type.
type Factory struct {
	strategies map[model.ReportType]Strategy
}

// FactoryOption configures a Factory.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	money *MoneyFormat
}

// WithMoneyFormat sets the currency format used by fee columns.
func WithMoneyFormat(money *MoneyFormat) FactoryOption {
	return func(o *factoryOptions) {
		o.money = money
	}
}

// NewFactory creates a Factory with a strategy for every model.ReportType.
func NewFactory(opts ...FactoryOption) *Factory {
	o := &factoryOptions{}
	for _, opt := range opts {
		opt(o)
	}

	formatter := NewFormatter(o.money)

	return &Factory{
		strategies: map[model.ReportType]Strategy{
			model.ReportTypeProvider: {
				Type:     model.ReportTypeProvider,
				Validate: ValidateProvider,
				Format:   formatter.FormatProvider,
			},
			model.ReportTypeMember: {
				Type:     model.ReportTypeMember,
				Validate: ValidateMember,
				Format:   formatter.FormatMember,
			},
			model.ReportTypeSummary: {
				Type:     model.ReportTypeSummary,
				Validate: ValidateSummary,
				Format:   formatter.FormatSummary,
			},
		},
	}
}

// Strategy returns the validator/formatter pair for t.
// Any value outside the closed set returns an error wrapping
// model.ErrUnsupportedReportType; there is no fallback strategy.
func (f *Factory) Strategy(t model.ReportType) (Strategy, error) {
	s, ok := f.strategies[t]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %d", model.ErrUnsupportedReportType, int(t))
	}
	return s, nil
}
