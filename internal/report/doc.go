// Package report validates and renders the fixed-layout text reports.
//
// Each report type (provider, member, summary) has a validator and a
// formatter. The Factory pairs them into a Strategy selected by
// model.ReportType:
//
//	factory := report.NewFactory()
//	strategy, err := factory.Strategy(model.ReportTypeMember)
//	if err != nil {
//	    return err // model.ErrUnsupportedReportType
//	}
//	if v := strategy.Validate(data); !v.Valid {
//	    return errors.New(v.ErrorMessage)
//	}
//	out, err := strategy.Format(data)
//
// Validators and formatters are pure: they never mutate their input, keep
// no state between calls and never touch storage. Writing the rendered
// lines is the job of the distribute package.
//
// The line layout is positional and fixed. Downstream consumers parse the
// artifacts by line number and column offset, so any change to widths,
// header text or separator lines is a breaking change.
package report
