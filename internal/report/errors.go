package report

import "errors"

// ErrNilReportData is returned by a formatter that was handed no data.
// A formatter is only called after validation, so this indicates a
// programming error in the caller.
var ErrNilReportData = errors.New("Report data cannot be null") //nolint:staticcheck // text is shown to operators verbatim
