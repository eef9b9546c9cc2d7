package model

import "errors"

// ErrUnsupportedReportType is returned when a report type selector is
// outside the closed set {Provider, Member, Summary}.
var ErrUnsupportedReportType = errors.New("unsupported report type")
