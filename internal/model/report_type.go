package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ReportType selects which validator, formatter and record shape apply.
//
// The integer values are part of the external contract: the entry point
// historically accepted 1, 2 or 3 from the operator, so they must not be
// renumbered.
type ReportType int

const (
	// ReportTypeProvider is the per-provider activity report.
	ReportTypeProvider ReportType = 1

	// ReportTypeMember is the per-member activity report.
	ReportTypeMember ReportType = 2

	// ReportTypeSummary is the weekly operational summary of all providers.
	ReportTypeSummary ReportType = 3
)

// AllReportTypes lists every supported report type in selector order.
var AllReportTypes = []ReportType{
	ReportTypeProvider,
	ReportTypeMember,
	ReportTypeSummary,
}

// String returns the lower-case name of the report type.
func (t ReportType) String() string {
	switch t {
	case ReportTypeProvider:
		return "provider"
	case ReportTypeMember:
		return "member"
	case ReportTypeSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the supported report types.
func (t ReportType) Valid() bool {
	switch t {
	case ReportTypeProvider, ReportTypeMember, ReportTypeSummary:
		return true
	default:
		return false
	}
}

// ParseReportType converts operator input into a ReportType.
// It accepts the numeric selectors "1", "2", "3" and the names
// "provider", "member", "summary" (case-insensitive, surrounding
// whitespace ignored). Anything else wraps ErrUnsupportedReportType.
func ParseReportType(s string) (ReportType, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(v); err == nil {
		t := ReportType(n)
		if !t.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrUnsupportedReportType, n)
		}
		return t, nil
	}

	for _, t := range AllReportTypes {
		if t.String() == v {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedReportType, s)
}
