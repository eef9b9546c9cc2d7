package model

import "time"

// ReportRun records one invocation of the report processor.
// Runs are kept for auditing which reports were produced and why a
// request failed.
type ReportRun struct {
	// ID is the run identifier (a UUID) also used in log output.
	ID string

	// Type is the requested report type.
	Type ReportType

	// SubjectID is the member or provider number requested.
	// It is recorded as given, even for summary reports that ignore it.
	SubjectID int

	// FileName is the artifact name, empty when formatting never ran.
	FileName string

	// Created is true when the artifact was written.
	Created bool

	// ErrorMessage is the failure reason when Created is false.
	ErrorMessage string

	// Timestamp is when the run finished.
	Timestamp time.Time
}
