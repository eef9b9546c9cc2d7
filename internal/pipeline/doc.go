// Package pipeline runs report generation as a sequence of steps.
//
// A report request goes through three stages: validate, format and
// distribute. Each stage is implemented as a Step that receives the
// current Job and may fill in its output. The Pipeline runs steps in
// order and stops at the first failure, so a report is never written
// from data that failed validation.
//
// The Processor is the entry point used by the CLI. It resolves the
// strategy for a report type, fetches records from a RecordSource,
// assembles the report data, runs the pipeline and collapses the outcome
// into a single (created, errorMessage) pair.
package pipeline
