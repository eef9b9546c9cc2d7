// Package distribute persists rendered reports.
//
// A Distributor takes a model.ReportOutput and writes its lines, in order,
// to a named artifact. Implementations:
//   - FileDistributor: one text file per report under a base directory
//   - MarkdownDistributor: a Markdown rendition of the same report
//   - MultiDistributor: fans a report out to several distributors
//   - MemoryDistributor: keeps reports in memory, for tests and dry runs
//
// Empty outputs and missing file names are reported as failed
// model.DistributionResult values. A nil output is a programming error and
// panics with ErrNilOutput.
package distribute
