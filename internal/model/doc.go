// Package model defines the core data structures used throughout reportgen.
//
// This package contains the following main types:
//   - ReportType: The closed set of report kinds (provider, member, summary)
//   - MemberRecord / ProviderRecord: Identity records a report is about
//   - ProvidedService: One billable encounter between a provider and a member
//   - ReportData: Everything a validator and formatter need for one report
//   - ReportOutput: The rendered artifact (file name + ordered lines)
//   - ValidationResult / DistributionResult: Stage outcomes
//
// The types carry no behavior beyond small helpers. Validation lives in the
// report package and persistence lives in the distribute and database
// packages, so these types can be shared without import cycles.
package model
