package model

import "time"

// ReportData aggregates everything one report needs.
// Exactly one of Member or Provider is consulted, depending on Type;
// the Summary report uses neither.
//
// ProvidedServices distinguishes nil (absent) from empty: validators
// report the two cases with different messages.
type ReportData struct {
	// Type is the report type this data was assembled for.
	Type ReportType

	// Member is the subject of a member report.
	Member *MemberRecord

	// Provider is the subject of a provider report.
	Provider *ProviderRecord

	// ProvidedServices are the encounters listed in the report, in order.
	ProvidedServices []ProvidedService

	// PeriodEnd is the last day covered by a summary report.
	PeriodEnd time.Time
}

// ReportOutput is the rendered artifact handed to a distributor.
// It is never mutated after the formatter returns it.
type ReportOutput struct {
	// FileName is the artifact name, e.g. "Alex Burbank.txt".
	FileName string

	// OutputLines are the report lines in the order they must be written.
	OutputLines []string
}

// ProviderTotals is the consultation count and fee sum of a service list.
type ProviderTotals struct {
	Consultations int
	Fee           float64
}

// Add returns t with one more consultation of the given fee.
func (t ProviderTotals) Add(fee float64) ProviderTotals {
	return ProviderTotals{
		Consultations: t.Consultations + 1,
		Fee:           t.Fee + fee,
	}
}

// TotalsOf folds services into a fresh ProviderTotals.
// Every call starts from zero, so repeated formatting never carries
// totals over from an earlier report.
func TotalsOf(services []ProvidedService) ProviderTotals {
	var totals ProviderTotals
	for _, s := range services {
		totals = totals.Add(s.Fee)
	}
	return totals
}
