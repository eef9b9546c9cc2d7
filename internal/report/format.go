package report

import (
	"strconv"

	"github.com/nao1215/reportgen/internal/model"
)

// Column layouts. Widths are fixed by the artifact format.
var (
	memberTable = table{
		{title: "Service date", width: 15},
		{title: "Provider name", width: 30},
		{title: "Service name", width: 25},
	}

	providerTable = table{
		{title: "Service date", width: 15},
		{title: "Date record received", width: 24},
		{title: "Member name", width: 30},
		{title: "Member ID", width: 14},
		{title: "Service ID", width: 11},
		{title: "Fee", width: 12},
	}

	summaryTable = table{
		{title: "Provider name", width: 31},
		{title: "Consultations", width: 15},
		{title: "Total fee", width: 12},
	}
)

// summaryTitle heads the summary report and names its file.
const summaryTitle = "Summary Report"

// Formatter renders validated ReportData into ReportOutput.
// A Formatter holds only its money format; every call builds its output
// and totals from scratch, so one Formatter may be shared freely.
type Formatter struct {
	money *MoneyFormat
}

// NewFormatter creates a Formatter. A nil money format selects
// DefaultMoneyFormat.
func NewFormatter(money *MoneyFormat) *Formatter {
	if money == nil {
		money = DefaultMoneyFormat()
	}
	return &Formatter{money: money}
}

// FormatMember renders the member report: the address block, a table of
// service date, provider name and service name, one row per service in
// input order. data must already have passed ValidateMember.
func (f *Formatter) FormatMember(data *model.ReportData) (*model.ReportOutput, error) {
	if data == nil {
		return nil, ErrNilReportData
	}

	m := data.Member
	lines := addressBlock(m.Name, m.Address, m.City, m.State, m.Zip, m.Number)
	lines = append(lines, memberTable.header(), memberTable.underline())

	for _, s := range data.ProvidedServices {
		lines = append(lines, memberTable.row(
			s.ServiceDate.Format(serviceDateLayout),
			s.ProviderName,
			s.ServiceName,
		))
	}

	return &model.ReportOutput{
		FileName:    m.Name + ".txt",
		OutputLines: lines,
	}, nil
}

// FormatProvider renders the provider report: the address block, a table
// of every service the provider billed, then a marker line followed by
// the consultation count and the total fee. data must already have
// passed ValidateProvider.
func (f *Formatter) FormatProvider(data *model.ReportData) (*model.ReportOutput, error) {
	if data == nil {
		return nil, ErrNilReportData
	}

	p := data.Provider
	lines := addressBlock(p.Name, p.Address, p.City, p.State, p.Zip, p.Number)
	lines = append(lines, providerTable.header(), providerTable.underline())

	var totals model.ProviderTotals
	for _, s := range data.ProvidedServices {
		totals = totals.Add(s.Fee)
		lines = append(lines, providerTable.row(
			s.ServiceDate.Format(serviceDateLayout),
			s.DateTimeReceived.Format(receivedLayout),
			s.MemberName,
			strconv.Itoa(s.MemberID),
			strconv.Itoa(s.ServiceID),
			f.money.Format(s.Fee),
		))
	}

	lines = append(lines,
		blankMarker,
		strconv.Itoa(totals.Consultations),
		f.money.Format(totals.Fee),
	)

	return &model.ReportOutput{
		FileName:    p.Name + ".txt",
		OutputLines: lines,
	}, nil
}

// providerSummary is one row of the summary table.
type providerSummary struct {
	name   string
	totals model.ProviderTotals
}

// FormatSummary renders the weekly summary: one row per provider who
// billed during the period (in order of first appearance) with their
// consultation count and fee total, then a marker line followed by the
// number of providers, the number of consultations and the overall fee.
// data must already have passed ValidateSummary.
func (f *Formatter) FormatSummary(data *model.ReportData) (*model.ReportOutput, error) {
	if data == nil {
		return nil, ErrNilReportData
	}

	periodEnd := data.PeriodEnd.Format(serviceDateLayout)
	lines := []string{
		summaryTitle,
		"Week ending " + periodEnd,
		blankMarker,
		blankMarker,
		blankMarker,
		summaryTable.header(),
		summaryTable.underline(),
	}

	rows := groupByProvider(data.ProvidedServices)
	overall := model.TotalsOf(data.ProvidedServices)
	for _, r := range rows {
		lines = append(lines, summaryTable.row(
			r.name,
			strconv.Itoa(r.totals.Consultations),
			f.money.Format(r.totals.Fee),
		))
	}

	lines = append(lines,
		blankMarker,
		strconv.Itoa(len(rows)),
		strconv.Itoa(overall.Consultations),
		f.money.Format(overall.Fee),
	)

	return &model.ReportOutput{
		FileName:    summaryTitle + " " + periodEnd + ".txt",
		OutputLines: lines,
	}, nil
}

// groupByProvider folds services into per-provider totals, keeping the
// order in which providers first appear. Services are keyed by provider
// number; a zero number falls back to the provider name.
func groupByProvider(services []model.ProvidedService) []providerSummary {
	index := make(map[string]int)
	var rows []providerSummary

	for _, s := range services {
		key := "name:" + s.ProviderName
		if s.ProviderID != 0 {
			key = "id:" + strconv.Itoa(s.ProviderID)
		}

		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, providerSummary{name: s.ProviderName})
		}
		rows[i].totals = rows[i].totals.Add(s.Fee)
	}

	return rows
}
