package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/reportgen/internal/model"
)

// TestFormatMember tests the member report layout.
func TestFormatMember(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)

	t.Run("nil data returns ErrNilReportData", func(t *testing.T) {
		t.Parallel()

		out, err := f.FormatMember(nil)
		if !errors.Is(err, ErrNilReportData) {
			t.Fatalf("expected ErrNilReportData, got %v", err)
		}
		if err.Error() != "Report data cannot be null" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if out != nil {
			t.Error("expected nil output")
		}
	})

	t.Run("one service provided", func(t *testing.T) {
		t.Parallel()

		data := &model.ReportData{
			Member: validMember(),
			ProvidedServices: []model.ProvidedService{
				{ProviderName: "John Smith", ServiceDate: zeroDate, ServiceName: "AA"},
			},
		}

		out, err := f.FormatMember(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.FileName != "Alex Burbank.txt" {
			t.Errorf("expected file name %q, got %q", "Alex Burbank.txt", out.FileName)
		}

		want := []string{
			"Alex Burbank",
			"1111",
			"Blah OR 1111",
			"\n",
			"\n",
			"\n",
			"7",
			"\n",
			"Service date   Provider name                 Service name             ",
			"______________________________________________________________________",
			"01-01-0001     John Smith                    AA                       ",
		}
		if diff := cmp.Diff(want, out.OutputLines); diff != "" {
			t.Errorf("output lines mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("two services provided in input order", func(t *testing.T) {
		t.Parallel()

		data := &model.ReportData{
			Member: validMember(),
			ProvidedServices: []model.ProvidedService{
				{ProviderName: "John Smith", ServiceDate: zeroDate, ServiceName: "AA"},
				{ProviderName: "John Smith", ServiceDate: zeroDate, ServiceName: "BB"},
			},
		}

		out, err := f.FormatMember(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.OutputLines) != 12 {
			t.Fatalf("expected 12 lines, got %d", len(out.OutputLines))
		}
		if got := out.OutputLines[10]; got != "01-01-0001     John Smith                    AA                       " {
			t.Errorf("unexpected line 10 %q", got)
		}
		if got := out.OutputLines[11]; got != "01-01-0001     John Smith                    BB                       " {
			t.Errorf("unexpected line 11 %q", got)
		}
	})

	t.Run("line count is ten plus one per service", func(t *testing.T) {
		t.Parallel()

		for n := 1; n <= 5; n++ {
			services := make([]model.ProvidedService, n)
			for i := range services {
				services[i] = model.ProvidedService{ProviderName: "P", ServiceName: "S"}
			}

			out, err := f.FormatMember(&model.ReportData{Member: validMember(), ProvidedServices: services})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.OutputLines) != 10+n {
				t.Errorf("n=%d: expected %d lines, got %d", n, 10+n, len(out.OutputLines))
			}
		}
	})

	t.Run("long values are not truncated", func(t *testing.T) {
		t.Parallel()

		long := "Doctor Bartholomew Maximilian Worthington"
		data := &model.ReportData{
			Member:           validMember(),
			ProvidedServices: []model.ProvidedService{{ProviderName: long, ServiceDate: zeroDate, ServiceName: "AA"}},
		}

		out, err := f.FormatMember(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "01-01-0001     " + long + "AA                       "
		if out.OutputLines[10] != want {
			t.Errorf("got %q, expected %q", out.OutputLines[10], want)
		}
	})
}

// providerData returns provider report data with two services.
func providerData() *model.ReportData {
	return &model.ReportData{
		Provider: validProvider(),
		ProvidedServices: []model.ProvidedService{
			{
				ServiceDate:      time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
				DateTimeReceived: time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC),
				MemberName:       "Alex Burbank",
				MemberID:         7,
				ServiceID:        598470,
				ServiceName:      "Dietitian",
				Fee:              25.5,
			},
			{
				ServiceDate:      time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
				DateTimeReceived: time.Date(2024, 3, 7, 17, 0, 5, 0, time.UTC),
				MemberName:       "Dana Scully",
				MemberID:         12,
				ServiceID:        883948,
				ServiceName:      "Aerobics",
				Fee:              100,
			},
		},
	}
}

// TestFormatProvider tests the provider report layout and totals.
func TestFormatProvider(t *testing.T) {
	t.Parallel()

	t.Run("nil data returns ErrNilReportData", func(t *testing.T) {
		t.Parallel()

		_, err := NewFormatter(nil).FormatProvider(nil)
		if !errors.Is(err, ErrNilReportData) {
			t.Fatalf("expected ErrNilReportData, got %v", err)
		}
	})

	t.Run("renders table and trailing totals", func(t *testing.T) {
		t.Parallel()

		out, err := NewFormatter(nil).FormatProvider(providerData())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.FileName != "John Smith.txt" {
			t.Errorf("unexpected file name %q", out.FileName)
		}

		want := []string{
			"John Smith",
			"42 Main St",
			"Portland OR 97201",
			"\n",
			"\n",
			"\n",
			"100200300",
			"\n",
			"Service date   Date record received    Member name                   Member ID     Service ID Fee         ",
			strings.Repeat("_", 106),
			"03-04-2024     03-05-2024 09:15:00     Alex Burbank                  7             598470     $25.50      ",
			"03-06-2024     03-07-2024 17:00:05     Dana Scully                   12            883948     $100.00     ",
			"\n",
			"2",
			"$125.50",
		}
		if diff := cmp.Diff(want, out.OutputLines); diff != "" {
			t.Errorf("output lines mismatch (-want +got):\n%s", diff)
		}
		if len(out.OutputLines[9]) != 106 {
			t.Errorf("expected underline of 106, got %d", len(out.OutputLines[9]))
		}
	})

	t.Run("totals do not carry over between calls", func(t *testing.T) {
		t.Parallel()

		f := NewFormatter(nil)
		first, err := f.FormatProvider(providerData())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := f.FormatProvider(providerData())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if diff := cmp.Diff(first.OutputLines, second.OutputLines); diff != "" {
			t.Errorf("second call differs from first (-first +second):\n%s", diff)
		}
		n := len(second.OutputLines)
		if second.OutputLines[n-2] != "2" || second.OutputLines[n-1] != "$125.50" {
			t.Errorf("unexpected totals %q %q", second.OutputLines[n-2], second.OutputLines[n-1])
		}
	})
}

// TestFormatSummary tests the weekly summary layout.
func TestFormatSummary(t *testing.T) {
	t.Parallel()

	t.Run("nil data returns ErrNilReportData", func(t *testing.T) {
		t.Parallel()

		_, err := NewFormatter(nil).FormatSummary(nil)
		if !errors.Is(err, ErrNilReportData) {
			t.Fatalf("expected ErrNilReportData, got %v", err)
		}
	})

	t.Run("groups services by provider in first-seen order", func(t *testing.T) {
		t.Parallel()

		data := &model.ReportData{
			PeriodEnd: time.Date(2024, 3, 8, 23, 59, 0, 0, time.UTC),
			ProvidedServices: []model.ProvidedService{
				{ProviderName: "John Smith", ProviderID: 1, Fee: 25.5},
				{ProviderName: "Jane Doe", ProviderID: 2, Fee: 40},
				{ProviderName: "John Smith", ProviderID: 1, Fee: 100},
				{ProviderName: "Walk-in Clinic", Fee: 10},
				{ProviderName: "Walk-in Clinic", Fee: 5},
			},
		}

		out, err := NewFormatter(nil).FormatSummary(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.FileName != "Summary Report 03-08-2024.txt" {
			t.Errorf("unexpected file name %q", out.FileName)
		}

		want := []string{
			"Summary Report",
			"Week ending 03-08-2024",
			"\n",
			"\n",
			"\n",
			"Provider name                  Consultations  Total fee   ",
			strings.Repeat("_", 58),
			"John Smith                     2              $125.50     ",
			"Jane Doe                       1              $40.00      ",
			"Walk-in Clinic                 2              $15.00      ",
			"\n",
			"3",
			"5",
			"$180.50",
		}
		if diff := cmp.Diff(want, out.OutputLines); diff != "" {
			t.Errorf("output lines mismatch (-want +got):\n%s", diff)
		}
	})
}
