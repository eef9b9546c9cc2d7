package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Date layouts used in report lines and validation messages.
const (
	// serviceDateLayout renders a service date column, e.g. "01-31-2024".
	serviceDateLayout = "01-02-2006"

	// receivedLayout renders the date-received column, e.g. "01-31-2024 13:05:00".
	receivedLayout = "01-02-2006 15:04:05"

	// messageDateLayout is the short date/time used inside validation
	// messages, e.g. "1/1/0001 12:00:00 AM".
	messageDateLayout = "1/2/2006 3:04:05 PM"
)

// blankMarker is the literal separator line emitted between report blocks.
// It is a line whose content is a newline character, not an empty line;
// existing consumers count on the doubled line break it produces.
const blankMarker = "\n"

// column is one fixed-width field of a report table.
type column struct {
	title string
	width int
}

// table is an ordered set of columns.
type table []column

// header returns the column titles, each left-justified to its width.
func (t table) header() string {
	titles := make([]string, len(t))
	for i, c := range t {
		titles[i] = c.title
	}
	return t.row(titles...)
}

// underline returns a rule of '_' spanning the table's total width.
func (t table) underline() string {
	return strings.Repeat("_", t.width())
}

// width returns the sum of all column widths.
func (t table) width() int {
	total := 0
	for _, c := range t {
		total += c.width
	}
	return total
}

// row left-justifies each value to its column width.
// Values longer than the column are kept whole, shifting later columns.
// Missing trailing values render as padding.
func (t table) row(values ...string) string {
	var sb strings.Builder
	for i, c := range t {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		sb.WriteString(padRight(v, c.width))
	}
	return sb.String()
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// addressBlock returns the fixed eight-line heading shared by the member
// and provider reports: name, address, "city state zip", three markers,
// the record number and one marker.
func addressBlock(name, address, city, state string, zip, number int) []string {
	return []string{
		name,
		address,
		city + " " + state + " " + strconv.Itoa(zip),
		blankMarker,
		blankMarker,
		blankMarker,
		strconv.Itoa(number),
		blankMarker,
	}
}
