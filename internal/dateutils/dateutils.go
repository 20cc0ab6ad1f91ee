// Package dateutils provides the business-day calendar used to date report
// runs and output files.
package dateutils

import "time"

// Date layouts used throughout the application. The report layout matches
// the DD-MM-YYYY convention of the downstream conciliation sheets.
const (
	DateLayoutReport = "02-01-2006"
	DateLayoutStamp  = "20060102_150405"
)

// LastBusinessDay returns the last business day before now: Friday for runs
// on Saturday, Sunday and Monday, otherwise the previous day. The batch job
// publishes each report on the next business day, so a Monday run processes
// Friday's data.
func LastBusinessDay(now time.Time) time.Time {
	offset := 1
	switch now.Weekday() {
	case time.Monday:
		offset = 3
	case time.Sunday:
		offset = 2
	}
	return now.AddDate(0, 0, -offset)
}

// FormatReportDate renders a date in the conventional report file format.
func FormatReportDate(date time.Time) string {
	return date.Format(DateLayoutReport)
}
