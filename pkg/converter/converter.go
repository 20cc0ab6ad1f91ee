// Package converter exposes the BASE 1 linealizer as a library API for
// programs embedding the conversion without the CLI.
package converter

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/b1parser"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/models"
)

// Record is one linealized report record.
type Record = models.Base1Record

// Stats summarizes one scan of a report.
type Stats = b1parser.ScanStats

// SetLogger configures the logger used by the conversion pipeline.
func SetLogger(logger *logrus.Logger) {
	b1parser.SetLogger(logger)
}

// Parse reads a BASE 1 report from r and returns the linealized records.
func Parse(r io.Reader) ([]Record, error) {
	return b1parser.Parse(r)
}

// ParseLines scans an in-memory sequence of report lines. It performs no
// I/O and never fails; malformed content is dropped silently.
func ParseLines(lines []string) []Record {
	return b1parser.ParseLines(lines)
}

// ConvertToCSV converts a report file to the standard CSV table.
func ConvertToCSV(inputFile, outputFile string) error {
	return b1parser.ConvertToCSV(inputFile, outputFile)
}

// Inspect scans a report file and returns the scan statistics.
func Inspect(inputFile string) (Stats, error) {
	return b1parser.InspectFile(inputFile)
}

// OutputFileName returns the conventional output name for a run at the
// given time, dated with the last business day.
func OutputFileName(now time.Time, outputDir string) string {
	return b1parser.OutputFileName(now, outputDir)
}
