// Package b1parser linealizes the "BASE 1 PENDIENTES DE CONCILIAR" report,
// a page-oriented fixed-width text dump produced by the mainframe batch
// job. Each logical record spans two physical lines grouped under repeating
// cardholder headers; the parser reassembles the pairs, slices the fixed
// columns and emits one 29-column record per pair.
package b1parser

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/common"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/dateutils"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/encoding"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/fileutils"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/models"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/parsererror"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		common.SetLogger(logger)
	}
}

// ParseLines scans a sequence of report lines and returns the linealized
// records in input order. This is the pure core: no I/O, no prompts, no
// progress reporting. Malformed content is dropped silently; the function
// never fails.
func ParseLines(lines []string) []models.Base1Record {
	records, _ := ParseLinesWithStats(lines)
	return records
}

// ParseLinesWithStats is ParseLines plus the scan statistics.
func ParseLinesWithStats(lines []string) ([]models.Base1Record, ScanStats) {
	s := newScanner()
	for _, line := range lines {
		s.consume(line)
	}
	return s.finish()
}

// Parse reads report text from r and returns the linealized records.
// The input passes through charset detection first: the mainframe exports
// arrive UTF-8 with BOM or Windows-1252 depending on the download path.
// The only error condition is failing to read from r.
func Parse(r io.Reader) ([]models.Base1Record, error) {
	records, _, err := ParseWithStats(r)
	return records, err
}

// ParseWithStats is Parse plus the scan statistics.
func ParseWithStats(r io.Reader) ([]models.Base1Record, ScanStats, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, ScanStats{}, fmt.Errorf("detect encoding: %w", err)
	}

	s := newScanner()
	sc := bufio.NewScanner(utf8r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		s.consume(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, ScanStats{}, fmt.Errorf("error reading report: %w", err)
	}

	records, stats := s.finish()
	if stats.DroppedRS > 0 {
		log.WithField("count", stats.DroppedRS).Warn("Dropped records with non-numeric RS values")
	}
	if stats.OrphanLines > 0 {
		log.WithField("count", stats.OrphanLines).Warn("Dropped unpaired trailing data line")
	}
	return records, stats, nil
}

// ParseFile parses a report file and returns the linealized records.
func ParseFile(filePath string) ([]models.Base1Record, error) {
	log.WithField("file", filePath).Info("Parsing BASE 1 report file")

	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return nil, &parsererror.SourceError{FilePath: filePath, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close report file")
		}
	}()

	records, stats, err := ParseWithStats(file)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"lines":   stats.TotalLines,
		"records": stats.Records,
	}).Info("Successfully parsed BASE 1 report")
	return records, nil
}

// InspectFile scans a report file and returns only the scan statistics,
// without producing output. Used by the inspect command.
func InspectFile(filePath string) (ScanStats, error) {
	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return ScanStats{}, &parsererror.SourceError{FilePath: filePath, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close report file")
		}
	}()

	_, stats, err := ParseWithStats(file)
	return stats, err
}

// ConvertToCSV converts a BASE 1 report file to the standard CSV format.
// An input with no records still produces a CSV with headers.
func ConvertToCSV(inputFile, outputFile string) error {
	records, err := ParseFile(inputFile)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		log.WithField("file", outputFile).Info("No records found, writing empty CSV with headers")
		return common.WriteRecordsToCSV([]models.Base1Record{}, outputFile)
	}

	log.WithFields(logrus.Fields{
		"count": len(records),
		"file":  outputFile,
	}).Info("Writing records to CSV file")
	return common.WriteRecordsToCSV(records, outputFile)
}

// WriteToCSV writes a slice of records to a CSV file using the common
// implementation so delimiter configuration stays consistent.
func WriteToCSV(records []models.Base1Record, csvFile string) error {
	return common.WriteRecordsToCSV(records, csvFile)
}

// ValidateFormat checks whether a file looks like a BASE 1 report by
// scanning for at least one cardholder header in the first lines.
func ValidateFormat(filePath string) (bool, error) {
	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return false, &parsererror.SourceError{FilePath: filePath, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close report file")
		}
	}()

	utf8r, err := encoding.NewUTF8Reader(file)
	if err != nil {
		return false, fmt.Errorf("detect encoding: %w", err)
	}

	// The first cardholder header appears within the opening page.
	const probeLines = 500
	sc := bufio.NewScanner(utf8r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 0; i < probeLines && sc.Scan(); i++ {
		if strings.HasPrefix(strings.TrimSpace(sc.Text()), headerPrefix) {
			return true, nil
		}
	}
	if err := sc.Err(); err != nil {
		return false, fmt.Errorf("error reading report: %w", err)
	}
	return false, nil
}

// BatchConvert converts all .txt report files in a directory to CSV files
// of the same base name in the output directory.
func BatchConvert(inputDir, outputDir string) (int, error) {
	files, err := fileutils.ListFilesWithExtension(inputDir, ".txt")
	if err != nil {
		return 0, err
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, err
	}

	count := 0
	for _, inputFile := range files {
		base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
		outputFile := filepath.Join(outputDir, base+".csv")

		if err := ConvertToCSV(inputFile, outputFile); err != nil {
			return count, fmt.Errorf("error converting %s: %w", inputFile, err)
		}
		count++
	}

	log.WithFields(logrus.Fields{
		"count":  count,
		"input":  inputDir,
		"output": outputDir,
	}).Info("Batch conversion completed")
	return count, nil
}

// LastBusinessDay returns the last business day before now: Friday for
// runs on Saturday, Sunday and Monday, otherwise the previous day.
func LastBusinessDay(now time.Time) time.Time {
	return dateutils.LastBusinessDay(now)
}

// OutputFileName builds the conventional output name for a conversion run,
// dated with the last business day.
func OutputFileName(now time.Time, outputDir string) string {
	name := fmt.Sprintf("BASE 1 PENDIENTES DE CONCILIAR LINEALIZADO (%s).csv",
		dateutils.FormatReportDate(dateutils.LastBusinessDay(now)))
	if outputDir != "" {
		return filepath.Join(outputDir, name)
	}
	return name
}
