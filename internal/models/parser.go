package models

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Parser defines the interface for report parser implementations.
type Parser interface {
	Parse(r io.Reader) ([]Base1Record, error)
	ConvertToCSV(inputFile, outputFile string) error
	ValidateFormat(file string) (bool, error)
	BatchConvert(inputDir, outputDir string) (int, error)
	SetLogger(logger *logrus.Logger)
}
