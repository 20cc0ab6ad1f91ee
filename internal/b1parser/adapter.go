package b1parser

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/models"
)

// Adapter implements the models.Parser interface for BASE 1 reports by
// delegating to the package-level functions.
type Adapter struct{}

// NewAdapter creates a new adapter for the b1parser.
func NewAdapter() models.Parser {
	return &Adapter{}
}

// Parse implements models.Parser.Parse.
func (a *Adapter) Parse(r io.Reader) ([]models.Base1Record, error) {
	return Parse(r)
}

// ConvertToCSV implements models.Parser.ConvertToCSV.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	return ConvertToCSV(inputFile, outputFile)
}

// ValidateFormat implements models.Parser.ValidateFormat.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	return ValidateFormat(file)
}

// BatchConvert implements models.Parser.BatchConvert.
func (a *Adapter) BatchConvert(inputDir, outputDir string) (int, error) {
	return BatchConvert(inputDir, outputDir)
}

// SetLogger implements models.Parser.SetLogger.
func (a *Adapter) SetLogger(logger *logrus.Logger) {
	SetLogger(logger)
}
