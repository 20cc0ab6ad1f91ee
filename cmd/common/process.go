// Package common contains shared functionality for command handlers
package common

import (
	"github.com/sirupsen/logrus"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/models"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/parsererror"
)

// ProcessFile validates (optionally) and converts a single report file
// using the given parser, terminating the process on failure.
func ProcessFile(p models.Parser, inputFile, outputFile string, validate bool, log *logrus.Logger) {
	p.SetLogger(log)

	if validate {
		log.Info("Validating report format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			log.Fatal(&parsererror.InvalidFormatError{
				FilePath:       inputFile,
				ExpectedFormat: "BASE 1 PENDIENTES DE CONCILIAR",
				Msg:            "no cardholder header found in the opening lines",
			})
		}
		log.Info("Validation successful.")
	}

	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		log.Fatalf("Error converting to CSV: %v", err)
	}
	log.Info("Conversion completed successfully!")
}
