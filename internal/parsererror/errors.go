// Package parsererror defines the error types surfaced by the outer
// conversion layers. The core scanner itself never raises on malformed
// content; these cover the cases where the input source cannot be used at
// all.
package parsererror

import "fmt"

// InvalidFormatError reports an input file that does not look like the
// expected report format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// SourceError reports failure to obtain lines from the input source.
type SourceError struct {
	FilePath string
	Err      error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("cannot read report source '%s': %v", e.FilePath, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ConciliationError reports a failure while matching record piles.
type ConciliationError struct {
	Stage string
	Err   error
}

func (e *ConciliationError) Error() string {
	return fmt.Sprintf("conciliation failed during %s: %v", e.Stage, e.Err)
}

func (e *ConciliationError) Unwrap() error {
	return e.Err
}
