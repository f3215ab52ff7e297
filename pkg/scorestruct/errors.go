package scorestruct

import (
	"errors"
	"fmt"
)

// ErrNoInningsFound indicates the source located no innings blocks at all.
// It differs from an innings whose rows could not be parsed, which is a
// valid, empty ParsedInnings.
var ErrNoInningsFound = errors.New("no innings found")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a supported source format.
var ErrInvalidFormat = errors.New("invalid source format")

// SourceError represents an error while reading a scorecard source.
type SourceError struct {
	Source    string
	Component string // "fixture", "workbook", "print_areas"
	Err       error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error in %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(source, component string, err error) *SourceError {
	return &SourceError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}
