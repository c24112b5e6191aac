package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Selection errors
	ErrEmptySelection = errors.New("no sample columns selected")
	ErrUnknownColumn  = errors.New("column not present in table")

	// Load errors
	ErrLoadFailure     = errors.New("input could not be parsed as tabular data")
	ErrDatasetNotFound = errors.New("dataset not found")

	// Export errors
	ErrExportFailure = errors.New("artifact export failed")
)

// Error constructors with context
func NewUnknownColumnError(role, name string) error {
	return fmt.Errorf("%w: %s column %q", ErrUnknownColumn, role, name)
}

func NewLoadError(filename string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrLoadFailure, filename, err)
}

func NewExportError(format string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExportFailure, format, err)
}

// Error checking helpers
func IsSelectionError(err error) bool {
	return errors.Is(err, ErrEmptySelection) || errors.Is(err, ErrUnknownColumn)
}

func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoadFailure)
}
