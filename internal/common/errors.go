package common

import (
	"errors"
	"fmt"
)

// Application error types
var (
	ErrBatchFull    = errors.New("batch capacity exceeded")
	ErrEmptyBatch   = errors.New("no images in the batch")
	ErrInvalidIndex = errors.New("image index out of range")
	ErrNoData       = errors.New("no file data provided")
)

// DecodeError identifies the batch item whose payload could not be decoded
type DecodeError struct {
	Index int
	Name  string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %q at position %d: %v", e.Name, e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new decode error
func NewDecodeError(index int, name string, err error) *DecodeError {
	return &DecodeError{
		Index: index,
		Name:  name,
		Err:   err,
	}
}

// ConversionError represents a failure of an external composition or save step
type ConversionError struct {
	Operation string
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion %s failed: %v", e.Operation, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new conversion error
func NewConversionError(operation string, err error) *ConversionError {
	return &ConversionError{
		Operation: operation,
		Err:       err,
	}
}

// PreferencesError represents preferences-related errors
type PreferencesError struct {
	Operation string
	Err       error
}

func (e *PreferencesError) Error() string {
	return fmt.Sprintf("preferences %s failed: %v", e.Operation, e.Err)
}

func (e *PreferencesError) Unwrap() error {
	return e.Err
}

// NewPreferencesError creates a new preferences error
func NewPreferencesError(operation string, err error) *PreferencesError {
	return &PreferencesError{
		Operation: operation,
		Err:       err,
	}
}
