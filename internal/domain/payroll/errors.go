package payroll

import "errors"

var (
	ErrNotFound          = errors.New("payroll record not found")
	ErrInvalidTransition = errors.New("invalid payroll status transition")
)

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }
