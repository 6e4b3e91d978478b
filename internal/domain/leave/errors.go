package leave

import "errors"

var (
	ErrNotFound          = errors.New("leave request not found")
	ErrSequenceViolation = errors.New("approval step out of order")
	ErrAlreadyFinalized  = errors.New("leave request already finalized")
)

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }
