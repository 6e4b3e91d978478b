package auth

import "errors"

var ErrInvalidCredentials = errors.New("invalid employee ID or password")

var ErrIPNotAllowed = errors.New("access denied from this IP address")

// AuthError reports a field-level problem with a login attempt.
type AuthError struct {
	Field  string
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }
