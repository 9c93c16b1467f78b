package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("user already exists")

	// ErrInvalidTransition is returned when an order status update would
	// move the order backward or skip a step.
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// ValidationError reports a missing or malformed field in a request.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

func validationf(format string, args ...any) error {
	return ValidationError(fmt.Sprintf(format, args...))
}
