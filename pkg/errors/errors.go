package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error with HTTP awareness. Details carries the
// individual violation messages when a request fails several checks at once.
type Error struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Status  int      `json:"status"`
	Details []string `json:"details,omitempty"`
	Err     error    `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for the scheduling failure modes. All constraint-related
// failures are client errors: the input, not the service, is unsatisfiable.
var (
	ErrMissingAvailability      = New("MISSING_INSTRUCTOR_AVAILABILITY", http.StatusBadRequest, "instructors missing in availability")
	ErrValidation               = New("VALIDATION_VIOLATION", http.StatusBadRequest, "validation failed")
	ErrNoFeasibleSchedule       = New("NO_FEASIBLE_SCHEDULE", http.StatusBadRequest, "No feasible schedule found.")
	ErrNoFeasibleRoomAssignment = New("NO_FEASIBLE_ROOM_ASSIGNMENT", http.StatusBadRequest, "no feasible room assignment")
	ErrSolver                   = New("SOLVER_ERROR", http.StatusInternalServerError, "solver execution failed")
	ErrInternal                 = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// WithDetails returns a copy of the error carrying per-violation messages.
func WithDetails(err *Error, details []string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	clone.Details = details
	return &clone
}
