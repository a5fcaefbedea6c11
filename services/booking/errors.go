package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the booking engine.
const (
	CodeNotFound        = "notFound"
	CodeInvalidSlot     = "invalidSlot"
	CodeDateUnavailable = "dateUnavailable"
	CodeConflict        = "conflictDetected"
	CodeProvider        = "paymentProviderError"
	CodeBadSignature    = "badSignature"
	CodeBadEvent        = "badEvent"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf returns the booking error code, or "" for foreign errors.
func CodeOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
