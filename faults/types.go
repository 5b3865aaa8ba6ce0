package faults

import "errors"

type ErrorCategory string

const (
	ValidationError ErrorCategory = "ValidationError"
	NotFoundError   ErrorCategory = "NotFoundError"
	ConflictError   ErrorCategory = "ConflictError"
	TransportError  ErrorCategory = "TransportError"
	OperationError  ErrorCategory = "OperationError"
	InternalError   ErrorCategory = "InternalError"
)

type TypedError struct {
	Category ErrorCategory
	Message  string
	Cause    error
}

func (e *TypedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" && e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return string(e.Category)
}

func (e *TypedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewTypedError(category ErrorCategory, message string, cause error) *TypedError {
	return &TypedError{
		Category: category,
		Message:  message,
		Cause:    cause,
	}
}

func IsCategory(err error, category ErrorCategory) bool {
	if err == nil {
		return false
	}

	var typedErr *TypedError
	if !errors.As(err, &typedErr) {
		return false
	}
	return typedErr.Category == category
}

// BareMessage reduces a failure to the plain message the container records in
// state and re-raises to callers. Typed errors contribute their message alone,
// without the cause chain.
func BareMessage(err error) string {
	if err == nil {
		return ""
	}

	var typedErr *TypedError
	if errors.As(err, &typedErr) && typedErr.Message != "" {
		return typedErr.Message
	}
	return err.Error()
}

// NewOperationError wraps a bare failure message so that Error() yields
// exactly the message, with no cause attached.
func NewOperationError(message string) *TypedError {
	return NewTypedError(OperationError, message, nil)
}
