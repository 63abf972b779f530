package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified seqkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Contract reports whether the error stems from API misuse.
	Contract bool `json:"contract"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic contract detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Contract: IsContractCode(code),
	}
}

// --- Common Error Constructors ---

// EmptySequence creates a new AppError for a partial operation applied to no elements.
func EmptySequence(operation string) *AppError {
	return &AppError{
		Code: ErrCodeEmptySequence, Message: fmt.Sprintf("%s called on an empty sequence", operation),
		Details: map[string]any{"operation": operation},
	}
}

// AlreadyBuilt creates a new AppError for a Builder used after Build.
func AlreadyBuilt(operation string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyBuilt, Message: fmt.Sprintf("builder already built, cannot %s", operation),
		Contract: true, Details: map[string]any{"operation": operation},
	}
}

// OutOfRange creates a new AppError for an index past the end of a sequence.
func OutOfRange(index, length int) *AppError {
	return &AppError{
		Code: ErrCodeOutOfRange, Message: fmt.Sprintf("index %d out of range for sequence of length %d", index, length),
		Details: map[string]any{"index": index, "length": length},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// TypeMismatch creates a new AppError for a value whose type was not the expected one.
func TypeMismatch(want string, got any) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("expected %s, got %T", want, got),
		Contract: true, Details: map[string]any{"want": want, "got": fmt.Sprintf("%T", got)},
	}
}

// InvalidJSON creates a new AppError for a document that failed to decode.
func InvalidJSON(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInvalidJSON, Message: "document is not valid JSON",
		Cause: cause,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		Details: details,
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsCode reports whether err carries an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
