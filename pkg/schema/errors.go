package schema

import "fmt"

// Error codes for structured error reporting.
const (
	ErrCodeUnsupportedType = "UNSUPPORTED_INPUT_TYPE"
	ErrCodeInvalidLiteral  = "INVALID_LITERAL"
	ErrCodeValidation      = "VALIDATION_ERROR"
)

// ArgError is the structured error type for all input bridging operations.
type ArgError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	ActionUID string         `json:"action_uid,omitempty"`
	Input     string         `json:"input,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Cause     error          `json:"-"`
}

func (e *ArgError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("[%s] input %s: %s", e.Code, e.Input, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ArgError) Unwrap() error {
	return e.Cause
}

// NewError creates a new ArgError.
func NewError(code, message string) *ArgError {
	return &ArgError{Code: code, Message: message}
}

// NewErrorf creates a new ArgError with a formatted message.
func NewErrorf(code, format string, args ...any) *ArgError {
	return &ArgError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithAction attaches the action type UID to the error.
func (e *ArgError) WithAction(actionUID string) *ArgError {
	e.ActionUID = actionUID
	return e
}

// WithInput attaches the input name to the error.
func (e *ArgError) WithInput(name string) *ArgError {
	e.Input = name
	return e
}

// WithCause attaches an underlying cause.
func (e *ArgError) WithCause(err error) *ArgError {
	e.Cause = err
	return e
}

// WithDetails attaches key-value details.
func (e *ArgError) WithDetails(details map[string]any) *ArgError {
	e.Details = details
	return e
}
