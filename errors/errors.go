package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type for process invocation failures.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the whole invocation can be retried by the caller.
	Retryable bool `json:"retryable"`
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

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

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

// --- Common Error Constructors ---

// SpawnFailed creates a new AppError for a process the OS refused to create,
// such as executable not found or permission denied.
func SpawnFailed(name string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeSpawnFailed, Message: fmt.Sprintf("Failed to start process %q.", name),
		Retryable: false, Cause: cause,
		Details: map[string]any{"command": name},
	}
}

// NonZeroExit creates a new AppError for a process that terminated with a
// non-zero exit code. The message names the process and the code; the full
// captured output, when available, travels in the details.
func NonZeroExit(name string, exitCode int) *AppError {
	return &AppError{
		Code: ErrCodeNonZeroExit, Message: fmt.Sprintf("Process '%s' terminated with exit code=%d", name, exitCode),
		Retryable: false,
		Details:   map[string]any{"command": name, "exit_code": exitCode},
	}
}

// Verification creates a new AppError for a failed exit-status verification.
// The caller-supplied diagnostic is followed by the full captured output so
// the failure can be diagnosed postmortem.
func Verification(message, output string, exitCode int) *AppError {
	return &AppError{
		Code: ErrCodeNonZeroExit, Message: message + "\n" + output,
		Retryable: false,
		Details:   map[string]any{"exit_code": exitCode},
	}
}

// WaitInterrupted creates a new AppError for a wait that was canceled before
// the process terminated. It flows through the same error channel as read
// failures instead of being lost.
func WaitInterrupted(cause error) *AppError {
	return &AppError{
		Code: ErrCodeWaitInterrupted, Message: "Interrupted while waiting for the process to terminate.",
		Retryable: true, Cause: cause,
	}
}

// Timeout creates a new AppError for an invocation that exceeded its deadline.
func Timeout(name string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("Process %q did not finish in time.", name),
		Retryable: true,
		Details:   map[string]any{"command": name},
	}
}

// InvalidCommand creates a new AppError for a malformed or empty command.
func InvalidCommand(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidCommand, Message: fmt.Sprintf("Invalid command: %s", reason),
		Retryable: false,
	}
}

// Validation creates a new AppError for invalid caller input.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Retryable: false, Cause: cause,
	}
}
