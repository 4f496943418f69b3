package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Spawn and wait errors
const (
	// ErrCodeSpawnFailed indicates the OS refused to create the process.
	ErrCodeSpawnFailed ErrorCode = "SPAWN_FAILED"
	// ErrCodeNonZeroExit indicates the process terminated with a non-zero exit code.
	ErrCodeNonZeroExit ErrorCode = "NON_ZERO_EXIT"
	// ErrCodeWaitInterrupted indicates the wait for termination was interrupted or canceled.
	ErrCodeWaitInterrupted ErrorCode = "WAIT_INTERRUPTED"
	// ErrCodeTimeout indicates the invocation exceeded its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Input errors
const (
	// ErrCodeInvalidCommand indicates a malformed or empty command.
	ErrCodeInvalidCommand ErrorCode = "INVALID_COMMAND"
	// ErrCodeInvalidInput indicates invalid caller input.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeWaitInterrupted: true,
	ErrCodeTimeout:         true,
	ErrCodeSpawnFailed:     false,
	ErrCodeNonZeroExit:     false,
	ErrCodeInternal:        false,
}

// IsRetryableCode returns true if the error code indicates an error the
// caller may retry. The library itself never retries; the flag is advisory
// to callers, who retry the whole invocation or not at all.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
