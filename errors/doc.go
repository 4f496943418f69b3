// Package errors provides structured error handling for process
// invocations. It implements error types with machine-readable codes and
// retryable detection so callers can distinguish spawn failures, non-zero
// exits, and interrupted waits without string matching.
package errors
