package llm

import "errors"

var (
	// ErrQuotaExceeded indicates the provider rejected the call with HTTP 429.
	// Retryable later by a fresh user action, never automatically.
	ErrQuotaExceeded = errors.New("provider quota exceeded")

	// ErrProviderUnavailable indicates the provider endpoint is unreachable.
	ErrProviderUnavailable = errors.New("provider unreachable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the provider response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")
)
