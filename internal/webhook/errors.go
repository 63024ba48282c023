package webhook

import "errors"

var (
	// ErrNoEndpoint indicates no webhook URL is configured.
	ErrNoEndpoint = errors.New("no webhook endpoint configured")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("webhook request timed out")

	// ErrUnreachable indicates the endpoint could not be reached.
	ErrUnreachable = errors.New("webhook endpoint unreachable")
)
