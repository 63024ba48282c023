package llm

import "errors"

var (
	// ErrOllamaUnavailable indicates the Ollama server is unreachable.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the summarize call exceeded its deadline.
	ErrTimeout = errors.New("llm request timed out")

	// ErrBadStatus indicates Ollama answered with a non-200 status.
	ErrBadStatus = errors.New("unexpected ollama status")

	// ErrEmptyOutput indicates the model answered with nothing usable.
	ErrEmptyOutput = errors.New("empty llm output")
)

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrOllamaUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "STATUS"
	case errors.Is(err, ErrEmptyOutput):
		return "EMPTY"
	default:
		return "UNKNOWN"
	}
}
