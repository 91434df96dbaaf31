package advisor

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by errors caused by a bad request.
var ErrInvalidInput = errors.New("invalid input")

// UpstreamError represents a failure of the language model provider
type UpstreamError struct {
	Op    string
	Cause error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to generate %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("failed to generate %s", e.Op)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
