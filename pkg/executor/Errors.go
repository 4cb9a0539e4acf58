package executor

import (
	"fmt"
	"github.com/pkg/errors"
)

// ErrCancelled marks a command cancelled before it settled. A cancelled
// command is not a failed one.
var ErrCancelled = errors.New("command cancelled")

// APIError is a permanent application-level failure reported by the server.
// It is never retried.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// TransientError is a failure eligible for retry: an I/O error or a server
// response explicitly marked temporary.
type TransientError struct {
	Message string
}

func (e *TransientError) Error() string {
	return e.Message
}
