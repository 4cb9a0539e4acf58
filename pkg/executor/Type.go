package executor

import (
	"net/http"
	"time"

	"github.com/objectsync/objectsync/pkg/contracts/iresponse"
)

// Executor issues single commands against the API, retrying transient
// failures with jittered exponential backoff.
type Executor struct {
	client   *http.Client
	api      string
	headers  map[string]string
	interval time.Duration
}

// Result is the settled outcome of one asynchronously executed command.
type Result struct {
	Response *iresponse.Response
	Err      error
}
