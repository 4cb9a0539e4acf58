package batcher

import (
	stdjson "encoding/json"

	"github.com/objectsync/objectsync/pkg/contracts/iresponse"
	"github.com/objectsync/objectsync/pkg/executor"
)

// Batcher folds many object-level commands into batched wire exchanges and
// demultiplexes the per-item results back into independent outcomes.
type Batcher struct {
	executor *executor.Executor
	limit    int
}

// Outcome is the settled result of one input command, at the same index the
// command held in the input.
type Outcome struct {
	Response *iresponse.Response
	Err      error
}

type wireRequest struct {
	Method string      `json:"method"`
	Path   string      `json:"path"`
	Body   interface{} `json:"body,omitempty"`
}

type wireEnvelope struct {
	Requests []wireRequest `json:"requests"`
}

type wireError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

type wireResult struct {
	Success stdjson.RawMessage `json:"success,omitempty"`
	Error   *wireError      `json:"error,omitempty"`
}
