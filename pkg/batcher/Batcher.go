package batcher

import (
	"context"
	"net/http"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/objectsync/objectsync/pkg/command"
	"github.com/objectsync/objectsync/pkg/contracts/iresponse"
	"github.com/objectsync/objectsync/pkg/executor"
	"github.com/objectsync/objectsync/pkg/logger"
	"github.com/objectsync/objectsync/pkg/static"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrBatchMismatch marks a batch response whose item count differs from the
// request count. The whole exchange is unusable, every outcome fails.
var ErrBatchMismatch = errors.New("batch response item count does not match request count")

func New(exec *executor.Executor, limit int) *Batcher {
	if limit <= 0 {
		limit = static.DEFAULT_BATCH_SIZE
	}

	return &Batcher{
		executor: exec,
		limit:    limit,
	}
}

// ExecuteAll settles every command and returns outcomes in input order. A
// single command bypasses the batch protocol; more than the cap is split
// into independent consecutive chunks.
func (b *Batcher) ExecuteAll(ctx context.Context, cmds []*command.Command) []Outcome {
	switch {
	case len(cmds) == 0:
		return nil
	case len(cmds) == 1:
		response, err := b.executor.Execute(ctx, cmds[0])
		return []Outcome{{Response: response, Err: err}}
	case len(cmds) > b.limit:
		return b.executeChunked(ctx, cmds)
	default:
		return b.executeBatch(ctx, cmds)
	}
}

// executeChunked partitions the commands at the cap and runs each chunk as
// its own exchange. Chunks do not affect each other's outcomes.
func (b *Batcher) executeChunked(ctx context.Context, cmds []*command.Command) []Outcome {
	outcomes := make([]Outcome, len(cmds))

	var wg sync.WaitGroup

	for start := 0; start < len(cmds); start += b.limit {
		end := start + b.limit
		if end > len(cmds) {
			end = len(cmds)
		}

		wg.Add(1)

		go func(start int, chunk []*command.Command) {
			defer wg.Done()

			for i, outcome := range b.ExecuteAll(ctx, chunk) {
				outcomes[start+i] = outcome
			}
		}(start, cmds[start:end])
	}

	wg.Wait()
	return outcomes
}

func (b *Batcher) executeBatch(ctx context.Context, cmds []*command.Command) []Outcome {
	outcomes := make([]Outcome, len(cmds))

	envelope := wireEnvelope{Requests: make([]wireRequest, 0, len(cmds))}

	for _, cmd := range cmds {
		envelope.Requests = append(envelope.Requests, wireRequest{
			Method: cmd.Method,
			Path:   cmd.Path,
			Body:   cmd.Body,
		})
	}

	batch := command.New(http.MethodPost, static.BATCH_PATH, envelope).WithToken(cmds[0].SessionToken)

	logger.Log.Debug("batch exchange", zap.Int("commands", len(cmds)))

	response, err := b.executor.Execute(ctx, batch)

	if err != nil {
		// The outer exchange failed or was cancelled: every pending
		// outcome settles uniformly.
		for i := range outcomes {
			outcomes[i] = Outcome{Response: response, Err: err}
		}

		return outcomes
	}

	var results []wireResult

	if err = json.Unmarshal(response.Data, &results); err != nil {
		err = errors.Wrap(err, "batch response is not an array")

		for i := range outcomes {
			outcomes[i] = Outcome{Err: err}
		}

		return outcomes
	}

	if len(results) != len(cmds) {
		logger.Log.Error("batch protocol mismatch",
			zap.Int("requested", len(cmds)),
			zap.Int("received", len(results)))

		for i := range outcomes {
			outcomes[i] = Outcome{Err: ErrBatchMismatch}
		}

		return outcomes
	}

	for i, result := range results {
		if result.Error != nil {
			outcomes[i] = Outcome{
				Response: &iresponse.Response{
					Error:            true,
					Code:             result.Error.Code,
					ErrorExplanation: result.Error.Message,
				},
				Err: &executor.APIError{Code: result.Error.Code, Message: result.Error.Message},
			}

			continue
		}

		outcomes[i] = Outcome{
			Response: &iresponse.Response{
				Success: true,
				Data:    result.Success,
			},
		}
	}

	return outcomes
}
