package executor

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/objectsync/objectsync/pkg/command"
	"github.com/objectsync/objectsync/pkg/contracts/iresponse"
	"github.com/objectsync/objectsync/pkg/logger"
	"github.com/objectsync/objectsync/pkg/network"
	"github.com/objectsync/objectsync/pkg/static"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func New(client *http.Client, api string, headers map[string]string, interval time.Duration) *Executor {
	copied := make(map[string]string, len(headers))
	for key, value := range headers {
		copied[key] = value
	}

	return &Executor{
		client:   client,
		api:      api,
		headers:  copied,
		interval: interval,
	}
}

// Execute runs one command to completion: transient failures are retried
// with exponential backoff (initial delay jittered up to 2x, doubling per
// attempt) until the command's retry budget runs out; permanent failures
// return at once; cancellation is checked before every send and before
// every scheduled retry.
func (e *Executor) Execute(ctx context.Context, cmd *command.Command) (*iresponse.Response, error) {
	data, err := encodeBody(cmd.Body)

	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(e.headers)+1)
	for key, value := range e.headers {
		headers[key] = value
	}

	if cmd.SessionToken != "" {
		headers[static.HEADER_SESSION_TOKEN] = cmd.SessionToken
	}

	var response *iresponse.Response

	operation := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}

		response = network.Send(ctx, e.client, e.api+cmd.Path, cmd.Method, data, headers)

		if response.Success {
			return nil
		}

		if response.Temporary {
			logger.Log.Debug("command failed, will retry",
				zap.String("id", cmd.ID.String()),
				zap.String("path", cmd.Path),
				zap.Int("status", response.HttpStatus))

			return &TransientError{Message: response.ErrorExplanation}
		}

		return backoff.Permanent(&APIError{Code: response.Code, Message: response.ErrorExplanation})
	}

	policy := retryPolicy(e.interval)

	err = backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, cmd.MaxRetries), ctx))

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrap(ErrCancelled, err.Error())
		}

		return response, err
	}

	return response, nil
}

// ExecuteAsync runs the command on its own goroutine and delivers the
// settled result on the returned channel.
func (e *Executor) ExecuteAsync(ctx context.Context, cmd *command.Command) <-chan Result {
	results := make(chan Result, 1)

	go func() {
		response, err := e.Execute(ctx, cmd)
		results <- Result{Response: response, Err: err}
		close(results)
	}()

	return results
}

// retryPolicy is the wait schedule between attempts: the base interval
// doubles per retry, each wait jittered around its base.
func retryPolicy(interval time.Duration) *backoff.ExponentialBackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = interval
	policy.RandomizationFactor = 1.0
	policy.Multiplier = 2.0
	policy.MaxElapsedTime = 0
	policy.Reset()

	return policy
}

func encodeBody(body interface{}) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		data, err := json.Marshal(v)

		if err != nil {
			return nil, errors.Wrap(err, "failed to encode command body")
		}

		return data, nil
	}
}
