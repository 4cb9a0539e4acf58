package objects

import (
	"context"
	"net/http"
	"time"

	"github.com/objectsync/objectsync/pkg/batcher"
	"github.com/objectsync/objectsync/pkg/command"
	"github.com/objectsync/objectsync/pkg/executor"
	"github.com/objectsync/objectsync/pkg/logger"
	"github.com/objectsync/objectsync/pkg/operations"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Save transmits the pending operations and folds the server result into
// the local estimate. The pending set is snapshotted and cleared up front so
// mutations made while the save is in flight accumulate in a fresh set; on
// failure the snapshot is re-merged underneath whatever queued meanwhile.
func (obj *Object) Save(ctx context.Context, exec *executor.Executor, token string) error {
	if obj.dropNoopSave() {
		return nil
	}

	cmd, ops := obj.saveCommand(token)

	response, err := exec.Execute(ctx, cmd)

	if err != nil {
		obj.requeue(ops)
		return err
	}

	return obj.applySaveResult(response.Data)
}

// SaveAll saves many objects through one batched wire exchange per chunk.
// Each object settles independently; the returned slice maps 1:1 to objs.
func SaveAll(ctx context.Context, b *batcher.Batcher, token string, objs []*Object) []error {
	cmds := make([]*command.Command, len(objs))
	sets := make([]*operations.OperationSet, len(objs))

	for i, obj := range objs {
		cmds[i], sets[i] = obj.saveCommand(token)
	}

	outcomes := b.ExecuteAll(ctx, cmds)
	errs := make([]error, len(objs))

	for i, outcome := range outcomes {
		if outcome.Err != nil {
			objs[i].requeue(sets[i])
			errs[i] = outcome.Err
			continue
		}

		errs[i] = objs[i].applySaveResult(outcome.Response.Data)
	}

	return errs
}

// Fetch replaces the local estimate with the server state.
func (obj *Object) Fetch(ctx context.Context, exec *executor.Executor, token string) error {
	if obj.ID == "" {
		return errors.New("cannot fetch an object without an id")
	}

	cmd := command.New(http.MethodGet, obj.Path(), nil).WithToken(token)

	response, err := exec.Execute(ctx, cmd)

	if err != nil {
		return err
	}

	obj.mu.Lock()
	defer obj.mu.Unlock()

	state := make(map[string]interface{})

	if err = json.Unmarshal(response.Data, &state); err != nil {
		return errors.Wrap(err, "invalid object payload")
	}

	obj.fold(state)
	obj.state = state

	server, err := json.Marshal(state)

	if err != nil {
		return err
	}

	obj.server = server
	obj.exists = true
	obj.changed = false

	return nil
}

// Destroy deletes the object server-side.
func (obj *Object) Destroy(ctx context.Context, exec *executor.Executor, token string) error {
	if obj.ID == "" {
		return errors.New("cannot destroy an object without an id")
	}

	cmd := command.New(http.MethodDelete, obj.Path(), nil).WithToken(token)

	if _, err := exec.Execute(ctx, cmd); err != nil {
		return err
	}

	obj.mu.Lock()
	defer obj.mu.Unlock()

	obj.exists = false

	return nil
}

// dropNoopSave discards the pending set when the object already exists
// server-side and the local estimate still diffs clean against the last
// server-confirmed state, so redundant mutations cost no round trip.
func (obj *Object) dropNoopSave() bool {
	if !obj.Exists() || obj.ID == "" {
		return false
	}

	estimate, err := json.Marshal(obj.State())

	if err != nil {
		return false
	}

	if obj.Diff(estimate) {
		logger.Log.Debug("estimate diverged from confirmed state",
			zap.String("class", obj.ClassName),
			zap.Int("changes", len(obj.Changelog)))

		return false
	}

	obj.mu.Lock()
	defer obj.mu.Unlock()

	obj.pending = operations.NewOperationSet()

	return true
}

// saveCommand snapshots and clears the pending set and builds the command
// that transmits it.
func (obj *Object) saveCommand(token string) (*command.Command, *operations.OperationSet) {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	ops := obj.pending
	obj.pending = operations.NewOperationSet()

	method := http.MethodPut
	if obj.ID == "" {
		method = http.MethodPost
	}

	return command.New(method, obj.Path(), ops).WithToken(token), ops
}

// requeue puts a snapshotted set back under the operations queued since. A
// field whose snapshotted operation cannot merge under the newer one keeps
// the newer operation; every other snapshotted entry is restored.
func (obj *Object) requeue(ops *operations.OperationSet) {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	if err := ops.MergeSet(obj.pending); err == nil {
		obj.pending = ops
		return
	}

	for _, field := range ops.Fields() {
		if obj.pending.Get(field) != nil {
			continue
		}

		if err := obj.pending.Put(field, ops.Get(field)); err != nil {
			logger.Log.Warn("dropped a pending operation after save failure",
				zap.String("class", obj.ClassName),
				zap.String("field", field),
				zap.Error(err))
		}
	}
}

func (obj *Object) applySaveResult(data []byte) error {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	result := make(map[string]interface{})

	if len(data) > 0 {
		if err := json.Unmarshal(data, &result); err != nil {
			return errors.Wrap(err, "invalid save result payload")
		}
	}

	obj.fold(result)

	for field, value := range result {
		obj.state[field] = value
	}

	obj.exists = true
	obj.changed = false

	server, err := json.Marshal(obj.state)

	if err != nil {
		return err
	}

	obj.server = server

	return nil
}

// fold pulls the bookkeeping fields out of a server payload.
func (obj *Object) fold(payload map[string]interface{}) {
	if id, ok := payload["objectId"].(string); ok {
		obj.ID = id
		delete(payload, "objectId")
	}

	if created, ok := payload["createdAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			obj.Created = t
		}

		delete(payload, "createdAt")
	}

	if updated, ok := payload["updatedAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339, updated); err == nil {
			obj.Updated = t
		}

		delete(payload, "updatedAt")
	}
}
