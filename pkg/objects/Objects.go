package objects

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/objectsync/objectsync/pkg/contracts/ioperation"
	"github.com/objectsync/objectsync/pkg/contracts/istore"
	"github.com/objectsync/objectsync/pkg/operations"
	"github.com/pkg/errors"
	"github.com/wI2L/jsondiff"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func New(className string) *Object {
	return &Object{
		ClassName: className,
		state:     make(map[string]interface{}),
		server:    []byte(`{}`),
		pending:   operations.NewOperationSet(),
		Created:   time.Now(),
		Updated:   time.Now(),
	}
}

// FromSnapshot revives an object from its durable snapshot.
func FromSnapshot(snapshot *istore.Snapshot) (*Object, error) {
	if snapshot == nil {
		return nil, errors.New("snapshot cannot be nil")
	}

	obj := New(snapshot.ClassName)
	obj.ID = snapshot.ObjectID
	obj.exists = true

	if len(snapshot.State) > 0 {
		if err := json.Unmarshal(snapshot.State, &obj.state); err != nil {
			return nil, errors.Wrap(err, "invalid snapshot state")
		}

		obj.server = append([]byte(nil), snapshot.State...)
	}

	return obj, nil
}

// Snapshot produces the durable representation of the object.
func (obj *Object) Snapshot() (*istore.Snapshot, error) {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	state, err := json.Marshal(obj.state)

	if err != nil {
		return nil, err
	}

	return &istore.Snapshot{
		ClassName: obj.ClassName,
		ObjectID:  obj.ID,
		State:     state,
		Current:   true,
	}, nil
}

func (obj *Object) Get(field string) interface{} {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	return obj.state[field]
}

func (obj *Object) State() map[string]interface{} {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	state := make(map[string]interface{}, len(obj.state))
	for field, value := range obj.state {
		state[field] = value
	}

	return state
}

func (obj *Object) Exists() bool {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	return obj.exists
}

// Dirty reports whether mutations are pending for the next save.
func (obj *Object) Dirty() bool {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	return !obj.pending.IsEmpty()
}

func (obj *Object) Set(field string, value interface{}) error {
	return obj.perform(field, operations.NewSet(value))
}

func (obj *Object) Unset(field string) error {
	return obj.perform(field, operations.NewDelete())
}

func (obj *Object) Increment(field string, amount float64) error {
	return obj.perform(field, operations.NewIncrement(amount))
}

func (obj *Object) AddToList(field string, items ...interface{}) error {
	return obj.perform(field, operations.NewAdd(items...))
}

func (obj *Object) AddUniqueToList(field string, items ...interface{}) error {
	return obj.perform(field, operations.NewAddUnique(items...))
}

func (obj *Object) RemoveFromList(field string, items ...interface{}) error {
	return obj.perform(field, operations.NewRemove(items...))
}

func (obj *Object) AddRelation(field string, targetClass string, pointers ...operations.Pointer) error {
	return obj.perform(field, operations.NewRelationAdd(targetClass, pointers...))
}

func (obj *Object) RemoveRelation(field string, targetClass string, pointers ...operations.Pointer) error {
	return obj.perform(field, operations.NewRelationRemove(targetClass, pointers...))
}

// perform queues the operation and moves the local estimate with it.
func (obj *Object) perform(field string, op ioperation.Operation) error {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	if err := obj.pending.Put(field, op); err != nil {
		return err
	}

	value, err := op.Apply(obj.state[field], field)

	if err != nil {
		return err
	}

	if value == nil {
		delete(obj.state, field)
	} else {
		obj.state[field] = value
	}

	return nil
}

// Diff compares the last server-confirmed encoding against a definition and
// records the changelog.
func (obj *Object) Diff(definition []byte) bool {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	server := obj.server

	if len(server) == 0 {
		server = []byte(`{}`)
	}

	obj.Changelog, _ = jsondiff.CompareJSON(server, definition)
	obj.changed = len(obj.Changelog) > 0

	return obj.changed
}

func (obj *Object) ChangeDetected() bool {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	return obj.changed
}

// Path is the object's relative API path.
func (obj *Object) Path() string {
	if obj.ID == "" {
		return fmt.Sprintf("/classes/%s", obj.ClassName)
	}

	return fmt.Sprintf("/classes/%s/%s", obj.ClassName, obj.ID)
}
