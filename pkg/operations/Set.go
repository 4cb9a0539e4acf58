package operations

import (
	"github.com/objectsync/objectsync/pkg/contracts/ioperation"
	"github.com/objectsync/objectsync/pkg/static"
)

// SetOperation overwrites a field with a value. On the wire it is the
// implicit form: a plain JSON value with no kind tag.
type SetOperation struct {
	Value interface{}
}

func NewSet(value interface{}) *SetOperation {
	return &SetOperation{Value: normalizeValue(value)}
}

func (op *SetOperation) Kind() string {
	return static.OP_SET
}

// A set overrides any prior pending operation.
func (op *SetOperation) MergeWithPrevious(previous ioperation.Operation) (ioperation.Operation, error) {
	return op, nil
}

func (op *SetOperation) Apply(old interface{}, field string) (interface{}, error) {
	return op.Value, nil
}

func (op *SetOperation) Encode() (interface{}, error) {
	return op.Value, nil
}
