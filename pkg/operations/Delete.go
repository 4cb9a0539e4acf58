package operations

import (
	"github.com/objectsync/objectsync/pkg/contracts/ioperation"
	"github.com/objectsync/objectsync/pkg/static"
)

// DeleteOperation unsets a field.
type DeleteOperation struct{}

func NewDelete() *DeleteOperation {
	return &DeleteOperation{}
}

func (op *DeleteOperation) Kind() string {
	return static.OP_DELETE
}

// Delete always wins going forward.
func (op *DeleteOperation) MergeWithPrevious(previous ioperation.Operation) (ioperation.Operation, error) {
	return op, nil
}

func (op *DeleteOperation) Apply(old interface{}, field string) (interface{}, error) {
	return nil, nil
}

func (op *DeleteOperation) Encode() (interface{}, error) {
	return map[string]interface{}{"__op": static.OP_DELETE}, nil
}
