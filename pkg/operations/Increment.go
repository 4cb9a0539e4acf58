package operations

import (
	"github.com/objectsync/objectsync/pkg/contracts/ioperation"
	"github.com/objectsync/objectsync/pkg/static"
)

// IncrementOperation adds an amount to a numeric field.
type IncrementOperation struct {
	Amount float64
}

func NewIncrement(amount float64) *IncrementOperation {
	return &IncrementOperation{Amount: amount}
}

func (op *IncrementOperation) Kind() string {
	return static.OP_INCREMENT
}

func (op *IncrementOperation) MergeWithPrevious(previous ioperation.Operation) (ioperation.Operation, error) {
	if previous == nil {
		return op, nil
	}

	switch prev := previous.(type) {
	case *SetOperation:
		n, ok := toNumber(prev.Value)

		if !ok {
			return nil, errInvalidMerge(op.Kind(), prev.Kind())
		}

		return NewSet(n + op.Amount), nil
	case *DeleteOperation:
		return NewSet(op.Amount), nil
	case *IncrementOperation:
		return NewIncrement(prev.Amount + op.Amount), nil
	default:
		return nil, errInvalidMerge(op.Kind(), previous.Kind())
	}
}

func (op *IncrementOperation) Apply(old interface{}, field string) (interface{}, error) {
	if old == nil {
		return op.Amount, nil
	}

	n, ok := toNumber(old)

	if !ok {
		return nil, errInvalidApply(op.Kind(), field, old)
	}

	return n + op.Amount, nil
}

func (op *IncrementOperation) Encode() (interface{}, error) {
	return map[string]interface{}{
		"__op":   static.OP_INCREMENT,
		"amount": op.Amount,
	}, nil
}
