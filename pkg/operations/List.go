package operations

import (
	"github.com/objectsync/objectsync/pkg/contracts/ioperation"
	"github.com/objectsync/objectsync/pkg/static"
)

// AddOperation appends items to a list field, duplicates allowed.
type AddOperation struct {
	Objects []interface{}
}

func NewAdd(objects ...interface{}) *AddOperation {
	return &AddOperation{Objects: copyList(objects)}
}

func (op *AddOperation) Kind() string {
	return static.OP_ADD
}

func (op *AddOperation) MergeWithPrevious(previous ioperation.Operation) (ioperation.Operation, error) {
	if previous == nil {
		return op, nil
	}

	switch prev := previous.(type) {
	case *DeleteOperation:
		value, _ := op.Apply(nil, "")
		return NewSet(value), nil
	case *SetOperation:
		value, err := op.Apply(prev.Value, "")

		if err != nil {
			return nil, errInvalidMerge(op.Kind(), prev.Kind())
		}

		return NewSet(value), nil
	case *AddOperation:
		return &AddOperation{Objects: append(copyList(prev.Objects), op.Objects...)}, nil
	default:
		return nil, errInvalidMerge(op.Kind(), previous.Kind())
	}
}

func (op *AddOperation) Apply(old interface{}, field string) (interface{}, error) {
	if old == nil {
		return copyList(op.Objects), nil
	}

	list, ok := toList(old)

	if !ok {
		return nil, errInvalidApply(op.Kind(), field, old)
	}

	return append(copyList(list), op.Objects...), nil
}

func (op *AddOperation) Encode() (interface{}, error) {
	return map[string]interface{}{
		"__op":    static.OP_ADD,
		"objects": copyList(op.Objects),
	}, nil
}

// AddUniqueOperation appends items to a list field skipping items already
// present.
type AddUniqueOperation struct {
	Objects []interface{}
}

func NewAddUnique(objects ...interface{}) *AddUniqueOperation {
	unique := make([]interface{}, 0, len(objects))

	for _, item := range objects {
		if !contains(unique, item) {
			unique = append(unique, item)
		}
	}

	return &AddUniqueOperation{Objects: unique}
}

func (op *AddUniqueOperation) Kind() string {
	return static.OP_ADD_UNIQUE
}

func (op *AddUniqueOperation) MergeWithPrevious(previous ioperation.Operation) (ioperation.Operation, error) {
	if previous == nil {
		return op, nil
	}

	switch prev := previous.(type) {
	case *DeleteOperation:
		value, _ := op.Apply(nil, "")
		return NewSet(value), nil
	case *SetOperation:
		value, err := op.Apply(prev.Value, "")

		if err != nil {
			return nil, errInvalidMerge(op.Kind(), prev.Kind())
		}

		return NewSet(value), nil
	case *AddUniqueOperation:
		combined := copyList(prev.Objects)

		for _, item := range op.Objects {
			if !contains(combined, item) {
				combined = append(combined, item)
			}
		}

		return &AddUniqueOperation{Objects: combined}, nil
	default:
		return nil, errInvalidMerge(op.Kind(), previous.Kind())
	}
}

func (op *AddUniqueOperation) Apply(old interface{}, field string) (interface{}, error) {
	if old == nil {
		return copyList(op.Objects), nil
	}

	list, ok := toList(old)

	if !ok {
		return nil, errInvalidApply(op.Kind(), field, old)
	}

	combined := copyList(list)

	for _, item := range op.Objects {
		if !contains(combined, item) {
			combined = append(combined, item)
		}
	}

	return combined, nil
}

func (op *AddUniqueOperation) Encode() (interface{}, error) {
	return map[string]interface{}{
		"__op":    static.OP_ADD_UNIQUE,
		"objects": copyList(op.Objects),
	}, nil
}

// RemoveOperation removes all occurrences of its items from a list field.
type RemoveOperation struct {
	Objects []interface{}
}

func NewRemove(objects ...interface{}) *RemoveOperation {
	return &RemoveOperation{Objects: copyList(objects)}
}

func (op *RemoveOperation) Kind() string {
	return static.OP_REMOVE
}

func (op *RemoveOperation) MergeWithPrevious(previous ioperation.Operation) (ioperation.Operation, error) {
	if previous == nil {
		return op, nil
	}

	switch prev := previous.(type) {
	case *DeleteOperation:
		value, _ := op.Apply(nil, "")
		return NewSet(value), nil
	case *SetOperation:
		value, err := op.Apply(prev.Value, "")

		if err != nil {
			return nil, errInvalidMerge(op.Kind(), prev.Kind())
		}

		return NewSet(value), nil
	case *RemoveOperation:
		combined := copyList(prev.Objects)

		for _, item := range op.Objects {
			if !contains(combined, item) {
				combined = append(combined, item)
			}
		}

		return &RemoveOperation{Objects: combined}, nil
	default:
		return nil, errInvalidMerge(op.Kind(), previous.Kind())
	}
}

func (op *RemoveOperation) Apply(old interface{}, field string) (interface{}, error) {
	if old == nil {
		return make([]interface{}, 0), nil
	}

	list, ok := toList(old)

	if !ok {
		return nil, errInvalidApply(op.Kind(), field, old)
	}

	filtered := make([]interface{}, 0, len(list))

	for _, existing := range list {
		if !contains(op.Objects, existing) {
			filtered = append(filtered, existing)
		}
	}

	return filtered, nil
}

func (op *RemoveOperation) Encode() (interface{}, error) {
	return map[string]interface{}{
		"__op":    static.OP_REMOVE,
		"objects": copyList(op.Objects),
	}, nil
}
