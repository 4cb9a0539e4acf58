package operations

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/objectsync/objectsync/pkg/contracts/ioperation"
	"github.com/objectsync/objectsync/pkg/static"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode turns one decoded JSON field value into an Operation. A plain value
// with no '__op' tag is an implicit Set. The variant set is closed: every
// recognized tag is handled here and anything else is a DecodeError.
func Decode(raw interface{}) (ioperation.Operation, error) {
	m, ok := raw.(map[string]interface{})

	if !ok {
		return NewSet(raw), nil
	}

	tag, ok := m["__op"].(string)

	if !ok {
		return NewSet(raw), nil
	}

	switch tag {
	case static.OP_DELETE:
		return NewDelete(), nil
	case static.OP_INCREMENT:
		amount, ok := toNumber(m["amount"])

		if !ok {
			return nil, &InvalidOperationError{
				Op:     static.OP_INCREMENT,
				Reason: fmt.Sprintf("amount is not a number: %v", m["amount"]),
			}
		}

		return NewIncrement(amount), nil
	case static.OP_ADD:
		objects, _ := toList(m["objects"])
		return NewAdd(objects...), nil
	case static.OP_ADD_UNIQUE:
		objects, _ := toList(m["objects"])
		return NewAddUnique(objects...), nil
	case static.OP_REMOVE:
		objects, _ := toList(m["objects"])
		return NewRemove(objects...), nil
	case static.OP_ADD_RELATION:
		pointers, err := decodePointers(m["objects"])

		if err != nil {
			return nil, err
		}

		return NewRelationAdd("", pointers...), nil
	case static.OP_REMOVE_RELATION:
		pointers, err := decodePointers(m["objects"])

		if err != nil {
			return nil, err
		}

		return NewRelationRemove("", pointers...), nil
	case static.OP_BATCH:
		return decodeBatch(m["ops"])
	default:
		return nil, &DecodeError{Tag: tag}
	}
}

// decodeBatch replays an ordered sequence of operations and folds them into
// one net operation via repeated merge.
func decodeBatch(raw interface{}) (ioperation.Operation, error) {
	ops, _ := toList(raw)

	var folded ioperation.Operation

	for _, rawOp := range ops {
		op, err := Decode(rawOp)

		if err != nil {
			return nil, err
		}

		if folded == nil {
			folded = op
			continue
		}

		folded, err = op.MergeWithPrevious(folded)

		if err != nil {
			return nil, err
		}
	}

	if folded == nil {
		return &RelationOperation{}, nil
	}

	return folded, nil
}

func decodePointers(raw interface{}) ([]Pointer, error) {
	list, _ := toList(raw)
	pointers := make([]Pointer, 0, len(list))

	for _, item := range list {
		p, err := decodePointer(item)

		if err != nil {
			return nil, err
		}

		pointers = append(pointers, p)
	}

	return pointers, nil
}

// DecodeSet decodes a JSON object of field name to operation. Fields are
// inserted in sorted order since JSON objects carry none.
func DecodeSet(data []byte) (*OperationSet, error) {
	var raw map[string]interface{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "operation set is not a JSON object")
	}

	fields := make([]string, 0, len(raw))
	for field := range raw {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	set := NewOperationSet()

	for _, field := range fields {
		op, err := Decode(raw[field])

		if err != nil {
			return nil, err
		}

		if err = set.Put(field, op); err != nil {
			return nil, err
		}
	}

	return set, nil
}
