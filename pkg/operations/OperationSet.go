package operations

import (
	"bytes"
	"github.com/objectsync/objectsync/pkg/contracts/ioperation"
)

// OperationSet holds the coalesced pending operations of one save cycle, one
// entry per field, in insertion order.
type OperationSet struct {
	fields []string
	ops    map[string]ioperation.Operation
}

func NewOperationSet() *OperationSet {
	return &OperationSet{
		fields: make([]string, 0),
		ops:    make(map[string]ioperation.Operation),
	}
}

// Put merges op onto whatever is already pending for the field. A field
// keeps its original insertion slot across repeated puts.
func (set *OperationSet) Put(field string, op ioperation.Operation) error {
	merged, err := op.MergeWithPrevious(set.ops[field])

	if err != nil {
		return err
	}

	if _, ok := set.ops[field]; !ok {
		set.fields = append(set.fields, field)
	}

	set.ops[field] = merged
	return nil
}

func (set *OperationSet) Get(field string) ioperation.Operation {
	return set.ops[field]
}

func (set *OperationSet) Fields() []string {
	fields := make([]string, len(set.fields))
	copy(fields, set.fields)
	return fields
}

func (set *OperationSet) Len() int {
	return len(set.fields)
}

func (set *OperationSet) IsEmpty() bool {
	return len(set.fields) == 0
}

// MergeSet folds a newer set over this one field-wise. Used when mutations
// queued during an in-flight save must be re-merged after that save fails.
func (set *OperationSet) MergeSet(newer *OperationSet) error {
	for _, field := range newer.fields {
		if err := set.Put(field, newer.ops[field]); err != nil {
			return err
		}
	}

	return nil
}

// Encode emits the transport structure of the whole set.
func (set *OperationSet) Encode() (map[string]interface{}, error) {
	encoded := make(map[string]interface{}, len(set.fields))

	for _, field := range set.fields {
		value, err := set.ops[field].Encode()

		if err != nil {
			return nil, err
		}

		encoded[field] = value
	}

	return encoded, nil
}

// ToJSON marshals the set with fields in insertion order, so the produced
// body is deterministic.
func (set *OperationSet) ToJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')

	for i, field := range set.fields {
		if i > 0 {
			buffer.WriteByte(',')
		}

		key, err := json.Marshal(field)

		if err != nil {
			return nil, err
		}

		value, err := set.ops[field].Encode()

		if err != nil {
			return nil, err
		}

		marshaled, err := json.Marshal(value)

		if err != nil {
			return nil, err
		}

		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(marshaled)
	}

	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// MarshalJSON lets a set be embedded directly in a command body.
func (set *OperationSet) MarshalJSON() ([]byte, error) {
	return set.ToJSON()
}
