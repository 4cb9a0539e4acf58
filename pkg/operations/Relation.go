package operations

import (
	"github.com/objectsync/objectsync/pkg/contracts/ioperation"
	"github.com/objectsync/objectsync/pkg/static"
	"github.com/pkg/errors"
)

// Pointer identifies an object by value. Relations never hold a live
// instance of their parent or targets; a Pointer is revived through the
// class registry only when needed.
type Pointer struct {
	ClassName string `json:"className"`
	ObjectID  string `json:"objectId"`
}

func (p Pointer) Encode() map[string]interface{} {
	return map[string]interface{}{
		"__type":    static.TYPE_POINTER,
		"className": p.ClassName,
		"objectId":  p.ObjectID,
	}
}

func (p Pointer) Resolve(registry *Registry) (interface{}, error) {
	return registry.Resolve(p.ClassName, p.ObjectID)
}

// Relation is the local estimate of a many-to-many relation field: the set
// of targets known on this client.
type Relation struct {
	TargetClass string
	Objects     []Pointer
}

// MarshalJSON emits the relation's wire form, so an estimate holding a
// relation field snapshots and diffs like any other value.
func (r *Relation) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"__type":    static.TYPE_RELATION,
		"className": r.TargetClass,
		"objects":   encodePointers(r.Objects),
	})
}

func (r *Relation) Has(p Pointer) bool {
	for _, existing := range r.Objects {
		if existing == p {
			return true
		}
	}

	return false
}

// RelationOperation edits a relation field. Additions and removals are kept
// net of each other: adding then removing the same id cancels.
type RelationOperation struct {
	TargetClass string
	Additions   []Pointer
	Removals    []Pointer
}

func NewRelationAdd(targetClass string, pointers ...Pointer) *RelationOperation {
	return &RelationOperation{TargetClass: targetClass, Additions: unionPointers(nil, pointers)}
}

func NewRelationRemove(targetClass string, pointers ...Pointer) *RelationOperation {
	return &RelationOperation{TargetClass: targetClass, Removals: unionPointers(nil, pointers)}
}

func (op *RelationOperation) Kind() string {
	switch {
	case len(op.Removals) == 0:
		return static.OP_ADD_RELATION
	case len(op.Additions) == 0:
		return static.OP_REMOVE_RELATION
	default:
		return static.OP_BATCH
	}
}

func (op *RelationOperation) MergeWithPrevious(previous ioperation.Operation) (ioperation.Operation, error) {
	if previous == nil {
		return op, nil
	}

	prev, ok := previous.(*RelationOperation)

	if !ok {
		return nil, errInvalidMerge(op.Kind(), previous.Kind())
	}

	if prev.TargetClass != "" && op.TargetClass != "" && prev.TargetClass != op.TargetClass {
		return nil, &InvalidOperationError{
			Op:     op.Kind(),
			Reason: "relation operations target different classes",
		}
	}

	targetClass := op.TargetClass
	if targetClass == "" {
		targetClass = prev.TargetClass
	}

	return &RelationOperation{
		TargetClass: targetClass,
		Additions:   unionPointers(subtractPointers(prev.Additions, op.Removals), op.Additions),
		Removals:    unionPointers(subtractPointers(prev.Removals, op.Additions), op.Removals),
	}, nil
}

func (op *RelationOperation) Apply(old interface{}, field string) (interface{}, error) {
	if old == nil {
		return &Relation{
			TargetClass: op.TargetClass,
			Objects:     unionPointers(nil, op.Additions),
		}, nil
	}

	relation, ok := old.(*Relation)

	if !ok {
		return nil, errInvalidApply(op.Kind(), field, old)
	}

	return &Relation{
		TargetClass: relation.TargetClass,
		Objects:     unionPointers(subtractPointers(relation.Objects, op.Removals), op.Additions),
	}, nil
}

func (op *RelationOperation) Encode() (interface{}, error) {
	switch op.Kind() {
	case static.OP_ADD_RELATION:
		return map[string]interface{}{
			"__op":    static.OP_ADD_RELATION,
			"objects": encodePointers(op.Additions),
		}, nil
	case static.OP_REMOVE_RELATION:
		return map[string]interface{}{
			"__op":    static.OP_REMOVE_RELATION,
			"objects": encodePointers(op.Removals),
		}, nil
	default:
		return map[string]interface{}{
			"__op": static.OP_BATCH,
			"ops": []interface{}{
				map[string]interface{}{
					"__op":    static.OP_ADD_RELATION,
					"objects": encodePointers(op.Additions),
				},
				map[string]interface{}{
					"__op":    static.OP_REMOVE_RELATION,
					"objects": encodePointers(op.Removals),
				},
			},
		}, nil
	}
}

func encodePointers(pointers []Pointer) []interface{} {
	encoded := make([]interface{}, 0, len(pointers))

	for _, p := range pointers {
		encoded = append(encoded, p.Encode())
	}

	return encoded
}

func decodePointer(raw interface{}) (Pointer, error) {
	m, ok := raw.(map[string]interface{})

	if !ok {
		return Pointer{}, errors.Errorf("expected pointer, got %T", raw)
	}

	className, _ := m["className"].(string)
	objectID, _ := m["objectId"].(string)

	if className == "" || objectID == "" {
		return Pointer{}, errors.New("pointer is missing className or objectId")
	}

	return Pointer{ClassName: className, ObjectID: objectID}, nil
}

func unionPointers(base []Pointer, added []Pointer) []Pointer {
	combined := make([]Pointer, len(base), len(base)+len(added))
	copy(combined, base)

	for _, p := range added {
		found := false

		for _, existing := range combined {
			if existing == p {
				found = true
				break
			}
		}

		if !found {
			combined = append(combined, p)
		}
	}

	return combined
}

func subtractPointers(base []Pointer, removed []Pointer) []Pointer {
	filtered := make([]Pointer, 0, len(base))

	for _, p := range base {
		found := false

		for _, r := range removed {
			if r == p {
				found = true
				break
			}
		}

		if !found {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
