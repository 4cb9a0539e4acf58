package operations

import (
	"github.com/objectsync/objectsync/pkg/contracts/ioperation"
	"github.com/stretchr/testify/assert"
	"testing"
)

// TestMerge exercises the merge table across every valid successor pair.
func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		op       ioperation.Operation
		previous ioperation.Operation
		oldValue interface{}
		expected interface{}
	}{
		{
			name:     "Set overrides set",
			op:       NewSet("b"),
			previous: NewSet("a"),
			oldValue: nil,
			expected: "b",
		},
		{
			name:     "Set overrides increment",
			op:       NewSet(7.0),
			previous: NewIncrement(3),
			oldValue: 100.0,
			expected: 7.0,
		},
		{
			name:     "Delete wins over set",
			op:       NewDelete(),
			previous: NewSet("a"),
			oldValue: "a",
			expected: nil,
		},
		{
			name:     "Delete wins over add",
			op:       NewDelete(),
			previous: NewAdd(1.0),
			oldValue: []interface{}{1.0},
			expected: nil,
		},
		{
			name:     "Increment onto nothing",
			op:       NewIncrement(2),
			previous: nil,
			oldValue: 10.0,
			expected: 12.0,
		},
		{
			name:     "Increment onto increment adds amounts",
			op:       NewIncrement(2),
			previous: NewIncrement(3),
			oldValue: 10.0,
			expected: 15.0,
		},
		{
			name:     "Increment onto numeric set folds into set",
			op:       NewIncrement(2),
			previous: NewSet(40.0),
			oldValue: nil,
			expected: 42.0,
		},
		{
			name:     "Increment onto delete becomes set",
			op:       NewIncrement(5),
			previous: NewDelete(),
			oldValue: 100.0,
			expected: 5.0,
		},
		{
			name:     "Add onto add keeps order",
			op:       NewAdd(1.0, 2.0),
			previous: NewAdd(3.0),
			oldValue: nil,
			expected: []interface{}{3.0, 1.0, 2.0},
		},
		{
			name:     "Add onto delete becomes set",
			op:       NewAdd(1.0),
			previous: NewDelete(),
			oldValue: []interface{}{9.0},
			expected: []interface{}{1.0},
		},
		{
			name:     "Add onto list set extends the list",
			op:       NewAdd(3.0),
			previous: NewSet([]interface{}{1.0, 2.0}),
			oldValue: nil,
			expected: []interface{}{1.0, 2.0, 3.0},
		},
		{
			name:     "AddUnique onto addUnique dedupes",
			op:       NewAddUnique(2.0, 3.0),
			previous: NewAddUnique(1.0, 2.0),
			oldValue: nil,
			expected: []interface{}{1.0, 2.0, 3.0},
		},
		{
			name:     "Remove onto remove unions",
			op:       NewRemove(2.0),
			previous: NewRemove(1.0),
			oldValue: []interface{}{1.0, 2.0, 3.0},
			expected: []interface{}{3.0},
		},
		{
			name:     "Remove onto delete becomes empty set",
			op:       NewRemove(1.0),
			previous: NewDelete(),
			oldValue: []interface{}{1.0},
			expected: []interface{}{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			merged, err := tc.op.MergeWithPrevious(tc.previous)
			assert.NoError(t, err)

			value, err := merged.Apply(tc.oldValue, "field")
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

// TestMergeInvalid covers successor pairs the algebra rejects.
func TestMergeInvalid(t *testing.T) {
	tests := []struct {
		name     string
		op       ioperation.Operation
		previous ioperation.Operation
	}{
		{
			name:     "Add onto increment",
			op:       NewAdd(1.0),
			previous: NewIncrement(1),
		},
		{
			name:     "Increment onto add",
			op:       NewIncrement(1),
			previous: NewAdd(1.0),
		},
		{
			name:     "Increment onto non-numeric set",
			op:       NewIncrement(1),
			previous: NewSet("nan"),
		},
		{
			name:     "Add onto scalar set",
			op:       NewAdd(1.0),
			previous: NewSet("scalar"),
		},
		{
			name:     "AddUnique onto add",
			op:       NewAddUnique(1.0),
			previous: NewAdd(1.0),
		},
		{
			name:     "Relation add onto set",
			op:       NewRelationAdd("Post", Pointer{ClassName: "Post", ObjectID: "p1"}),
			previous: NewSet("x"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			merged, err := tc.op.MergeWithPrevious(tc.previous)
			assert.Error(t, err)
			assert.Nil(t, merged)

			var invalid *InvalidOperationError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

// TestMergeApplyConsistency pins the law merge-then-apply == apply-then-apply
// for representative successor pairs.
func TestMergeApplyConsistency(t *testing.T) {
	tests := []struct {
		name     string
		op       ioperation.Operation
		previous ioperation.Operation
		oldValue interface{}
	}{
		{"Increment after increment", NewIncrement(2), NewIncrement(3), 10.0},
		{"Increment after set", NewIncrement(2), NewSet(40.0), 1.0},
		{"Add after add", NewAdd(4.0), NewAdd(3.0), []interface{}{1.0, 2.0}},
		{"Add after set", NewAdd(3.0), NewSet([]interface{}{1.0}), nil},
		{"AddUnique after addUnique", NewAddUnique(1.0, 5.0), NewAddUnique(1.0), []interface{}{2.0}},
		{"Remove after remove", NewRemove(2.0), NewRemove(1.0), []interface{}{1.0, 2.0, 3.0}},
		{"Set after anything", NewSet("v"), NewIncrement(2), 3.0},
		{"Delete after set", NewDelete(), NewSet("v"), "old"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			merged, err := tc.op.MergeWithPrevious(tc.previous)
			assert.NoError(t, err)

			mergedResult, err := merged.Apply(tc.oldValue, "field")
			assert.NoError(t, err)

			intermediate, err := tc.previous.Apply(tc.oldValue, "field")
			assert.NoError(t, err)

			sequential, err := tc.op.Apply(intermediate, "field")
			assert.NoError(t, err)

			assert.Equal(t, sequential, mergedResult)
		})
	}
}

// Absorbing elements: Delete and Set swallow every predecessor.
func TestAbsorbingOperations(t *testing.T) {
	predecessors := []ioperation.Operation{
		nil,
		NewSet("x"),
		NewDelete(),
		NewIncrement(1),
		NewAdd(1.0),
		NewAddUnique(1.0),
		NewRemove(1.0),
		NewRelationAdd("Post", Pointer{ClassName: "Post", ObjectID: "p1"}),
	}

	for _, previous := range predecessors {
		deleted, err := NewDelete().MergeWithPrevious(previous)
		assert.NoError(t, err)
		assert.IsType(t, &DeleteOperation{}, deleted)

		set, err := NewSet("v").MergeWithPrevious(previous)
		assert.NoError(t, err)
		assert.IsType(t, &SetOperation{}, set)
		assert.Equal(t, "v", set.(*SetOperation).Value)
	}
}

// Pins the canonical list form: a typed slice Set operand behaves exactly
// like a raw []interface{} one.
func TestMergeAddOntoArraySet(t *testing.T) {
	typed, err := NewAdd(3.0).MergeWithPrevious(NewSet([]float64{1.0, 2.0}))
	assert.NoError(t, err)

	raw, err := NewAdd(3.0).MergeWithPrevious(NewSet([]interface{}{1.0, 2.0}))
	assert.NoError(t, err)

	typedValue, err := typed.Apply(nil, "field")
	assert.NoError(t, err)

	rawValue, err := raw.Apply(nil, "field")
	assert.NoError(t, err)

	assert.Equal(t, rawValue, typedValue)
	assert.Equal(t, []interface{}{1.0, 2.0, 3.0}, rawValue)
}

func TestRelationMergeCancels(t *testing.T) {
	post := Pointer{ClassName: "Post", ObjectID: "p1"}
	other := Pointer{ClassName: "Post", ObjectID: "p2"}

	added := NewRelationAdd("Post", post, other)
	removed := NewRelationRemove("Post", post)

	merged, err := removed.MergeWithPrevious(added)
	assert.NoError(t, err)

	relation := merged.(*RelationOperation)
	assert.Equal(t, []Pointer{other}, relation.Additions)
	assert.Equal(t, []Pointer{post}, relation.Removals)

	value, err := merged.Apply(nil, "likes")
	assert.NoError(t, err)
	assert.Equal(t, []Pointer{other}, value.(*Relation).Objects)
}

func TestRelationApplyToExisting(t *testing.T) {
	p1 := Pointer{ClassName: "Post", ObjectID: "p1"}
	p2 := Pointer{ClassName: "Post", ObjectID: "p2"}

	existing := &Relation{TargetClass: "Post", Objects: []Pointer{p1}}

	value, err := NewRelationAdd("Post", p2).Apply(existing, "likes")
	assert.NoError(t, err)
	assert.Equal(t, []Pointer{p1, p2}, value.(*Relation).Objects)

	value, err = NewRelationRemove("Post", p1).Apply(value, "likes")
	assert.NoError(t, err)
	assert.Equal(t, []Pointer{p2}, value.(*Relation).Objects)
}
