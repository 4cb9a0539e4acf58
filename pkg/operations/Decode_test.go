package operations

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		verify   func(t *testing.T, decoded interface{})
		oldValue interface{}
		expected interface{}
	}{
		{
			name:     "Plain value is an implicit set",
			payload:  `"hello"`,
			oldValue: nil,
			expected: "hello",
		},
		{
			name:     "Plain object without tag is an implicit set",
			payload:  `{"nested":true}`,
			oldValue: "old",
			expected: map[string]interface{}{"nested": true},
		},
		{
			name:     "Delete",
			payload:  `{"__op":"Delete"}`,
			oldValue: "old",
			expected: nil,
		},
		{
			name:     "Increment",
			payload:  `{"__op":"Increment","amount":2}`,
			oldValue: 40.0,
			expected: 42.0,
		},
		{
			name:     "Add",
			payload:  `{"__op":"Add","objects":[1,2]}`,
			oldValue: []interface{}{0.0},
			expected: []interface{}{0.0, 1.0, 2.0},
		},
		{
			name:     "AddUnique",
			payload:  `{"__op":"AddUnique","objects":[1,2]}`,
			oldValue: []interface{}{1.0},
			expected: []interface{}{1.0, 2.0},
		},
		{
			name:     "Remove",
			payload:  `{"__op":"Remove","objects":[1]}`,
			oldValue: []interface{}{1.0, 2.0},
			expected: []interface{}{2.0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var raw interface{}
			assert.NoError(t, json.Unmarshal([]byte(tc.payload), &raw))

			op, err := Decode(raw)
			assert.NoError(t, err)

			value, err := op.Apply(tc.oldValue, "field")
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	var raw interface{}
	assert.NoError(t, json.Unmarshal([]byte(`{"__op":"Frobnicate"}`), &raw))

	op, err := Decode(raw)
	assert.Error(t, err)
	assert.Nil(t, op)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "Frobnicate", decodeErr.Tag)
}

// A malformed increment surfaces through the typed error taxonomy, like
// every other rejected payload.
func TestDecodeIncrementWithoutAmount(t *testing.T) {
	for _, payload := range []string{
		`{"__op":"Increment"}`,
		`{"__op":"Increment","amount":"three"}`,
	} {
		var raw interface{}
		assert.NoError(t, json.Unmarshal([]byte(payload), &raw))

		op, err := Decode(raw)
		assert.Error(t, err)
		assert.Nil(t, op)

		var invalid *InvalidOperationError
		assert.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Increment", invalid.Op)
	}
}

// A Batch replays its ordered relation edits and folds them into one net
// operation.
func TestDecodeBatchFolds(t *testing.T) {
	payload := `{
		"__op": "Batch",
		"ops": [
			{"__op":"AddRelation","objects":[
				{"__type":"Pointer","className":"Post","objectId":"p1"},
				{"__type":"Pointer","className":"Post","objectId":"p2"}
			]},
			{"__op":"RemoveRelation","objects":[
				{"__type":"Pointer","className":"Post","objectId":"p1"}
			]}
		]
	}`

	var raw interface{}
	assert.NoError(t, json.Unmarshal([]byte(payload), &raw))

	op, err := Decode(raw)
	assert.NoError(t, err)

	relation := op.(*RelationOperation)
	assert.Equal(t, []Pointer{{ClassName: "Post", ObjectID: "p2"}}, relation.Additions)
	assert.Equal(t, []Pointer{{ClassName: "Post", ObjectID: "p1"}}, relation.Removals)
}

func TestDecodePointerInvalid(t *testing.T) {
	var raw interface{}
	assert.NoError(t, json.Unmarshal([]byte(`{"__op":"AddRelation","objects":[{"className":"Post"}]}`), &raw))

	op, err := Decode(raw)
	assert.Error(t, err)
	assert.Nil(t, op)
}

func TestDecodeSet(t *testing.T) {
	payload := `{
		"score": {"__op":"Increment","amount":3},
		"name": "alice",
		"tags": {"__op":"Add","objects":["a"]}
	}`

	set, err := DecodeSet([]byte(payload))
	assert.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"name", "score", "tags"}, set.Fields())

	value, err := set.Get("score").Apply(1.0, "score")
	assert.NoError(t, err)
	assert.Equal(t, 4.0, value)
}
