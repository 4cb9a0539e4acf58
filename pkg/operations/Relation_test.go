package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationMarshalsWireForm(t *testing.T) {
	relation := &Relation{
		TargetClass: "Post",
		Objects:     []Pointer{{ClassName: "Post", ObjectID: "p1"}},
	}

	data, err := json.Marshal(relation)

	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"__type": "Relation",
		"className": "Post",
		"objects": [{"__type":"Pointer","className":"Post","objectId":"p1"}]
	}`, string(data))
}

func TestPointerEncode(t *testing.T) {
	encoded := Pointer{ClassName: "Post", ObjectID: "p1"}.Encode()

	assert.Equal(t, map[string]interface{}{
		"__type":    "Pointer",
		"className": "Post",
		"objectId":  "p1",
	}, encoded)
}
