package istore

import "encoding/json"

// Snapshot is the durable representation of one distinguished object.
type Snapshot struct {
	ClassName string          `json:"className"`
	ObjectID  string          `json:"objectId"`
	State     json.RawMessage `json:"state"`
	Current   bool            `json:"current"`
}

// Storage is a backend holding at most one snapshot. Load returns (nil, nil)
// when no record exists; Delete of a missing record is not an error.
type Storage interface {
	Save(snapshot *Snapshot) error
	Load() (*Snapshot, error)
	Exists() (bool, error)
	Delete() error
}
