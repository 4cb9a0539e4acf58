package objects

import (
	"sync"
	"time"

	"github.com/objectsync/objectsync/pkg/operations"
	"github.com/wI2L/jsondiff"
)

// Object is a remote-backed object mutated locally through the operation
// algebra. The state map is a best-effort local estimate; pending holds the
// coalesced not-yet-synchronized operations of the running save cycle.
type Object struct {
	ClassName string
	ID        string

	Changelog jsondiff.Patch

	state   map[string]interface{}
	server  []byte
	pending *operations.OperationSet

	exists  bool
	changed bool

	Created time.Time
	Updated time.Time

	mu sync.Mutex
}
