package store

import (
	"sync"

	"github.com/objectsync/objectsync/pkg/contracts/istore"
)

// Manager persists one distinguished object (current user, current
// installation, ...). It writes to exactly one primary backend and may read
// through to a legacy backend, migrating its record into the primary the
// first time it is seen.
type Manager struct {
	name    string
	primary istore.Storage
	legacy  istore.Storage
	mu      sync.Mutex
}

// FileStorage keeps the snapshot as a single JSON file.
type FileStorage struct {
	path string
}

// MemoryStorage keeps the snapshot in process memory only.
type MemoryStorage struct {
	snapshot *istore.Snapshot
}
