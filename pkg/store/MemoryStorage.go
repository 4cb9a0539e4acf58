package store

import (
	"github.com/objectsync/objectsync/pkg/contracts/istore"
	"github.com/pkg/errors"
)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (ms *MemoryStorage) Save(snapshot *istore.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	copied := *snapshot
	ms.snapshot = &copied

	return nil
}

func (ms *MemoryStorage) Load() (*istore.Snapshot, error) {
	if ms.snapshot == nil {
		return nil, nil
	}

	copied := *ms.snapshot
	return &copied, nil
}

func (ms *MemoryStorage) Exists() (bool, error) {
	return ms.snapshot != nil, nil
}

func (ms *MemoryStorage) Delete() error {
	ms.snapshot = nil
	return nil
}
