package store

import (
	"github.com/objectsync/objectsync/pkg/contracts/istore"
	"github.com/objectsync/objectsync/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func NewManager(name string, primary istore.Storage, legacy istore.Storage) (*Manager, error) {
	if name == "" {
		return nil, errors.New("store name cannot be empty")
	}

	if primary == nil {
		return nil, errors.New("primary storage cannot be nil")
	}

	return &Manager{
		name:    name,
		primary: primary,
		legacy:  legacy,
	}, nil
}

// Set replaces the stored record. The primary is cleared first so at most
// one record exists at a time.
func (m *Manager) Set(snapshot *istore.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.primary.Delete(); err != nil {
		return errors.Wrapf(err, "failed to clear store '%s'", m.name)
	}

	snapshot.Current = true

	return m.primary.Save(snapshot)
}

// Get reads the primary, falling back to the legacy backend. A legacy
// record is migrated into the primary on first read: the primary write must
// confirm before the legacy record is deleted, so a failed migration loses
// nothing.
func (m *Manager) Get() (*istore.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot, err := m.primary.Load()

	if err != nil {
		return nil, err
	}

	if snapshot != nil {
		return snapshot, nil
	}

	if m.legacy == nil {
		return nil, nil
	}

	snapshot, err = m.legacy.Load()

	if err != nil || snapshot == nil {
		return nil, err
	}

	if err = m.primary.Save(snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to migrate store '%s'", m.name)
	}

	if err = m.legacy.Delete(); err != nil {
		logger.Log.Warn("migrated record left behind in legacy storage",
			zap.String("store", m.name),
			zap.Error(err))
	}

	logger.Log.Debug("migrated legacy record", zap.String("store", m.name))

	return snapshot, nil
}

// Exists mirrors Get's fallback order without the migration side effect.
func (m *Manager) Exists() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exists, err := m.primary.Exists()

	if err != nil || exists {
		return exists, err
	}

	if m.legacy == nil {
		return false, nil
	}

	return m.legacy.Exists()
}

// Delete removes the record from both backends so no stale current object
// survives in either location.
func (m *Manager) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.primary.Delete(); err != nil {
		return err
	}

	if m.legacy == nil {
		return nil
	}

	return m.legacy.Delete()
}
