package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/objectsync/objectsync/pkg/contracts/istore"
	"github.com/pkg/errors"
)

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{
		path: path,
	}
}

func (fs *FileStorage) Save(snapshot *istore.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	data, err := json.Marshal(snapshot)

	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := os.WriteFile(fs.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	return nil
}

func (fs *FileStorage) Load() (*istore.Snapshot, error) {
	data, err := os.ReadFile(fs.path)

	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read snapshot file '%s': %w", fs.path, err)
	}

	snapshot := &istore.Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("invalid snapshot file format: %w", err)
	}

	return snapshot, nil
}

func (fs *FileStorage) Exists() (bool, error) {
	_, err := os.Stat(fs.path)

	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (fs *FileStorage) Delete() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot file: %w", err)
	}

	return nil
}
