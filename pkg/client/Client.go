package client

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/objectsync/objectsync/pkg/batcher"
	"github.com/objectsync/objectsync/pkg/configuration"
	"github.com/objectsync/objectsync/pkg/executor"
	"github.com/objectsync/objectsync/pkg/objects"
	"github.com/objectsync/objectsync/pkg/operations"
	"github.com/objectsync/objectsync/pkg/static"
	"github.com/objectsync/objectsync/pkg/store"
	"github.com/pkg/errors"
)

func New(conf *configuration.Configuration) (*Client, error) {
	if conf == nil {
		return nil, errors.New("configuration cannot be nil")
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: conf.APITimeoutDuration()}

	headers := map[string]string{
		static.HEADER_APPLICATION_ID: conf.ApplicationID,
	}

	if conf.ClientKey != "" {
		headers[static.HEADER_CLIENT_KEY] = conf.ClientKey
	}

	exec := executor.New(httpClient, conf.API, headers, conf.RetryIntervalDuration())

	if !conf.InMemory {
		for _, dir := range static.STRUCTURE_CLIENT {
			if err := os.MkdirAll(filepath.Join(conf.RootDir, dir), 0750); err != nil {
				return nil, errors.Wrap(err, "failed to create client directory structure")
			}
		}
	}

	currentUser, err := newStore(conf, static.STORE_CURRENT_USER)

	if err != nil {
		return nil, err
	}

	currentInstallation, err := newStore(conf, static.STORE_CURRENT_INSTALLATION)

	if err != nil {
		return nil, err
	}

	registry := operations.NewRegistry()

	for _, className := range []string{static.CLASS_USER, static.CLASS_INSTALLATION, static.CLASS_SESSION} {
		name := className

		err = registry.Register(name, func(objectID string) interface{} {
			obj := objects.New(name)
			obj.ID = objectID
			return obj
		})

		if err != nil {
			return nil, err
		}
	}

	return &Client{
		Config:              conf,
		Http:                httpClient,
		Executor:            exec,
		Batcher:             batcher.New(exec, conf.BatchSize),
		Registry:            registry,
		CurrentUser:         currentUser,
		CurrentInstallation: currentInstallation,
	}, nil
}

func newStore(conf *configuration.Configuration, name string) (*store.Manager, error) {
	if conf.InMemory {
		return store.NewManager(name, store.NewMemoryStorage(), nil)
	}

	primary := store.NewFileStorage(filepath.Join(conf.RootDir, static.STOREDIR, name+".json"))
	legacy := store.NewFileStorage(filepath.Join(conf.RootDir, static.STOREDIR, static.LEGACYDIR, name))

	return store.NewManager(name, primary, legacy)
}

// Become attaches a session token to every subsequent command.
func (c *Client) Become(token string) {
	c.Token = token
}

// Save transmits an object's pending operations. When the saved object is a
// designated current object its persisted snapshot is refreshed with the
// resulting server state.
func (c *Client) Save(ctx context.Context, obj *objects.Object) error {
	if err := obj.Save(ctx, c.Executor, c.Token); err != nil {
		return err
	}

	return c.refreshCurrent(obj)
}

// SaveAll saves many objects through the batch executor. Outcomes map 1:1
// to objs.
func (c *Client) SaveAll(ctx context.Context, objs []*objects.Object) []error {
	errs := objects.SaveAll(ctx, c.Batcher, c.Token, objs)

	for i, err := range errs {
		if err == nil {
			if err = c.refreshCurrent(objs[i]); err != nil {
				errs[i] = err
			}
		}
	}

	return errs
}

func (c *Client) Fetch(ctx context.Context, obj *objects.Object) error {
	return obj.Fetch(ctx, c.Executor, c.Token)
}

// Destroy deletes the object server-side and drops it from its
// current-object store when it was the designated one.
func (c *Client) Destroy(ctx context.Context, obj *objects.Object) error {
	if err := obj.Destroy(ctx, c.Executor, c.Token); err != nil {
		return err
	}

	manager := c.managerFor(obj.ClassName)

	if manager == nil {
		return nil
	}

	snapshot, err := manager.Get()

	if err != nil || snapshot == nil || snapshot.ObjectID != obj.ID {
		return err
	}

	return manager.Delete()
}

func (c *Client) SetCurrentUser(obj *objects.Object) error {
	snapshot, err := obj.Snapshot()

	if err != nil {
		return err
	}

	return c.CurrentUser.Set(snapshot)
}

// GetCurrentUser revives the persisted current user, (nil, nil) when none
// is stored.
func (c *Client) GetCurrentUser() (*objects.Object, error) {
	snapshot, err := c.CurrentUser.Get()

	if err != nil || snapshot == nil {
		return nil, err
	}

	return objects.FromSnapshot(snapshot)
}

func (c *Client) ClearCurrentUser() error {
	return c.CurrentUser.Delete()
}

func (c *Client) managerFor(className string) *store.Manager {
	switch className {
	case static.CLASS_USER:
		return c.CurrentUser
	case static.CLASS_INSTALLATION:
		return c.CurrentInstallation
	default:
		return nil
	}
}

// refreshCurrent updates the persisted snapshot when the object is the
// stored current one.
func (c *Client) refreshCurrent(obj *objects.Object) error {
	manager := c.managerFor(obj.ClassName)

	if manager == nil {
		return nil
	}

	snapshot, err := manager.Get()

	if err != nil || snapshot == nil || snapshot.ObjectID != obj.ID {
		return err
	}

	refreshed, err := obj.Snapshot()

	if err != nil {
		return err
	}

	return manager.Set(refreshed)
}
