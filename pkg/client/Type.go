package client

import (
	"net/http"

	"github.com/objectsync/objectsync/pkg/batcher"
	"github.com/objectsync/objectsync/pkg/configuration"
	"github.com/objectsync/objectsync/pkg/executor"
	"github.com/objectsync/objectsync/pkg/operations"
	"github.com/objectsync/objectsync/pkg/store"
	"github.com/objectsync/objectsync/pkg/version"
)

// Client assembles the sync layer: one executor, one batcher, the class
// registry and the current-object stores, all built from one configuration.
type Client struct {
	Config   *configuration.Configuration
	Http     *http.Client
	Executor *executor.Executor
	Batcher  *batcher.Batcher
	Registry *operations.Registry
	Version  *version.Version

	CurrentUser         *store.Manager
	CurrentInstallation *store.Manager

	Token string
}
