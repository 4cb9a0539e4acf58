package operations

import (
	"github.com/pkg/errors"
	"sync"
)

// Constructor revives a domain object from its class name and id.
type Constructor func(objectID string) interface{}

// Registry is the class-name to constructor table. It is the only open
// registry in this layer: populated once at startup by a single writer,
// read continuously afterwards.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

func (r *Registry) Register(className string, constructor Constructor) error {
	if className == "" {
		return errors.New("class name cannot be empty")
	}

	if constructor == nil {
		return errors.New("constructor cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.constructors[className]; ok {
		return errors.Errorf("class '%s' is already registered", className)
	}

	r.constructors[className] = constructor
	return nil
}

func (r *Registry) Known(className string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.constructors[className]
	return ok
}

func (r *Registry) Resolve(className string, objectID string) (interface{}, error) {
	r.mu.RLock()
	constructor, ok := r.constructors[className]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.Errorf("class '%s' is not registered", className)
	}

	return constructor(objectID), nil
}
