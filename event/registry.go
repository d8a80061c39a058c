// event/registry.go
package event

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownKind is returned when a key has no registered event kind.
var ErrUnknownKind = errors.New("unknown event kind")

// Hook inspects a control object. When the object can emit the kind it
// returns an installer that wires the object's callback to fire.
type Hook func(obj any) (install func(fire Fire), ok bool)

// Kind identifies one category of user interaction, e.g. EVT_BUTTON.
// Kinds are compared by pointer.
type Kind struct {
	name string
	hook Hook
}

func (k *Kind) Name() string { return k.name }

func (k *Kind) String() string {
	if k == nil {
		return "<nil>"
	}
	return k.name
}

// Supports reports whether obj can emit this kind.
func (k *Kind) Supports(obj any) bool {
	if k == nil || k.hook == nil || obj == nil {
		return false
	}
	_, ok := k.hook(obj)
	return ok
}

// Attach wires obj to fire. It reports false when obj cannot emit the kind.
func (k *Kind) Attach(obj any, fire Fire) bool {
	if !k.Supports(obj) {
		return false
	}
	install, _ := k.hook(obj)
	install(fire)
	return true
}

// Registry maps EVT_* keys to kinds.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*Kind
}

func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*Kind)}
}

// Register adds or replaces the kind stored under name.
func (r *Registry) Register(name string, hook Hook) *Kind {
	k := &Kind{name: name, hook: hook}
	r.mu.Lock()
	r.kinds[name] = k
	r.mu.Unlock()
	return k
}

func (r *Registry) Lookup(name string) (*Kind, error) {
	r.mu.RLock()
	k, ok := r.kinds[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}
	return k, nil
}

// Names returns every registered key, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Default returns the registry holding the built-in kinds.
func Default() *Registry { return defaultRegistry }

// Register adds a kind to the default registry.
func Register(name string, hook Hook) *Kind { return defaultRegistry.Register(name, hook) }

// Lookup resolves name in the default registry.
func Lookup(name string) (*Kind, error) { return defaultRegistry.Lookup(name) }
