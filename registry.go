package vapi

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a concurrency-safe collection of interface descriptors,
// keyed by interface name. Plugin systems with several evolving interfaces
// register each descriptor once at startup and look them up from the
// validator side.
type Registry struct {
	mu     sync.RWMutex
	ifaces map[string]*Interface
	logger Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration events. The default is
// a no-op logger.
func WithLogger(l Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty interface registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		ifaces: make(map[string]*Interface),
		logger: &NoOpLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an interface descriptor to the registry. Returns an error
// if a descriptor with the same name is already registered.
func (r *Registry) Register(iface *Interface) error {
	if iface == nil || iface.Name() == "" {
		return fmt.Errorf("registry: %w: interface name is required", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := iface.Name()
	if _, ok := r.ifaces[name]; ok {
		return fmt.Errorf("registry: interface %q: %w", name, ErrAlreadyRegistered)
	}
	r.ifaces[name] = iface

	r.logger.Debug("Registered interface", map[string]interface{}{
		"name":    name,
		"members": len(iface.MemberNames()),
	})

	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	iface, ok := r.ifaces[name]
	return iface, ok
}

// List returns all registered interface names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ifaces))
	for name := range r.ifaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
