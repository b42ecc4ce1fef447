package vapi

import (
	"fmt"
	"sort"
	"sync"
)

// Interface is a descriptor that collects the annotated members of one
// plugin interface under their declared names. It is the side table a
// validator introspects: it stores members and their metadata but performs
// no discovery and no enforcement itself.
//
// Safe for concurrent use.
type Interface struct {
	name string

	mu      sync.RWMutex
	members map[string]any
}

// NewInterface creates an empty interface descriptor with the given name.
func NewInterface(name string) *Interface {
	return &Interface{
		name:    name,
		members: make(map[string]any),
	}
}

// Name returns the interface name.
func (i *Interface) Name() string {
	return i.name
}

// AddMethod adds an annotated (or plain) method to the descriptor under its
// own name. Returns an error if a member with the same name already exists.
func (i *Interface) AddMethod(m *Method) error {
	if m.Name == "" {
		return fmt.Errorf("interface %q: %w: method name is required", i.name, ErrInvalidArgument)
	}
	return i.add(m.Name, m)
}

// AddProperty adds a property-shaped member under the given name. The
// accessor may be a plain *Property or one of the annotated wrappers.
// Returns an error if a member with the same name already exists.
func (i *Interface) AddProperty(name string, accessor Accessor) error {
	if name == "" {
		return fmt.Errorf("interface %q: %w: property name is required", i.name, ErrInvalidArgument)
	}
	return i.add(name, accessor)
}

func (i *Interface) add(name string, member any) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.members[name]; ok {
		return fmt.Errorf("interface %q: member %q: %w", i.name, name, ErrAlreadyRegistered)
	}
	i.members[name] = member
	return nil
}

// Member returns the member registered under name. The result is a *Method
// or an Accessor, depending on how it was added.
func (i *Interface) Member(name string) (any, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	m, ok := i.members[name]
	return m, ok
}

// MemberNames returns all member names in sorted order.
func (i *Interface) MemberNames() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	names := make([]string, 0, len(i.members))
	for name := range i.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Requirement returns the Requirement record attached to the named member,
// if the member exists and carries one.
func (i *Interface) Requirement(name string) (*Requirement, bool) {
	m, ok := i.Member(name)
	if !ok {
		return nil, false
	}
	return RequirementOf(m)
}

// Provision returns the Provision record attached to the named member, if
// the member exists and carries one.
func (i *Interface) Provision(name string) (*Provision, bool) {
	m, ok := i.Member(name)
	if !ok {
		return nil, false
	}
	return ProvisionOf(m)
}
