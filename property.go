package vapi

import "fmt"

// Getter reads a property value from its owner.
type Getter func(owner any) (any, error)

// Setter writes a property value on its owner.
type Setter func(owner, value any) error

// Deleter removes a property value from its owner.
type Deleter func(owner any) error

// Accessor is the behavior shared by Property and the annotated property
// wrappers. Anything that accepts an Accessor works identically with a
// plain Property, a RequiredProperty or a ProvidedProperty.
type Accessor interface {
	Get(owner any) (any, error)
	Set(owner, value any) error
	Delete(owner any) error
	Doc() string
}

// Property is a read/write/delete accessor triple with documentation. Any
// of the accessors may be nil; using a nil accessor returns the
// corresponding sentinel error instead of panicking.
type Property struct {
	fget Getter
	fset Setter
	fdel Deleter
	doc  string
}

// NewProperty creates a Property from the given accessors.
func NewProperty(fget Getter, fset Setter, fdel Deleter, doc string) *Property {
	return &Property{fget: fget, fset: fset, fdel: fdel, doc: doc}
}

// Get reads the property value from owner.
func (p *Property) Get(owner any) (any, error) {
	if p.fget == nil {
		return nil, fmt.Errorf("property get: %w", ErrUnreadableProperty)
	}
	return p.fget(owner)
}

// Set writes the property value on owner.
func (p *Property) Set(owner, value any) error {
	if p.fset == nil {
		return fmt.Errorf("property set: %w", ErrUnwritableProperty)
	}
	return p.fset(owner, value)
}

// Delete removes the property value from owner.
func (p *Property) Delete(owner any) error {
	if p.fdel == nil {
		return fmt.Errorf("property delete: %w", ErrUndeletableProperty)
	}
	return p.fdel(owner)
}

// Doc returns the property documentation string.
func (p *Property) Doc() string {
	return p.doc
}

// RequiredProperty is a Property carrying a Requirement record. It behaves
// exactly like the Property it embeds; the record is set at construction
// and never reassigned.
type RequiredProperty struct {
	Property
	req *Requirement
}

// NewRequiredProperty creates a RequiredProperty from a Requirement and the
// accessor triple.
func NewRequiredProperty(req *Requirement, fget Getter, fset Setter, fdel Deleter, doc string) *RequiredProperty {
	return &RequiredProperty{
		Property: Property{fget: fget, fset: fset, fdel: fdel, doc: doc},
		req:      req,
	}
}

// Requirement returns the attached Requirement record.
func (p *RequiredProperty) Requirement() *Requirement {
	return p.req
}

// ProvidedProperty is a Property carrying a Provision record. It behaves
// exactly like the Property it embeds; the record is set at construction
// and never reassigned.
type ProvidedProperty struct {
	Property
	prov *Provision
}

// NewProvidedProperty creates a ProvidedProperty from a Provision and the
// accessor triple.
func NewProvidedProperty(prov *Provision, fget Getter, fset Setter, fdel Deleter, doc string) *ProvidedProperty {
	return &ProvidedProperty{
		Property: Property{fget: fget, fset: fset, fdel: fdel, doc: doc},
		prov:     prov,
	}
}

// Provision returns the attached Provision record.
func (p *ProvidedProperty) Provision() *Provision {
	return p.prov
}
