// Package manifest serializes interface descriptors to and from a
// declarative document format, so the version and capability metadata an
// interface author annotates in code can be exported for plugin manifests,
// documentation, or offline validation tooling.
//
// Only metadata crosses the boundary: callables and accessors are not
// serialized, and a descriptor rebuilt from a document is metadata-only.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/plugindev/vapi"
)

// Member kinds used in documents.
const (
	KindMethod   = "method"
	KindProperty = "property"
)

// Document is the serializable form of one interface descriptor.
type Document struct {
	Interface string   `json:"interface" yaml:"interface"`
	Members   []Member `json:"members" yaml:"members"`
}

// Member is the serializable form of one annotated member.
type Member struct {
	Name     string    `json:"name" yaml:"name"`
	Kind     string    `json:"kind" yaml:"kind"`
	Doc      string    `json:"doc,omitempty" yaml:"doc,omitempty"`
	Requires *Requires `json:"requires,omitempty" yaml:"requires,omitempty"`
	Provides *Provides `json:"provides,omitempty" yaml:"provides,omitempty"`
}

// Requires mirrors a vapi.Requirement record. A nil Caps slice means the
// requirement is unconditional.
type Requires struct {
	Since int      `json:"since" yaml:"since"`
	Caps  []string `json:"caps,omitempty" yaml:"caps,omitempty"`
}

// Provides mirrors a vapi.Provision record.
type Provides struct {
	Since int `json:"since" yaml:"since"`
}

// FromInterface snapshots the metadata of a descriptor into a Document.
// Members appear in sorted name order; members without annotations are
// included with empty Requires/Provides so the document lists the full
// surface.
func FromInterface(iface *vapi.Interface) *Document {
	doc := &Document{Interface: iface.Name()}

	for _, name := range iface.MemberNames() {
		raw, ok := iface.Member(name)
		if !ok {
			continue
		}

		m := Member{Name: name, Kind: kindOf(raw)}
		if acc, ok := raw.(vapi.Accessor); ok {
			m.Doc = acc.Doc()
		}
		if req, ok := vapi.RequirementOf(raw); ok {
			m.Requires = &Requires{Since: req.Since(), Caps: req.Caps().Names()}
		}
		if prov, ok := vapi.ProvisionOf(raw); ok {
			m.Provides = &Provides{Since: prov.Since()}
		}

		doc.Members = append(doc.Members, m)
	}

	return doc
}

func kindOf(member any) string {
	if _, ok := member.(vapi.Accessor); ok {
		return KindProperty
	}
	return KindMethod
}

// Encode renders the document as YAML.
func (d *Document) Encode() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("manifest encode: %w", err)
	}
	return data, nil
}

// Decode parses a YAML document and validates its member kinds.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest decode: %w", err)
	}
	if doc.Interface == "" {
		return nil, fmt.Errorf("manifest decode: interface name is required")
	}
	for _, m := range doc.Members {
		if m.Name == "" {
			return nil, fmt.Errorf("manifest decode: member name is required")
		}
		if m.Kind != KindMethod && m.Kind != KindProperty {
			return nil, fmt.Errorf("manifest decode: member %q: unknown kind %q", m.Name, m.Kind)
		}
	}
	return &doc, nil
}

// ToInterface rebuilds a metadata-only descriptor from the document. Methods
// carry nil funcs and properties nil accessors; the result is suitable for
// introspection and validation but not for invocation.
func (d *Document) ToInterface() (*vapi.Interface, error) {
	iface := vapi.NewInterface(d.Interface)

	for _, m := range d.Members {
		switch m.Kind {
		case KindMethod:
			method := vapi.NewMethod(m.Name, nil)
			if err := annotateMethod(method, m); err != nil {
				return nil, err
			}
			if err := iface.AddMethod(method); err != nil {
				return nil, fmt.Errorf("manifest: %w", err)
			}
		case KindProperty:
			acc, err := buildProperty(m)
			if err != nil {
				return nil, err
			}
			if err := iface.AddProperty(m.Name, acc); err != nil {
				return nil, fmt.Errorf("manifest: %w", err)
			}
		default:
			return nil, fmt.Errorf("manifest: member %q: unknown kind %q", m.Name, m.Kind)
		}
	}

	return iface, nil
}

func annotateMethod(method *vapi.Method, m Member) error {
	if m.Requires != nil {
		annotate, err := vapi.Require(requireOptions(m.Requires)...)
		if err != nil {
			return fmt.Errorf("manifest: member %q: %w", m.Name, err)
		}
		annotate(method)
	}
	if m.Provides != nil {
		annotate, err := vapi.Provide(vapi.Since(m.Provides.Since))
		if err != nil {
			return fmt.Errorf("manifest: member %q: %w", m.Name, err)
		}
		annotate(method)
	}
	return nil
}

// buildProperty rebuilds a property member. A property document can carry a
// requirement or a provision but not both, since the wrapper types carry
// exactly one record each.
func buildProperty(m Member) (vapi.Accessor, error) {
	if m.Requires != nil && m.Provides != nil {
		return nil, fmt.Errorf("manifest: member %q: property cannot carry both requires and provides", m.Name)
	}
	switch {
	case m.Requires != nil:
		return vapi.NewRequiredProperty(requirementFrom(m.Requires), nil, nil, nil, m.Doc), nil
	case m.Provides != nil:
		return vapi.NewProvidedProperty(vapi.NewProvision(m.Provides.Since), nil, nil, nil, m.Doc), nil
	default:
		return vapi.NewProperty(nil, nil, nil, m.Doc), nil
	}
}

func requirementFrom(r *Requires) *vapi.Requirement {
	var caps vapi.CapabilitySet
	if len(r.Caps) > 0 {
		caps = vapi.NewCapabilitySet(r.Caps...)
	}
	return vapi.NewRequirement(r.Since, caps)
}

func requireOptions(r *Requires) []vapi.Option {
	opts := []vapi.Option{vapi.Since(r.Since)}
	if len(r.Caps) > 0 {
		opts = append(opts, vapi.Cap(r.Caps...))
	}
	return opts
}
