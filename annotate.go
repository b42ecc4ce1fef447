package vapi

import "sort"

// Option keys recognized by the annotation entry points. The Require family
// accepts both; the Provide family accepts only optionSince.
const (
	optionSince = "since"
	optionCap   = "cap"
)

// annotationConfig collects option values before a record is constructed.
type annotationConfig struct {
	since int
	caps  CapabilitySet
}

// Option is a functional option for configuring an annotation. Options
// carry the key they correspond to so each entry point can reject options
// outside its recognized set at application time.
type Option struct {
	key   string
	apply func(*annotationConfig)
}

// Since specifies the first API version in which the annotated member
// appears. If not specified, defaults to 0.
func Since(version int) Option {
	return Option{
		key: optionSince,
		apply: func(c *annotationConfig) {
			c.since = version
		},
	}
}

// Cap specifies the capability or capabilities associated with a required
// member. Passing no names, or only empty names, is equivalent to omitting
// the option: the requirement becomes unconditional.
//
// Only the Require family of entry points recognizes this option; passing
// it to Provide or ProvideProperty is an invalid-argument error.
func Cap(names ...string) Option {
	return Option{
		key: optionCap,
		apply: func(c *annotationConfig) {
			set := NewCapabilitySet(names...)
			if set.Len() == 0 {
				c.caps = nil
				return
			}
			c.caps = set
		},
	}
}

// normalize applies opts into a fresh config, rejecting any option whose
// key is not in the recognized set. Recognition errors name every offending
// key, sorted, and are reported before any record is constructed. Later
// duplicates of the same option overwrite earlier ones, as with functional
// options elsewhere.
func normalize(op string, recognized map[string]bool, opts []Option) (*annotationConfig, error) {
	cfg := &annotationConfig{}

	var bad []string
	for _, opt := range opts {
		if !recognized[opt.key] {
			bad = append(bad, opt.key)
			continue
		}
		opt.apply(cfg)
	}

	if len(bad) > 0 {
		sort.Strings(bad)
		bad = dedup(bad)
		return nil, newInvalidOptionsError(op, bad)
	}

	return cfg, nil
}

// dedup removes adjacent duplicates from a sorted slice.
func dedup(keys []string) []string {
	out := keys[:1]
	for _, k := range keys[1:] {
		if k != out[len(out)-1] {
			out = append(out, k)
		}
	}
	return out
}

var (
	requireKeys = map[string]bool{optionSince: true, optionCap: true}
	provideKeys = map[string]bool{optionSince: true}
)

// Annotator attaches a previously constructed record to a method and
// returns the method, so annotations can be applied inline while building
// a descriptor.
type Annotator func(m *Method) *Method

// RequiredPropertyAnnotator wraps a getter into a RequiredProperty carrying
// a previously constructed Requirement. Setter, deleter and documentation
// can be filled in through the usual Property surface by constructing with
// NewRequiredProperty instead.
type RequiredPropertyAnnotator func(fget Getter) *RequiredProperty

// ProvidedPropertyAnnotator wraps a getter into a ProvidedProperty carrying
// a previously constructed Provision.
type ProvidedPropertyAnnotator func(fget Getter) *ProvidedProperty

// Require marks a method as required. It accepts the Since and Cap options
// and returns a reusable annotator preloaded with the resulting
// Requirement. Unrecognized options fail with an invalid-argument error
// before any record is constructed.
//
// For the common no-option case MarkRequired applies the defaults directly.
func Require(opts ...Option) (Annotator, error) {
	cfg, err := normalize("vapi.Require", requireKeys, opts)
	if err != nil {
		return nil, err
	}
	req := NewRequirement(cfg.since, cfg.caps)
	return func(m *Method) *Method {
		m.requirement = req
		return m
	}, nil
}

// RequireProperty marks a property as required. It accepts the Since and
// Cap options and returns an annotator that wraps a getter into a
// RequiredProperty carrying the resulting Requirement.
func RequireProperty(opts ...Option) (RequiredPropertyAnnotator, error) {
	cfg, err := normalize("vapi.RequireProperty", requireKeys, opts)
	if err != nil {
		return nil, err
	}
	req := NewRequirement(cfg.since, cfg.caps)
	return func(fget Getter) *RequiredProperty {
		return NewRequiredProperty(req, fget, nil, nil, "")
	}, nil
}

// Provide marks a method as providing its capability. It accepts only the
// Since option; the capability name is carried by the member itself.
func Provide(opts ...Option) (Annotator, error) {
	cfg, err := normalize("vapi.Provide", provideKeys, opts)
	if err != nil {
		return nil, err
	}
	prov := NewProvision(cfg.since)
	return func(m *Method) *Method {
		m.provision = prov
		return m
	}, nil
}

// ProvideProperty marks a property as providing its capability. It accepts
// only the Since option and returns an annotator that wraps a getter into
// a ProvidedProperty.
func ProvideProperty(opts ...Option) (ProvidedPropertyAnnotator, error) {
	cfg, err := normalize("vapi.ProvideProperty", provideKeys, opts)
	if err != nil {
		return nil, err
	}
	prov := NewProvision(cfg.since)
	return func(fget Getter) *ProvidedProperty {
		return NewProvidedProperty(prov, fget, nil, nil, "")
	}, nil
}

// MarkRequired is the bare form of Require: it attaches an unconditional
// Requirement with since 0 directly to m and returns m.
func MarkRequired(m *Method) *Method {
	m.requirement = NewRequirement(0, nil)
	return m
}

// MarkProvided is the bare form of Provide: it attaches a Provision with
// since 0 directly to m and returns m.
func MarkProvided(m *Method) *Method {
	m.provision = NewProvision(0)
	return m
}

// MarkRequiredProperty is the bare form of RequireProperty: it wraps fget
// into a RequiredProperty with an unconditional since-0 Requirement.
func MarkRequiredProperty(fget Getter) *RequiredProperty {
	return NewRequiredProperty(NewRequirement(0, nil), fget, nil, nil, "")
}

// MarkProvidedProperty is the bare form of ProvideProperty: it wraps fget
// into a ProvidedProperty with a since-0 Provision.
func MarkProvidedProperty(fget Getter) *ProvidedProperty {
	return NewProvidedProperty(NewProvision(0), fget, nil, nil, "")
}
