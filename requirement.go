package vapi

// Requirement binds together the API version a member became required in
// and the capabilities (if any) it corresponds to. Records are immutable
// once constructed and safe for concurrent reads.
type Requirement struct {
	since int
	caps  CapabilitySet
}

// NewRequirement creates a Requirement. since is the first API version the
// member is required in; caps is the set of capabilities that gate the
// requirement, or nil for an unconditional requirement.
//
// The values are stored verbatim. In particular an empty, non-nil caps set
// is kept as-is, producing a requirement that never applies; the annotation
// entry points never construct that state, but direct callers can.
func NewRequirement(since int, caps CapabilitySet) *Requirement {
	return &Requirement{since: since, caps: caps.clone()}
}

// Since returns the first API version the member is required in.
func (r *Requirement) Since() int {
	return r.since
}

// Caps returns a copy of the gating capability set, or nil if the
// requirement is unconditional.
func (r *Requirement) Caps() CapabilitySet {
	return r.caps.clone()
}

// Required computes whether the member is mandatory for a plugin
// implementing the given API version with the given capability set. The
// version bound is inclusive: a member required since version N is in scope
// when version == N.
func (r *Requirement) Required(version int, caps CapabilitySet) bool {
	return version >= r.since && (r.caps == nil || r.caps.Intersects(caps))
}

// Provision records the API version a member's provided capability first
// appeared in. The capability name itself is carried by the member the
// record is attached to, not by the record. Immutable once constructed.
type Provision struct {
	since int
}

// NewProvision creates a Provision with the given first version.
func NewProvision(since int) *Provision {
	return &Provision{since: since}
}

// Since returns the first API version the provision applies to.
func (p *Provision) Since() int {
	return p.since
}
