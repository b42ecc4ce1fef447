package vapi

// Method is a tagged wrapper around a callable interface member. Go
// functions cannot carry attributes, so annotations attach their records to
// the wrapper instead and consumers retrieve them through Requirement and
// Provision (or the package-level RequirementOf / ProvisionOf helpers).
//
// A method carries at most one requirement record and at most one provision
// record; it may carry both, attached independently. Re-annotating replaces
// the previous record of the same kind.
type Method struct {
	// Name is the member name as declared by the owning interface.
	Name string

	// Func is the underlying callable. The annotation layer never invokes
	// it; nil is allowed for metadata-only descriptors.
	Func any

	requirement *Requirement
	provision   *Provision
}

// NewMethod wraps a callable member for annotation.
func NewMethod(name string, fn any) *Method {
	return &Method{Name: name, Func: fn}
}

// Requirement returns the attached Requirement record, if any.
func (m *Method) Requirement() (*Requirement, bool) {
	return m.requirement, m.requirement != nil
}

// Provision returns the attached Provision record, if any.
func (m *Method) Provision() (*Provision, bool) {
	return m.provision, m.provision != nil
}

// requirementCarrier and provisionCarrier are the introspection contracts
// shared by methods and annotated properties.
type requirementCarrier interface {
	Requirement() (*Requirement, bool)
}

type provisionCarrier interface {
	Provision() (*Provision, bool)
}

// RequirementOf retrieves the Requirement record attached to a member,
// regardless of member shape. It understands *Method, *RequiredProperty and
// any type exposing a Requirement accessor.
func RequirementOf(member any) (*Requirement, bool) {
	switch m := member.(type) {
	case requirementCarrier:
		return m.Requirement()
	case *RequiredProperty:
		return m.Requirement(), m.Requirement() != nil
	default:
		return nil, false
	}
}

// ProvisionOf retrieves the Provision record attached to a member,
// regardless of member shape. It understands *Method, *ProvidedProperty and
// any type exposing a Provision accessor.
func ProvisionOf(member any) (*Provision, bool) {
	switch m := member.(type) {
	case provisionCarrier:
		return m.Provision()
	case *ProvidedProperty:
		return m.Provision(), m.Provision() != nil
	default:
		return nil, false
	}
}
