package docmodel

// Type is a documented type (or a package's scope pseudo type).
type Type struct {
	Name    string
	Kind    TypeKind
	Doc     string
	Package *Package

	Fields       []*Member
	Constructors []*Member
	Methods      []*Member
}

// Label is the qualified display name used in report headers.
func (t *Type) Label() string {
	if t.Kind == TypePackageScope || t.Package == nil || t.Package.Name == "" {
		return t.Name
	}
	return t.Package.Name + "." + t.Name
}

// AddMember appends m to the group matching its kind and sets its owner.
func (t *Type) AddMember(m *Member) *Member {
	m.Owner = t
	switch m.Kind {
	case MemberConstructor:
		t.Constructors = append(t.Constructors, m)
	case MemberMethod:
		t.Methods = append(t.Methods, m)
	default:
		t.Fields = append(t.Fields, m)
	}
	return m
}

// Members returns fields, then constructors, then methods.
func (t *Type) Members() []*Member {
	out := make([]*Member, 0, len(t.Fields)+len(t.Constructors)+len(t.Methods))
	out = append(out, t.Fields...)
	out = append(out, t.Constructors...)
	return append(out, t.Methods...)
}

// Member is a field, constructor or method of a Type.
type Member struct {
	Name  string
	Kind  MemberKind
	Doc   string
	Owner *Type
}

// Label is the display name used in report headers.
func (m *Member) Label() string { return m.Name }
