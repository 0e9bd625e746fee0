package docmodel

// TypeKind classifies a Type. It only affects the header label.
type TypeKind int

const (
	TypeOther TypeKind = iota
	TypeStruct
	TypeInterface
	// TypePackageScope groups a package's comment and its package-level
	// values and functions under one pseudo type.
	TypePackageScope
)

// String returns the lowercase kind name.
func (k TypeKind) String() string {
	switch k {
	case TypeStruct:
		return "struct"
	case TypeInterface:
		return "interface"
	case TypePackageScope:
		return "package scope"
	default:
		return "type"
	}
}

// MemberKind is the variant of a type member.
type MemberKind int

const (
	MemberField MemberKind = iota
	MemberConstructor
	MemberMethod
)

// HeaderLabel returns the capitalised label used in member headers.
func (k MemberKind) HeaderLabel() string {
	switch k {
	case MemberConstructor:
		return "Constructor"
	case MemberMethod:
		return "Method"
	default:
		return "Field"
	}
}

// String implements fmt.Stringer.
func (k MemberKind) String() string {
	switch k {
	case MemberConstructor:
		return "constructor"
	case MemberMethod:
		return "method"
	default:
		return "field"
	}
}
