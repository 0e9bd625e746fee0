package spellcheck

import "git.home.luguber.info/inful/docspell/internal/docmodel"

// Mode selects which part of a Context is meaningful.
type Mode int

const (
	// ModeTypeMember means Type and Member describe the unit being checked.
	ModeTypeMember Mode = iota
	// ModeFile means File describes the unit being checked.
	ModeFile
)

func (m Mode) String() string {
	if m == ModeFile {
		return "file"
	}
	return "type-member"
}

// Context is the traversal position. Only the traverser mutates it.
type Context struct {
	Mode    Mode
	Package *docmodel.Package
	File    *docmodel.SourceUnit
	Type    *docmodel.Type
	// Member is nil while the type's own comment is checked.
	Member *docmodel.Member
}

// EnterFile moves the context to a markup file of its package.
func (c *Context) EnterFile(unit *docmodel.SourceUnit) {
	c.Mode = ModeFile
	c.Package = unit.Package
	c.File = unit
}

// EnterType moves the context to the own comment of typ.
func (c *Context) EnterType(typ *docmodel.Type) {
	c.Mode = ModeTypeMember
	c.Package = typ.Package
	c.File = nil
	c.Type = typ
	c.Member = nil
}

// EnterMember moves the context to a member of the current type.
func (c *Context) EnterMember(m *docmodel.Member) {
	c.Member = m
}
