// Package docmodel is the read-only documentation tree checked by docspell:
// packages hold types, types hold fields, constructors and methods, and each
// node carries the comment text to check.
//
// Nodes are compared by pointer identity. Two nodes with the same label are
// still different nodes.
package docmodel

import (
	"iter"
	"path/filepath"
)

// Tree is the ordered set of packages yielded by a provider.
type Tree struct {
	Packages []*Package
}

// Types yields every type of every package in provider order.
func (t *Tree) Types() iter.Seq[*Type] {
	return func(yield func(*Type) bool) {
		if t == nil {
			return
		}
		for _, pkg := range t.Packages {
			for _, typ := range pkg.Types {
				if !yield(typ) {
					return
				}
			}
		}
	}
}

// TypeCount returns the number of types in the tree.
func (t *Tree) TypeCount() int {
	n := 0
	for range t.Types() {
		n++
	}
	return n
}

// Position locates a package's markup index file on disk.
type Position struct {
	File string
	Line int
}

// Package is a documented package.
type Package struct {
	Name       string
	ImportPath string
	Dir        string
	// Position is nil when the package has no markup index file.
	Position *Position
	Types    []*Type
}

// Label is the display name used in report headers.
func (p *Package) Label() string {
	if p.ImportPath != "" {
		return p.ImportPath
	}
	return p.Name
}

// MarkupDir returns the directory holding the package's markup files and
// whether it is known. It is derived from Position, so a package without a
// markup index has no markup directory.
func (p *Package) MarkupDir() (string, bool) {
	if p.Position == nil || p.Position.File == "" {
		return "", false
	}
	return filepath.Dir(p.Position.File), true
}

// AddType appends typ to the package and sets its owner.
func (p *Package) AddType(typ *Type) *Type {
	typ.Package = p
	p.Types = append(p.Types, typ)
	return typ
}

// SourceUnit is a markup file checked as raw text.
type SourceUnit struct {
	Path    string
	Package *Package
}

// Label is the display name used in report headers.
func (u *SourceUnit) Label() string { return u.Path }
