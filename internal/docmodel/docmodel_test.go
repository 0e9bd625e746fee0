package docmodel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeTypesOrder(t *testing.T) {
	a := &Package{Name: "a", ImportPath: "example.com/a"}
	b := &Package{Name: "b"}
	a1 := a.AddType(&Type{Name: "One"})
	a2 := a.AddType(&Type{Name: "Two"})
	b1 := b.AddType(&Type{Name: "Three"})

	tree := &Tree{Packages: []*Package{a, b}}

	var got []*Type
	for typ := range tree.Types() {
		got = append(got, typ)
	}
	assert.Equal(t, []*Type{a1, a2, b1}, got)
	assert.Equal(t, 3, tree.TypeCount())
	assert.Same(t, a, a2.Package)
}

func TestTreeTypesStopsEarly(t *testing.T) {
	p := &Package{Name: "p"}
	p.AddType(&Type{Name: "A"})
	p.AddType(&Type{Name: "B"})
	tree := &Tree{Packages: []*Package{p}}

	n := 0
	for range tree.Types() {
		n++
		break
	}
	assert.Equal(t, 1, n)

	var nilTree *Tree
	assert.Equal(t, 0, nilTree.TypeCount())
}

func TestMembersGroupOrder(t *testing.T) {
	typ := &Type{Name: "Server"}
	m1 := typ.AddMember(&Member{Name: "Serve", Kind: MemberMethod})
	c1 := typ.AddMember(&Member{Name: "NewServer", Kind: MemberConstructor})
	f1 := typ.AddMember(&Member{Name: "Addr", Kind: MemberField})

	assert.Equal(t, []*Member{f1, c1, m1}, typ.Members())
	assert.Same(t, typ, m1.Owner)
}

func TestLabels(t *testing.T) {
	pkg := &Package{Name: "http", ImportPath: "example.com/net/http"}
	typ := pkg.AddType(&Type{Name: "Client", Kind: TypeStruct})
	scope := pkg.AddType(&Type{Name: "package http", Kind: TypePackageScope})

	assert.Equal(t, "example.com/net/http", pkg.Label())
	assert.Equal(t, "http.Client", typ.Label())
	assert.Equal(t, "package http", scope.Label())
	assert.Equal(t, "Method", MemberMethod.HeaderLabel())
	assert.Equal(t, "Constructor", MemberConstructor.HeaderLabel())
	assert.Equal(t, "Field", MemberField.HeaderLabel())
}

func TestMarkupDir(t *testing.T) {
	pkg := &Package{Name: "p"}
	_, ok := pkg.MarkupDir()
	assert.False(t, ok, "no index means no markup directory")

	pkg.Position = &Position{File: filepath.Join("src", "p", "package.html")}
	dir, ok := pkg.MarkupDir()
	require.True(t, ok)
	assert.Equal(t, filepath.Join("src", "p"), dir)
}
