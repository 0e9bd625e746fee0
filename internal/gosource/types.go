package gosource

import (
	"go/ast"
	"go/doc"
	"go/types"
	"strings"

	"git.home.luguber.info/inful/docspell/internal/docmodel"
)

func buildTypes(pkg *docmodel.Package, dp *doc.Package, opts Options) {
	if opts.PackageScope {
		scope := &docmodel.Type{
			Name: "package " + dp.Name,
			Kind: docmodel.TypePackageScope,
			Doc:  dp.Doc,
		}
		addValues(scope, dp.Consts)
		addValues(scope, dp.Vars)
		for _, f := range dp.Funcs {
			scope.AddMember(&docmodel.Member{Name: f.Name, Kind: docmodel.MemberMethod, Doc: f.Doc})
		}
		if scope.Doc != "" || len(scope.Members()) > 0 {
			pkg.AddType(scope)
		}
	}

	for _, t := range dp.Types {
		typ := &docmodel.Type{Name: t.Name, Doc: t.Doc}
		if spec := typeSpec(t); spec != nil {
			switch st := spec.Type.(type) {
			case *ast.StructType:
				typ.Kind = docmodel.TypeStruct
				addStructFields(typ, st, opts.IncludeUnexported)
			case *ast.InterfaceType:
				typ.Kind = docmodel.TypeInterface
				addInterfaceMethods(typ, st, opts.IncludeUnexported)
			}
		}
		addValues(typ, t.Consts)
		addValues(typ, t.Vars)
		for _, f := range t.Funcs {
			typ.AddMember(&docmodel.Member{Name: f.Name, Kind: docmodel.MemberConstructor, Doc: f.Doc})
		}
		for _, m := range t.Methods {
			typ.AddMember(&docmodel.Member{Name: m.Name, Kind: docmodel.MemberMethod, Doc: m.Doc})
		}
		pkg.AddType(typ)
	}
}

func typeSpec(t *doc.Type) *ast.TypeSpec {
	if t.Decl == nil {
		return nil
	}
	for _, s := range t.Decl.Specs {
		if ts, ok := s.(*ast.TypeSpec); ok && ts.Name.Name == t.Name {
			return ts
		}
	}
	return nil
}

func addStructFields(typ *docmodel.Type, st *ast.StructType, unexported bool) {
	if st.Fields == nil {
		return
	}
	for _, f := range st.Fields.List {
		name, ok := fieldName(f, unexported)
		if !ok {
			continue
		}
		typ.AddMember(&docmodel.Member{
			Name: name,
			Kind: docmodel.MemberField,
			Doc:  joinDocs(f.Doc, f.Comment),
		})
	}
}

func addInterfaceMethods(typ *docmodel.Type, it *ast.InterfaceType, unexported bool) {
	if it.Methods == nil {
		return
	}
	for _, m := range it.Methods.List {
		if _, isFunc := m.Type.(*ast.FuncType); !isFunc || len(m.Names) == 0 {
			continue
		}
		name, ok := fieldName(m, unexported)
		if !ok {
			continue
		}
		typ.AddMember(&docmodel.Member{
			Name: name,
			Kind: docmodel.MemberMethod,
			Doc:  joinDocs(m.Doc, m.Comment),
		})
	}
}

// fieldName names a struct field or interface method; embedded fields are
// named after their type.
func fieldName(f *ast.Field, unexported bool) (string, bool) {
	if len(f.Names) == 0 {
		return types.ExprString(f.Type), true
	}
	var names []string
	for _, n := range f.Names {
		if unexported || n.IsExported() {
			names = append(names, n.Name)
		}
	}
	return strings.Join(names, ", "), len(names) > 0
}

// addValues adds one field member per value spec of a const or var group.
// The group comment is attached to the first spec.
func addValues(typ *docmodel.Type, values []*doc.Value) {
	for _, v := range values {
		first := true
		for _, s := range v.Decl.Specs {
			vs, ok := s.(*ast.ValueSpec)
			if !ok {
				continue
			}
			names := make([]string, 0, len(vs.Names))
			for _, n := range vs.Names {
				names = append(names, n.Name)
			}
			text := joinDocs(vs.Doc, vs.Comment)
			if first && v.Doc != "" {
				text = strings.TrimSpace(v.Doc + "\n" + text)
			}
			first = false
			typ.AddMember(&docmodel.Member{
				Name: strings.Join(names, ", "),
				Kind: docmodel.MemberField,
				Doc:  text,
			})
		}
	}
}

func joinDocs(groups ...*ast.CommentGroup) string {
	var parts []string
	for _, g := range groups {
		if t := strings.TrimSpace(g.Text()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}
