// Package gosource builds a docmodel.Tree from Go source code.
//
// Every directory below the root that holds Go files becomes a package. Types
// come from go/doc, so they are ordered by name; struct fields, interface
// methods, typed constants and variables, constructors and methods become the
// type's members.
package gosource

import (
	"go/ast"
	"go/build"
	"go/doc"
	"go/parser"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/modfile"

	"git.home.luguber.info/inful/docspell/internal/docmodel"
	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
	"git.home.luguber.info/inful/docspell/internal/logfields"
)

// DefaultExcludeDirs are directory names never descended into.
var DefaultExcludeDirs = []string{"testdata", "vendor", "node_modules"}

// Options controls which declarations become part of the tree.
type Options struct {
	// IncludeUnexported keeps unexported types and members.
	IncludeUnexported bool
	// PackageScope adds a leading pseudo type per package holding the
	// package comment, package-level values and functions.
	PackageScope bool
	// ExcludeDirs lists directory names to skip in addition to hidden and
	// underscore-prefixed ones.
	ExcludeDirs []string
	// IndexFiles are the markup index file names looked up in each package
	// directory; the first one found becomes the package Position.
	IndexFiles []string
	// ModulePath overrides the module path read from root/go.mod.
	ModulePath string
}

// Load parses the Go packages below root.
func Load(root string, opts Options) (*docmodel.Tree, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryNotFound, "source root does not exist").
			Fatal().
			WithContext("path", root).
			Build()
	}
	if !info.IsDir() {
		return nil, errors.ValidationError("source root is not a directory").WithContext("path", root).Build()
	}

	modulePath := opts.ModulePath
	if modulePath == "" {
		modulePath = readModulePath(root)
	}
	exclude := append(slices.Clone(DefaultExcludeDirs), opts.ExcludeDirs...)

	tree := &docmodel.Tree{}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && skipDir(d.Name(), exclude) {
			return fs.SkipDir
		}

		pkgs, err := loadDir(root, p, modulePath, opts)
		if err != nil {
			return err
		}
		tree.Packages = append(tree.Packages, pkgs...)
		return nil
	})
	if err != nil {
		if errors.IsClassified(err) {
			return nil, err
		}
		return nil, errors.SourceError("failed to walk source tree").
			WithCause(err).
			WithContext("path", root).
			Build()
	}

	slog.Debug("Loaded Go sources", logfields.Path(root), logfields.Count(len(tree.Packages)))
	return tree, nil
}

func skipDir(name string, exclude []string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	return slices.Contains(exclude, name)
}

func readModulePath(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

// loadDir parses the buildable, non-test Go files of dir and returns one
// package per package clause found, external test packages excluded.
func loadDir(root, dir, modulePath string, opts Options) ([]*docmodel.Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	byName := make(map[string][]*ast.File)
	var order []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if ok, _ := build.Default.MatchFile(dir, name); !ok {
			continue
		}

		filePath := filepath.Join(dir, name)
		file, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			return nil, errors.SourceError("cannot parse Go file").
				WithCause(err).
				WithContext("file", filePath).
				Build()
		}
		pkgName := file.Name.Name
		if strings.HasSuffix(pkgName, "_test") {
			continue
		}
		if _, seen := byName[pkgName]; !seen {
			order = append(order, pkgName)
		}
		byName[pkgName] = append(byName[pkgName], file)
	}

	importPath := importPathFor(root, dir, modulePath)
	var mode doc.Mode
	if opts.IncludeUnexported {
		mode |= doc.AllDecls
	}

	var pkgs []*docmodel.Package
	for _, name := range order {
		dp, err := doc.NewFromFiles(fset, byName[name], importPath, mode)
		if err != nil {
			return nil, errors.SourceError("cannot extract package documentation").
				WithCause(err).
				WithContext("directory", dir).
				Build()
		}
		pkg := &docmodel.Package{
			Name:       dp.Name,
			ImportPath: importPath,
			Dir:        dir,
			Position:   indexPosition(dir, opts.IndexFiles),
		}
		buildTypes(pkg, dp, opts)
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

func importPathFor(root, dir, modulePath string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		if modulePath != "" {
			return modulePath
		}
		return filepath.Base(dir)
	}
	rel = filepath.ToSlash(rel)
	if modulePath == "" {
		return rel
	}
	return path.Join(modulePath, rel)
}

func indexPosition(dir string, indexFiles []string) *docmodel.Position {
	for _, name := range indexFiles {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return &docmodel.Position{File: p, Line: 1}
		}
	}
	return nil
}
