package spellcheck

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docspell/internal/docmodel"
	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
	"git.home.luguber.info/inful/docspell/internal/logfields"
	"git.home.luguber.info/inful/docspell/internal/markup"
	"git.home.luguber.info/inful/docspell/internal/metrics"
	"git.home.luguber.info/inful/docspell/internal/spell"
	"git.home.luguber.info/inful/docspell/internal/util/sets"
)

// TextChecker is the spell-checking capability driven by the traverser.
// CheckText must deliver every event to the registered listeners before it
// returns. *spell.Checker implements it.
type TextChecker interface {
	CheckText(text string) error
	OnError(l spell.Listener)
}

// MarkupOptions controls the markup pass run when the traversal enters a new
// package.
type MarkupOptions struct {
	Enabled bool
	// Extensions selects the markup files; markup.DefaultExtensions when empty.
	Extensions []string
	// DocFilesDir is a subdirectory of the package markup directory that is
	// checked too when it exists.
	DocFilesDir string
	// StripTags checks extracted text instead of the raw body.
	StripTags bool
}

// Traverser walks a docmodel.Tree once and submits every text unit to the
// checker. A Traverser is used for a single run.
type Traverser struct {
	checker  TextChecker
	ctx      *Context
	sink     *Sink
	markup   MarkupOptions
	recorder metrics.Recorder
	result   *Result

	lastPackage *docmodel.Package
	warned      sets.Set[*docmodel.Package]
}

// Traverse checks every type of tree in provider order, running the markup
// pass whenever the package changes from the previous type's package.
// A fatal error stops the traversal.
func (t *Traverser) Traverse(tree *docmodel.Tree) error {
	for typ := range tree.Types() {
		if t.markup.Enabled && typ.Package != t.lastPackage {
			if err := t.checkMarkup(typ.Package); err != nil {
				return err
			}
		}
		t.lastPackage = typ.Package

		t.ctx.EnterType(typ)
		if err := t.submit(typ.Doc, metrics.UnitType); err != nil {
			return err
		}

		for _, m := range typ.Members() {
			t.ctx.EnterMember(m)
			if err := t.submit(m.Doc, metrics.UnitMember); err != nil {
				return err
			}
		}
	}
	return nil
}

// submit checks one text unit. A checker failure is logged and recorded and
// the traversal goes on; only a report write failure is fatal.
func (t *Traverser) submit(text string, kind metrics.UnitKind) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	t.result.UnitsChecked++
	t.recorder.IncUnitsChecked(kind)

	if err := t.checker.CheckText(text); err != nil {
		unit := t.unitLabel()
		slog.Warn("Spell check failed; continuing", logfields.Unit(unit), logfields.Error(err))
		t.result.CheckFailures = append(t.result.CheckFailures, CheckFailure{Unit: unit, Error: err.Error()})
		t.recorder.IncCheckFailures()
	}

	if err := t.sink.report.Err(); err != nil {
		return errors.WrapError(err, errors.CategoryReport, "failed to write spelling report").
			Fatal().
			WithContext("unit", t.unitLabel()).
			Build()
	}
	return nil
}

func (t *Traverser) checkMarkup(pkg *docmodel.Package) error {
	dir, ok := pkg.MarkupDir()
	if !ok {
		if t.warned.AddIfAbsent(pkg) {
			slog.Warn("Package has no markup index; skipping its markup files", logfields.Package(pkg.Label()))
			t.result.Warnings = append(t.result.Warnings, Warning{
				Package: pkg.Label(),
				Message: "no markup index file; markup files not checked",
			})
		}
		return nil
	}

	dirs := []string{dir}
	if t.markup.DocFilesDir != "" {
		sub := filepath.Join(dir, t.markup.DocFilesDir)
		if info, err := os.Stat(sub); err == nil && info.IsDir() {
			dirs = append(dirs, sub)
		}
	}

	for _, d := range dirs {
		files, err := markup.Files(d, t.markup.Extensions)
		if err != nil {
			return err
		}
		for _, f := range files {
			if err := t.checkFile(pkg, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Traverser) checkFile(pkg *docmodel.Package, path string) error {
	content, err := markup.ReadFile(path)
	if err != nil {
		return err
	}

	text := markup.BodyText(content)
	if t.markup.StripTags {
		text, err = markup.PlainText(path, text)
		if err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "cannot extract text from markup file").
				Fatal().
				WithContext("file", path).
				Build()
		}
	}

	slog.Debug("Checking markup file", logfields.Package(pkg.Label()), logfields.File(path))
	t.ctx.EnterFile(&docmodel.SourceUnit{Path: path, Package: pkg})
	t.result.MarkupFiles++
	return t.submit(text, metrics.UnitFile)
}

func (t *Traverser) unitLabel() string {
	ctx := t.ctx
	if ctx.Mode == ModeFile && ctx.File != nil {
		return ctx.File.Label()
	}
	if ctx.Type == nil {
		return ""
	}
	if ctx.Member != nil {
		return ctx.Type.Label() + "." + ctx.Member.Label()
	}
	return ctx.Type.Label()
}
