package spellcheck

import (
	"fmt"
	"io"
	"strings"
	"time"

	"git.home.luguber.info/inful/docspell/internal/docmodel"
)

// DefaultTitle is the title printed in the report herald.
const DefaultTitle = "SpellCheck Results"

// DateLayout formats the herald timestamp.
const DateLayout = "Mon Jan 02 15:04:05 MST 2006"

var (
	heraldRule  = strings.Repeat("*", 86)
	packageRule = strings.Repeat("*", 45)
	typeRule    = "  " + strings.Repeat("=", 48)
	memberRule  = "    " + strings.Repeat("-", 38)
)

// indent is written after a file, type or member header so the error words
// that follow line up under it.
const indent = "\t"

// Report writes the line-oriented spelling report. The first write error is
// kept and every later write becomes a no-op; check Err after each unit.
type Report struct {
	w   io.Writer
	err error
}

// NewReport returns a Report writing to w.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Err returns the first write error, if any.
func (r *Report) Err() error { return r.err }

func (r *Report) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *Report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Herald writes the banner opening the report.
func (r *Report) Herald(title string, at time.Time) {
	r.printf("%s\n%s\n%s\n%s\n", heraldRule, title, at.Format(DateLayout), heraldRule)
}

// Footer writes the banner closing the report.
func (r *Report) Footer(errorCount int) {
	r.printf("\n%s\n   SpellCheck Results Complete \n   Error Count: %d\n%s\n\n", packageRule, errorCount, packageRule)
}

// PackageHeader opens a package section.
func (r *Report) PackageHeader(pkg *docmodel.Package) {
	r.printf("\n%s\nPackage: %s\n%s\n", packageRule, pkg.Label(), packageRule)
}

// FileHeader opens a markup file section.
func (r *Report) FileHeader(unit *docmodel.SourceUnit) {
	r.printf("  File: %s\n%s\n", unit.Label(), typeRule)
}

// TypeHeader opens a type section.
func (r *Report) TypeHeader(typ *docmodel.Type) {
	r.printf("\n  Type: %s\n%s\n", typ.Label(), typeRule)
}

// MemberHeader opens a member section labelled by the member kind.
func (r *Report) MemberHeader(m *docmodel.Member) {
	r.printf("    %s: %s\n%s\n", m.Kind.HeaderLabel(), m.Label(), memberRule)
}

// Indent writes the indent marker following a header.
func (r *Report) Indent() { r.write(indent) }

// Word writes an unknown word on its own line.
func (r *Report) Word(word string) { r.write(word + "\n") }

// Suggestions writes the candidate corrections of the preceding word.
func (r *Report) Suggestions(suggestions []string) {
	r.write(": ")
	if len(suggestions) == 0 {
		r.write("<No suggestions>")
	}
	for _, s := range suggestions {
		r.write(s + " ")
	}
	r.write("\n" + indent)
}
