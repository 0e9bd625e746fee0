package spellcheck

import "git.home.luguber.info/inful/docspell/internal/docmodel"

// HeaderState remembers the last package, file, type and member a header was
// written for. Identity is pointer identity, never the label.
type HeaderState struct {
	report *Report

	lastPackage *docmodel.Package
	lastFile    *docmodel.SourceUnit
	lastType    *docmodel.Type
	lastMember  *docmodel.Member
}

// NewHeaderState returns a state with nothing written yet.
func NewHeaderState(report *Report) *HeaderState {
	return &HeaderState{report: report}
}

// Ensure writes the headers of ctx that differ from the last written ones,
// outermost first, and records them as written.
func (h *HeaderState) Ensure(ctx *Context) {
	if ctx.Package != h.lastPackage {
		h.report.PackageHeader(ctx.Package)
		h.lastPackage = ctx.Package
	}

	switch ctx.Mode {
	case ModeFile:
		if ctx.File != h.lastFile {
			h.report.FileHeader(ctx.File)
			h.lastFile = ctx.File
			h.report.Indent()
		}
	case ModeTypeMember:
		if ctx.Type != h.lastType {
			h.report.TypeHeader(ctx.Type)
			h.lastType = ctx.Type
			h.report.Indent()
		}
		if ctx.Member != nil && ctx.Member != h.lastMember {
			h.report.MemberHeader(ctx.Member)
			h.lastMember = ctx.Member
			h.report.Indent()
		}
	}
}
