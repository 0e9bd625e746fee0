package spellcheck

import (
	"log/slog"

	"git.home.luguber.info/inful/docspell/internal/logfields"
	"git.home.luguber.info/inful/docspell/internal/metrics"
	"git.home.luguber.info/inful/docspell/internal/spell"
)

// Sink handles the unknown-word events of the checker.
type Sink struct {
	ctx         *Context
	headers     *HeaderState
	filter      *SuppressionFilter
	registry    *UnknownWordRegistry
	report      *Report
	suggestions bool
	recorder    metrics.Recorder

	errors     int
	suppressed int
}

// OnEvent reports one unknown word under the current context. Suppressed
// words leave no trace besides the suppressed counter.
func (s *Sink) OnEvent(ev spell.Event) {
	if s.filter.ShouldSuppress(ev.Word) {
		s.suppressed++
		s.recorder.IncSuppressedWords()
		slog.Debug("Suppressed unknown word", logfields.Word(ev.Word))
		return
	}

	s.headers.Ensure(s.ctx)
	s.registry.Add(ev.Word)
	s.report.Word(ev.Word)
	if s.suggestions {
		s.report.Suggestions(ev.Suggestions)
	}
	s.errors++
	s.recorder.IncUnknownWords()
}

// Errors returns the number of words written to the report.
func (s *Sink) Errors() int { return s.errors }

// Suppressed returns the number of dropped words.
func (s *Sink) Suppressed() int { return s.suppressed }
