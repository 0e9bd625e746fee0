package spellcheck

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docspell/internal/docmodel"
	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
	"git.home.luguber.info/inful/docspell/internal/logfields"
	"git.home.luguber.info/inful/docspell/internal/metrics"
	"git.home.luguber.info/inful/docspell/internal/util/sets"
)

// Options configures a Run.
type Options struct {
	// Checker receives the run's event sink through OnError, so a checker
	// must not be shared between runs.
	Checker TextChecker
	// Report receives the spelling report. Required.
	Report io.Writer
	// UnknownWords receives the distinct unknown words, one per line, when
	// set and at least one word was reported.
	UnknownWords io.Writer
	Order        Order
	// IgnoreContaining drops reported words containing any of these strings.
	IgnoreContaining []string
	WithSuggestions  bool
	Markup           MarkupOptions
	// Title is printed in the herald; DefaultTitle when empty.
	Title    string
	Now      func() time.Time
	Recorder metrics.Recorder
}

// CheckFailure is a text unit the checker could not check.
type CheckFailure struct {
	Unit  string `json:"unit"`
	Error string `json:"error"`
}

// Warning is a recoverable condition met during traversal.
type Warning struct {
	Package string `json:"package"`
	Message string `json:"message"`
}

// Result summarises a run.
type Result struct {
	RunID         string         `json:"run_id"`
	StartedAt     time.Time      `json:"started_at"`
	Duration      time.Duration  `json:"duration_ns"`
	Errors        int            `json:"errors"`
	Suppressed    int            `json:"suppressed"`
	UnitsChecked  int            `json:"units_checked"`
	MarkupFiles   int            `json:"markup_files"`
	UnknownWords  []string       `json:"unknown_words"`
	CheckFailures []CheckFailure `json:"check_failures,omitempty"`
	Warnings      []Warning      `json:"warnings,omitempty"`
}

// HasErrors reports whether any unknown word was written to the report.
func (r *Result) HasErrors() bool { return r.Errors > 0 }

// dictionaryHolder is implemented by checkers that can tell whether they
// were given a dictionary.
type dictionaryHolder interface {
	HasDictionary() bool
}

// Run checks tree and writes the report. On a fatal error the partial result
// is returned together with the error.
func Run(tree *docmodel.Tree, opts Options) (*Result, error) {
	if opts.Checker == nil {
		return nil, errors.InternalError("spell checker is nil").Build()
	}
	if opts.Report == nil {
		return nil, errors.InternalError("report writer is nil").Build()
	}
	if dh, ok := opts.Checker.(dictionaryHolder); ok && !dh.HasDictionary() {
		return nil, errors.ConfigError("at least one dictionary must be specified").Build()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	order := opts.Order
	if order == "" {
		order = OrderSorted
	}

	result := &Result{RunID: uuid.NewString(), StartedAt: now()}
	log := slog.With(logfields.RunID(result.RunID))
	log.Info("Spell check started", logfields.Count(len(tree.Packages)), slog.Int("types", tree.TypeCount()))

	report := NewReport(opts.Report)
	registry := NewUnknownWordRegistry()
	ctx := &Context{}
	sink := &Sink{
		ctx:         ctx,
		headers:     NewHeaderState(report),
		filter:      NewSuppressionFilter(opts.IgnoreContaining...),
		registry:    registry,
		report:      report,
		suggestions: opts.WithSuggestions,
		recorder:    recorder,
	}
	opts.Checker.OnError(sink.OnEvent)

	trav := &Traverser{
		checker:  opts.Checker,
		ctx:      ctx,
		sink:     sink,
		markup:   opts.Markup,
		recorder: recorder,
		result:   result,
		warned:   sets.New[*docmodel.Package](),
	}

	finish := func() {
		result.Errors = sink.Errors()
		result.Suppressed = sink.Suppressed()
		result.UnknownWords = registry.All(order)
		result.Duration = now().Sub(result.StartedAt)
		recorder.SetUniqueWords(registry.Len())
		recorder.ObserveRunDuration(result.Duration)
	}

	report.Herald(title, result.StartedAt)
	if err := trav.Traverse(tree); err != nil {
		finish()
		recorder.IncRunOutcome(metrics.OutcomeFailed)
		log.Error("Spell check aborted", logfields.Error(err))
		return result, err
	}
	report.Footer(sink.Errors())
	finish()

	if err := report.Err(); err != nil {
		recorder.IncRunOutcome(metrics.OutcomeFailed)
		return result, errors.WrapError(err, errors.CategoryReport, "failed to write spelling report").Fatal().Build()
	}

	if opts.UnknownWords != nil && registry.Len() > 0 {
		if err := registry.WriteTo(opts.UnknownWords, order); err != nil {
			recorder.IncRunOutcome(metrics.OutcomeFailed)
			return result, errors.WrapError(err, errors.CategoryReport, "failed to write unknown words").Fatal().Build()
		}
	}

	if result.HasErrors() {
		recorder.IncRunOutcome(metrics.OutcomeErrors)
	} else {
		recorder.IncRunOutcome(metrics.OutcomeClean)
	}
	log.Info("Spell check complete",
		slog.Int("errors", result.Errors),
		slog.Int("unique_words", len(result.UnknownWords)),
		slog.Int("suppressed", result.Suppressed),
		slog.Int("units", result.UnitsChecked),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))
	return result, nil
}
