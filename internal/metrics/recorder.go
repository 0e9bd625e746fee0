package metrics

import "time"

// UnitKind labels the kind of text unit submitted to the checker.
type UnitKind string

const (
	UnitType   UnitKind = "type"
	UnitMember UnitKind = "member"
	UnitFile   UnitKind = "file"
)

// OutcomeLabel enumerates run outcomes for counters.
type OutcomeLabel string

const (
	OutcomeClean  OutcomeLabel = "clean"  // no unknown words reported
	OutcomeErrors OutcomeLabel = "errors" // at least one unknown word reported
	OutcomeFailed OutcomeLabel = "failed" // run aborted
)

// Recorder defines observability hooks for spell-check runs. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe for
// nil receivers when using the NoopRecorder (allowing optional injection).
type Recorder interface {
	IncUnitsChecked(kind UnitKind)
	IncUnknownWords()
	IncSuppressedWords()
	IncCheckFailures()
	SetUniqueWords(n int)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncUnitsChecked(UnitKind)         {}
func (NoopRecorder) IncUnknownWords()                 {}
func (NoopRecorder) IncSuppressedWords()              {}
func (NoopRecorder) IncCheckFailures()                {}
func (NoopRecorder) SetUniqueWords(int)               {}
func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)       {}
