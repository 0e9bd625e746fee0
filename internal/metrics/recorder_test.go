package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testRecorder struct {
	units      map[UnitKind]int
	unknown    int
	suppressed int
	failures   int
	unique     int
	durations  int
	outcomes   map[OutcomeLabel]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{units: map[UnitKind]int{}, outcomes: map[OutcomeLabel]int{}}
}

func (t *testRecorder) IncUnitsChecked(kind UnitKind)      { t.units[kind]++ }
func (t *testRecorder) IncUnknownWords()                   { t.unknown++ }
func (t *testRecorder) IncSuppressedWords()                { t.suppressed++ }
func (t *testRecorder) IncCheckFailures()                  { t.failures++ }
func (t *testRecorder) SetUniqueWords(n int)               { t.unique = n }
func (t *testRecorder) ObserveRunDuration(_ time.Duration) { t.durations++ }
func (t *testRecorder) IncRunOutcome(outcome OutcomeLabel) { t.outcomes[outcome]++ }

func TestRecorderInterface(t *testing.T) {
	var r Recorder = newTestRecorder()
	r.IncUnitsChecked(UnitType)
	r.IncUnitsChecked(UnitMember)
	r.IncUnitsChecked(UnitMember)
	r.IncUnknownWords()
	r.SetUniqueWords(4)
	r.IncRunOutcome(OutcomeErrors)

	tr := r.(*testRecorder)
	assert.Equal(t, 1, tr.units[UnitType])
	assert.Equal(t, 2, tr.units[UnitMember])
	assert.Equal(t, 1, tr.unknown)
	assert.Equal(t, 4, tr.unique)
	assert.Equal(t, 1, tr.outcomes[OutcomeErrors])
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	assert.NotPanics(t, func() {
		r.IncUnitsChecked(UnitFile)
		r.IncUnknownWords()
		r.IncSuppressedWords()
		r.IncCheckFailures()
		r.SetUniqueWords(1)
		r.ObserveRunDuration(time.Second)
		r.IncRunOutcome(OutcomeClean)
	})
}
