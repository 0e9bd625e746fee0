package spellcheck

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"git.home.luguber.info/inful/docspell/internal/docmodel"
	"git.home.luguber.info/inful/docspell/internal/spell"
)

// fakeChecker flags the words listed in unknown, in text order, with the
// configured suggestions. Texts containing "BOOM" fail.
type fakeChecker struct {
	unknown   map[string][]string
	listeners []spell.Listener
	checked   []string
	noDicts   bool
}

func newFakeChecker(words ...string) *fakeChecker {
	fc := &fakeChecker{unknown: map[string][]string{}}
	for _, w := range words {
		fc.unknown[w] = nil
	}
	return fc
}

func (f *fakeChecker) OnError(l spell.Listener) { f.listeners = append(f.listeners, l) }

func (f *fakeChecker) HasDictionary() bool { return !f.noDicts }

func (f *fakeChecker) CheckText(text string) error {
	f.checked = append(f.checked, text)
	if strings.Contains(text, "BOOM") {
		return errors.New("checker exploded")
	}
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,;:!?<>\"'")
		suggestions, ok := f.unknown[word]
		if !ok {
			continue
		}
		for _, l := range f.listeners {
			l(spell.Event{Word: word, Suggestions: suggestions})
		}
	}
	return nil
}

type failingWriter struct {
	after int
	n     int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n >= w.after {
		return 0, errors.New("disk full")
	}
	w.n++
	return len(p), nil
}

var fixedTime = time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func newPackage(name string) *docmodel.Package {
	return &docmodel.Package{Name: name, ImportPath: "example.com/" + name}
}

const (
	herald = "**************************************************************************************\n" +
		"SpellCheck Results\n" +
		"Fri Jan 02 03:04:05 UTC 2026\n" +
		"**************************************************************************************\n"
	packageRuleLine = "*********************************************"
	typeRuleLine    = "  ================================================"
	memberRuleLine  = "    --------------------------------------"
)

func footer(n int) string {
	return "\n" + packageRuleLine + "\n   SpellCheck Results Complete \n   Error Count: " +
		strconv.Itoa(n) + "\n" + packageRuleLine + "\n\n"
}
