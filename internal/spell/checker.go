package spell

import (
	stderrors "errors"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"git.home.luguber.info/inful/docspell/internal/util/sets"
)

var (
	// ErrNoDictionary is returned by CheckText when no dictionary was added.
	ErrNoDictionary = stderrors.New("spell: no dictionary configured")
	// ErrInvalidText is returned by CheckText for text that is not valid UTF-8.
	ErrInvalidText = stderrors.New("spell: text is not valid UTF-8")
)

// Event is raised once per unknown word.
type Event struct {
	Word        string
	Suggestions []string
	// Offset is the byte offset of Word in the checked text.
	Offset int
}

// Listener receives events synchronously during CheckText.
type Listener func(Event)

// Options configures a Checker.
type Options struct {
	// CaseInsensitive matches words against dictionaries after Unicode case folding.
	CaseInsensitive bool
	// IgnoreMixedCase skips words with an upper-case letter after the first
	// letter and at least one lower-case letter, such as "JavaDoc".
	IgnoreMixedCase bool
	// IgnoreUpperCase skips all upper-case words such as "HTTP".
	IgnoreUpperCase bool
	// IgnoreDigitWords skips words containing a digit.
	IgnoreDigitWords bool
	// IgnoreInternetAddresses skips URLs and e-mail addresses.
	IgnoreInternetAddresses bool
	// Suggestions enables candidate corrections on events.
	Suggestions    bool
	MaxSuggestions int
	MaxDistance    int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		IgnoreMixedCase:         true,
		IgnoreUpperCase:         true,
		IgnoreDigitWords:        true,
		IgnoreInternetAddresses: true,
		MaxSuggestions:          10,
		MaxDistance:             2,
	}
}

// Checker checks text against its dictionaries. It is not safe for
// concurrent use.
type Checker struct {
	opts      Options
	dicts     []*Dictionary
	ignored   sets.Set[string]
	listeners []Listener
	caser     cases.Caser
}

// NewChecker creates a checker with no dictionaries.
func NewChecker(opts Options) *Checker {
	return &Checker{
		opts:    opts,
		ignored: sets.New[string](),
		caser:   cases.Fold(),
	}
}

// AddDictionary adds d to the dictionaries consulted by CheckText.
func (c *Checker) AddDictionary(d *Dictionary) {
	if d != nil {
		c.dicts = append(c.dicts, d)
	}
}

// HasDictionary reports whether at least one dictionary was added.
func (c *Checker) HasDictionary() bool { return len(c.dicts) > 0 }

// IgnoreAll makes the checker accept word everywhere.
func (c *Checker) IgnoreAll(word string) {
	c.ignored.Add(word)
	if c.opts.CaseInsensitive {
		c.ignored.Add(c.fold(word))
	}
}

// OnError registers l to receive events.
func (c *Checker) OnError(l Listener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

// CheckText raises one event per unknown word of text, in text order, and
// returns once every listener has handled them.
func (c *Checker) CheckText(text string) error {
	if len(c.dicts) == 0 {
		return ErrNoDictionary
	}
	if !utf8.ValidString(text) {
		return ErrInvalidText
	}

	for _, tok := range tokenize(text, c.opts.IgnoreInternetAddresses) {
		if c.accepts(tok.Text) {
			continue
		}
		ev := Event{Word: tok.Text, Offset: tok.Offset}
		if c.opts.Suggestions {
			ev.Suggestions = c.Suggest(tok.Text)
		}
		for _, l := range c.listeners {
			l(ev)
		}
	}
	return nil
}

// Suggest returns ranked corrections for word regardless of the Suggestions
// option. A zero MaxSuggestions or MaxDistance falls back to DefaultOptions.
func (c *Checker) Suggest(word string) []string {
	limit, maxDist := c.opts.MaxSuggestions, c.opts.MaxDistance
	if limit <= 0 {
		limit = DefaultOptions().MaxSuggestions
	}
	if maxDist <= 0 {
		maxDist = DefaultOptions().MaxDistance
	}
	return suggest(word, c.dicts, c.fold, limit, maxDist)
}

func (c *Checker) accepts(word string) bool {
	if c.ignored.Has(word) || (c.opts.CaseInsensitive && c.ignored.Has(c.fold(word))) {
		return true
	}
	if c.opts.IgnoreDigitWords && hasDigit(word) {
		return true
	}
	if c.opts.IgnoreUpperCase && isUpperCase(word) {
		return true
	}
	if c.opts.IgnoreMixedCase && isMixedCase(word) {
		return true
	}
	return c.known(word)
}

func (c *Checker) known(word string) bool {
	for _, d := range c.dicts {
		if d.Contains(word) {
			return true
		}
	}

	if c.opts.CaseInsensitive {
		folded := c.fold(word)
		for _, d := range c.dicts {
			if d.containsFolded(folded) {
				return true
			}
		}
		return false
	}

	// A capitalised word is correct when its lower-case form is, so sentence
	// starts are not flagged.
	if lower, ok := decapitalize(word); ok {
		for _, d := range c.dicts {
			if d.Contains(lower) {
				return true
			}
		}
	}
	return false
}

func (c *Checker) fold(s string) string {
	return c.caser.String(s)
}

func hasDigit(word string) bool {
	for _, r := range word {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func isUpperCase(word string) bool {
	letters := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 1
}

func isMixedCase(word string) bool {
	upperAfterFirst, lower := false, false
	first := true
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsLower(r) {
			lower = true
		} else if unicode.IsUpper(r) && !first {
			upperAfterFirst = true
		}
		first = false
	}
	return upperAfterFirst && lower
}

func decapitalize(word string) (string, bool) {
	r, size := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(r) {
		return "", false
	}
	return string(unicode.ToLower(r)) + word[size:], true
}
