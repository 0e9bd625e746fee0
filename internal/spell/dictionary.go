package spell

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"

	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
	"git.home.luguber.info/inful/docspell/internal/util/sets"
)

// Dictionary is a named set of known words.
type Dictionary struct {
	name   string
	words  sets.Set[string]
	folded sets.Set[string]
	// byLength indexes words by rune count for suggestion lookups.
	byLength map[int][]string
}

// ParseDictionary reads a word list from r.
func ParseDictionary(name string, r io.Reader) (*Dictionary, error) {
	words, err := readWordList(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryDictionary, "failed to read dictionary").
			WithContext("dictionary", name).
			Build()
	}
	return NewDictionary(name, words...), nil
}

// NewDictionary builds a dictionary from words.
func NewDictionary(name string, words ...string) *Dictionary {
	fold := cases.Fold()
	d := &Dictionary{
		name:     name,
		words:    sets.New[string](),
		folded:   sets.New[string](),
		byLength: make(map[int][]string),
	}
	for _, w := range words {
		if !d.words.AddIfAbsent(w) {
			continue
		}
		d.folded.Add(fold.String(w))
		n := len([]rune(w))
		d.byLength[n] = append(d.byLength[n], w)
	}
	return d
}

// LoadDictionary reads a dictionary file. The path is first looked up in
// fsys (when non-nil) and then on disk, mirroring how bundled word lists
// shadow local files.
func LoadDictionary(fsys fs.FS, path string) (*Dictionary, error) {
	if fsys != nil {
		if f, err := fsys.Open(filepath.ToSlash(path)); err == nil {
			defer func() { _ = f.Close() }()
			return ParseDictionary(path, f)
		}
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.DictionaryError("cannot open dictionary").
			WithCause(err).
			WithContext("dictionary", path).
			Build()
	}
	defer func() { _ = f.Close() }()

	return ParseDictionary(path, f)
}

// LoadWordList reads an ignore file: one word per line, blank lines skipped.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot open ignore file").
			Fatal().
			WithContext("file", path).
			Build()
	}
	defer func() { _ = f.Close() }()

	words, err := readWordList(f)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read ignore file").
			Fatal().
			WithContext("file", path).
			Build()
	}
	return words, nil
}

func readWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}

// Name returns the dictionary's name, usually its path.
func (d *Dictionary) Name() string { return d.name }

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return d.words.Len() }

// Contains reports whether word is in the dictionary exactly.
func (d *Dictionary) Contains(word string) bool { return d.words.Has(word) }

// containsFolded reports whether the case-folded word is in the dictionary.
func (d *Dictionary) containsFolded(folded string) bool { return d.folded.Has(folded) }
