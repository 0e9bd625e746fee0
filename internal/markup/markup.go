// Package markup lists and reads the loose markup files that belong to a
// documented package (package.html, files under doc-files, ...), and turns
// their content into the text handed to the spell checker.
package markup

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
)

// DefaultExtensions are the markup file extensions checked when none are configured.
var DefaultExtensions = []string{".html"}

// Files returns the regular files in dir whose extension matches one of
// extensions, compared case-insensitively, sorted by name. Subdirectories are
// not descended into.
func Files(dir string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot list markup directory").
			Fatal().
			WithContext("directory", dir).
			Build()
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if slices.ContainsFunc(extensions, func(e string) bool { return strings.EqualFold(e, ext) }) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// ReadFile returns the content of a markup file as a string. Content that is
// not valid UTF-8 is decoded as ISO-8859-1, which never fails.
func ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "markup file does not exist").
			Fatal().
			WithContext("file", path).
			Build()
	}
	if info.IsDir() {
		return "", errors.FileSystemError("markup file is a directory").
			Fatal().
			WithContext("file", path).
			Build()
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "cannot read markup file").
			Fatal().
			WithContext("file", path).
			Build()
	}
	return decode(data), nil
}

func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(bytes.ToValidUTF8(data, []byte("�")))
	}
	return string(out)
}

// BodyText returns content from its first "<body" tag onward, matched
// case-insensitively, or the whole content when there is no body tag.
func BodyText(content string) string {
	if i := indexFoldASCII(content, "<body"); i >= 0 {
		return content[i:]
	}
	return content
}

// indexFoldASCII is strings.Index with ASCII case folding. needle must be ASCII.
func indexFoldASCII(s, needle string) int {
	n := len(needle)
	for i := 0; i+n <= len(s); i++ {
		if asciiEqualFold(s[i:i+n], needle) {
			return i
		}
	}
	return -1
}

func asciiEqualFold(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
