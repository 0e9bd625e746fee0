package spellcheck

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter writes a run summary.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// Format outputs the summary in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	lines := []string{
		strings.Repeat("━", 60),
		"Results:",
		fmt.Sprintf("  %d unit%s checked", result.UnitsChecked, pluralize(result.UnitsChecked)),
	}
	if result.MarkupFiles > 0 {
		lines = append(lines, fmt.Sprintf("  %d markup file%s checked", result.MarkupFiles, pluralize(result.MarkupFiles)))
	}
	lines = append(lines,
		fmt.Sprintf("  %d unknown word%s reported (%d unique)", result.Errors, pluralize(result.Errors), len(result.UnknownWords)))
	if result.Suppressed > 0 {
		lines = append(lines, fmt.Sprintf("  %d suppressed by ignore-containing rules", result.Suppressed))
	}
	for _, warn := range result.Warnings {
		lines = append(lines, fmt.Sprintf("  ⚠ %s: %s", warn.Package, warn.Message))
	}
	for _, fail := range result.CheckFailures {
		lines = append(lines, fmt.Sprintf("  ✗ %s: %s", fail.Unit, fail.Error))
	}
	lines = append(lines, "", finalMessage(result))

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func finalMessage(result *Result) string {
	switch {
	case result.HasErrors():
		return "❌ Documentation has spelling errors."
	case len(result.CheckFailures) > 0:
		return "⚠️  Some text could not be checked."
	default:
		return "✨ No spelling errors found!"
	}
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// Format outputs the summary in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string) Formatter {
	switch format {
	case "json":
		return &JSONFormatter{}
	default:
		return &TextFormatter{}
	}
}

// pluralize returns "s" if count != 1, otherwise empty string.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
