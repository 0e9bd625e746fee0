package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Exit codes returned by the docspell CLI.
const (
	ExitOK          = 0
	ExitGeneral     = 1
	ExitValidation  = 2
	ExitSpellErrors = 3
	ExitConfig      = 7
	ExitInternal    = 10
	ExitIO          = 11
	ExitRuntime     = 12
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	classified, ok := AsClassified(err)
	if !ok {
		return ExitGeneral
	}

	switch classified.Category() {
	case CategoryValidation:
		return ExitValidation
	case CategoryConfig, CategoryDictionary:
		return ExitConfig
	case CategoryFileSystem, CategorySource, CategoryReport, CategoryNotFound:
		return ExitIO
	case CategorySpelling:
		return ExitSpellErrors
	case CategoryRuntime:
		return ExitRuntime
	case CategoryInternal:
		return ExitInternal
	default:
		return ExitGeneral
	}
}

// FormatError formats an error for the operator.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	classified, ok := AsClassified(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return "Error: " + classified.Error()
	}

	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(classified.Message())
	if classified.Cause() != nil {
		fmt.Fprintf(&b, ": %v", classified.Cause())
	}

	for _, k := range classified.contextKeys() {
		fmt.Fprintf(&b, "\n  %s: %v", k, classified.Context()[k])
	}
	return b.String()
}

// HandleError logs err, prints it and exits the process with its exit code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	a.logError(err)
	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	os.Exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) logError(err error) {
	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}
	if !a.verbose && classified.Severity() != SeverityFatal {
		return
	}

	a.logger.LogAttrs(context.Background(), slogLevel(classified.Severity()), classified.Message(), classified.LogAttrs()...)
}

func slogLevel(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
