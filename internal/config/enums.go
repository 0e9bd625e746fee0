package config

import (
	"log/slog"

	"git.home.luguber.info/inful/docspell/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer("logging level", map[string]LogLevel{
	"debug": LogLevelDebug,
	"info":  LogLevelInfo,
	"warn":  LogLevelWarn,
	"error": LogLevelError,
}, LogLevelInfo)

func NormalizeLogLevel(raw string) LogLevel {
	return logLevelNormalizer.Normalize(raw)
}

// SlogLevel maps the level onto slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch NormalizeLogLevel(string(l)) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer("logging format", map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

func NormalizeLogFormat(raw string) LogFormat {
	return logFormatNormalizer.Normalize(raw)
}

// EchoMode controls whether the configured inputs are logged at startup.
type EchoMode string

const (
	EchoOn  EchoMode = "on"
	EchoOff EchoMode = "off"
)

var echoNormalizer = normalization.NewNormalizer("echo", map[string]EchoMode{
	"on":  EchoOn,
	"off": EchoOff,
}, EchoOn)

// Enabled reports whether inputs are echoed.
func (e EchoMode) Enabled() bool { return echoNormalizer.Normalize(string(e)) == EchoOn }

// WordOrder is the order of the unknown words file.
type WordOrder string

const (
	WordOrderSorted    WordOrder = "sorted"
	WordOrderInsertion WordOrder = "insertion"
)

var wordOrderNormalizer = normalization.NewNormalizer("unknown word order", map[string]WordOrder{
	"sorted":    WordOrderSorted,
	"insertion": WordOrderInsertion,
}, WordOrderSorted)

// SummaryFmt is the format of the run summary printed on stdout.
type SummaryFmt string

const (
	SummaryText SummaryFmt = "text"
	SummaryJSON SummaryFmt = "json"
	SummaryNone SummaryFmt = "none"
)

var summaryNormalizer = normalization.NewNormalizer("summary format", map[string]SummaryFmt{
	"text": SummaryText,
	"json": SummaryJSON,
	"none": SummaryNone,
}, SummaryText)
