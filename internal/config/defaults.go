package config

import "time"

const (
	// DefaultPath is the configuration file read when none is given.
	DefaultPath = "docspell.yaml"

	defaultDebounce       = 500 * time.Millisecond
	defaultMaxSuggestions = 10
	defaultMaxDistance    = 2
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Checker: CheckerConfig{
			IgnoreMixedCase:         true,
			IgnoreUpperCase:         true,
			IgnoreDigitWords:        true,
			IgnoreInternetAddresses: true,
			DefaultIgnores:          []string{"e.g", "i.e"},
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset values. Booleans are left alone; their defaults
// come from Default, which loaded files start from.
func ApplyDefaults(cfg *Config) {
	if cfg.Report.UnknownWordsOrder == "" {
		cfg.Report.UnknownWordsOrder = WordOrderSorted
	}
	if cfg.Report.Echo == "" {
		cfg.Report.Echo = EchoOn
	}
	if cfg.Report.Summary == "" {
		cfg.Report.Summary = SummaryText
	}
	if len(cfg.Markup.IndexFiles) == 0 {
		cfg.Markup.IndexFiles = []string{"package.html", "overview.html"}
	}
	if len(cfg.Markup.Extensions) == 0 {
		cfg.Markup.Extensions = []string{".html"}
	}
	if cfg.Markup.DocFilesDir == "" {
		cfg.Markup.DocFilesDir = "doc-files"
	}
	if cfg.Checker.MaxSuggestions == 0 {
		cfg.Checker.MaxSuggestions = defaultMaxSuggestions
	}
	if cfg.Checker.MaxDistance == 0 {
		cfg.Checker.MaxDistance = defaultMaxDistance
	}
	if cfg.Source.Root == "" {
		cfg.Source.Root = "."
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = defaultDebounce.String()
	}
}
