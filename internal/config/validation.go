package config

import (
	"strings"
	"time"

	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
)

// Validate normalizes the enumerations and markup extensions of cfg in place
// and reports the first invalid setting. A configuration without dictionaries is fatal.
func Validate(cfg *Config) error {
	if len(cfg.Dictionaries) == 0 {
		return errors.ConfigError("at least one dictionary must be specified").
			WithContext("option", "dictionaries").
			Build()
	}

	var err error
	if cfg.Report.Echo, err = echoNormalizer.NormalizeWithError(string(cfg.Report.Echo)); err != nil {
		return err
	}
	if cfg.Report.UnknownWordsOrder, err = wordOrderNormalizer.NormalizeWithError(string(cfg.Report.UnknownWordsOrder)); err != nil {
		return err
	}
	if cfg.Report.Summary, err = summaryNormalizer.NormalizeWithError(string(cfg.Report.Summary)); err != nil {
		return err
	}
	if cfg.Logging.Level, err = logLevelNormalizer.NormalizeWithError(string(cfg.Logging.Level)); err != nil {
		return err
	}
	if cfg.Logging.Format, err = logFormatNormalizer.NormalizeWithError(string(cfg.Logging.Format)); err != nil {
		return err
	}

	if cfg.Checker.MaxSuggestions < 0 {
		return errors.ConfigError("checker.max_suggestions must not be negative").
			WithContext("value", cfg.Checker.MaxSuggestions).
			Build()
	}
	if cfg.Checker.MaxDistance < 0 || cfg.Checker.MaxDistance > 4 {
		return errors.ConfigError("checker.max_distance must be between 0 and 4").
			WithContext("value", cfg.Checker.MaxDistance).
			Build()
	}
	for i, ext := range cfg.Markup.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			return errors.ConfigError("markup.extensions must not contain empty entries").
				WithContext("index", i).
				Build()
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Markup.Extensions[i] = ext
	}
	if cfg.Markup.Enabled && len(cfg.Markup.IndexFiles) == 0 {
		return errors.ConfigError("markup.index_files must not be empty when markup checking is enabled").Build()
	}

	if _, err := cfg.Watch.DebounceDuration(); err != nil {
		return err
	}
	if _, err := cfg.Watch.IntervalDuration(); err != nil {
		return err
	}
	return nil
}

// DebounceDuration parses Debounce.
func (w WatchConfig) DebounceDuration() (time.Duration, error) {
	if w.Debounce == "" {
		return defaultDebounce, nil
	}
	return parsePositiveDuration("watch.debounce", w.Debounce)
}

// IntervalDuration parses Interval; zero means periodic runs are disabled.
func (w WatchConfig) IntervalDuration() (time.Duration, error) {
	if w.Interval == "" {
		return 0, nil
	}
	return parsePositiveDuration("watch.interval", w.Interval)
}

func parsePositiveDuration(option, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.ConfigError("invalid duration").
			WithCause(err).
			WithContext("option", option).
			WithContext("value", raw).
			Build()
	}
	if d <= 0 {
		return 0, errors.ConfigError("duration must be positive").
			WithContext("option", option).
			WithContext("value", raw).
			Build()
	}
	return d, nil
}
