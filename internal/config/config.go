// Package config loads, defaults and validates the docspell configuration.
package config

// Config is the docspell configuration file. Every option can also be given
// on the command line; see Overrides.
type Config struct {
	// Dictionaries are word list files, one word per line.
	Dictionaries []string      `yaml:"dictionaries"`
	Ignore       IgnoreConfig  `yaml:"ignore"`
	Report       ReportConfig  `yaml:"report"`
	Markup       MarkupConfig  `yaml:"markup"`
	Checker      CheckerConfig `yaml:"checker"`
	Source       SourceConfig  `yaml:"source"`
	Logging      LoggingConfig `yaml:"logging"`
	Metrics      MetricsConfig `yaml:"metrics"`
	Watch        WatchConfig   `yaml:"watch"`
}

// IgnoreConfig lists words that are never reported.
type IgnoreConfig struct {
	Words []string `yaml:"words"` // accepted by the checker everywhere
	Files []string `yaml:"files"` // files of words, one per line
	// Containing drops reported words that contain any of these strings.
	Containing []string `yaml:"containing"`
}

// ReportConfig controls the report and the unknown words list.
type ReportConfig struct {
	File              string     `yaml:"file"`               // stdout when empty
	UnknownWordsFile  string     `yaml:"unknown_words_file"` // not written when empty
	UnknownWordsOrder WordOrder  `yaml:"unknown_words_order"`
	WithSuggestions   bool       `yaml:"with_suggestions"`
	Echo              EchoMode   `yaml:"echo"`
	Summary           SummaryFmt `yaml:"summary"`
}

// MarkupConfig controls the check of the markup files of each package.
type MarkupConfig struct {
	Enabled bool `yaml:"enabled"`
	// IndexFiles are looked up in each package directory; a package without
	// one has no markup files.
	IndexFiles  []string `yaml:"index_files"`
	Extensions  []string `yaml:"extensions"`
	DocFilesDir string   `yaml:"doc_files_dir"`
	StripTags   bool     `yaml:"strip_tags"`
}

// CheckerConfig tunes the spell checker.
type CheckerConfig struct {
	CaseInsensitive         bool     `yaml:"case_insensitive"`
	IgnoreMixedCase         bool     `yaml:"ignore_mixed_case"`
	IgnoreUpperCase         bool     `yaml:"ignore_upper_case"`
	IgnoreDigitWords        bool     `yaml:"ignore_digit_words"`
	IgnoreInternetAddresses bool     `yaml:"ignore_internet_addresses"`
	MaxSuggestions          int      `yaml:"max_suggestions"`
	MaxDistance             int      `yaml:"max_distance"`
	DefaultIgnores          []string `yaml:"default_ignores"`
}

// SourceConfig selects the Go sources to check.
type SourceConfig struct {
	Root              string   `yaml:"root"`
	ModulePath        string   `yaml:"module_path"`
	IncludeUnexported bool     `yaml:"include_unexported"`
	PackageScope      bool     `yaml:"package_scope"`
	ExcludeDirs       []string `yaml:"exclude_dirs"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig represents metrics configuration.
type MetricsConfig struct {
	// Textfile receives Prometheus metrics after each run when set.
	Textfile string `yaml:"textfile"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
	// Interval re-runs the check periodically; disabled when empty.
	Interval string `yaml:"interval"`
}
