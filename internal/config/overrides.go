package config

// Overrides carries command-line options. List options are appended to the
// configured lists; scalar options replace the configured value when set.
type Overrides struct {
	Dictionaries     []string
	Ignore           []string
	IgnoreFiles      []string
	IgnoreContaining []string

	ReportFile       string
	UnknownWordsFile string
	Echo             string
	Root             string
	LogLevel         string

	WithSuggestions bool
	CheckMarkup     bool
}

// WithOverrides applies o to cfg and returns cfg.
func (cfg *Config) WithOverrides(o Overrides) *Config {
	cfg.Dictionaries = append(cfg.Dictionaries, o.Dictionaries...)
	cfg.Ignore.Words = append(cfg.Ignore.Words, o.Ignore...)
	cfg.Ignore.Files = append(cfg.Ignore.Files, o.IgnoreFiles...)
	cfg.Ignore.Containing = append(cfg.Ignore.Containing, o.IgnoreContaining...)

	if o.ReportFile != "" {
		cfg.Report.File = o.ReportFile
	}
	if o.UnknownWordsFile != "" {
		cfg.Report.UnknownWordsFile = o.UnknownWordsFile
	}
	if o.Echo != "" {
		cfg.Report.Echo = EchoMode(o.Echo)
	}
	if o.Root != "" {
		cfg.Source.Root = o.Root
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = LogLevel(o.LogLevel)
	}
	if o.WithSuggestions {
		cfg.Report.WithSuggestions = true
	}
	if o.CheckMarkup {
		cfg.Markup.Enabled = true
	}
	return cfg
}
