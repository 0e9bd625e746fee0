package commands

import (
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docspell/internal/config"
	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
	"git.home.luguber.info/inful/docspell/internal/gosource"
	"git.home.luguber.info/inful/docspell/internal/logfields"
	"git.home.luguber.info/inful/docspell/internal/metrics"
	"git.home.luguber.info/inful/docspell/internal/spell"
	"git.home.luguber.info/inful/docspell/internal/spellcheck"
)

// runner performs check runs for one validated configuration. Dictionaries
// and sources are read again on every run.
type runner struct {
	cfg *config.Config
	// dictFS resolves relative dictionary paths against the directory of
	// the configuration file before the working directory is tried.
	dictFS fs.FS
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	log    *slog.Logger
}

// loadConfig reads the configuration named by the global flags, applies the
// command-line overrides and validates the result. The default file name is
// optional; an explicitly named file must exist.
func loadConfig(g *Global, root *CLI, flags SpellFlags) (*config.Config, fs.FS, error) {
	path := root.Config
	if path == config.DefaultPath {
		if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	cfg = cfg.WithOverrides(flags.overrides())
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	if !root.Verbose && g != nil {
		g.Logger = setupLogging(os.Stderr, cfg.Logging.Level.SlogLevel(), cfg.Logging.Format)
	}

	var dictFS fs.FS
	if path != "" {
		dictFS = os.DirFS(filepath.Dir(path))
	}
	return cfg, dictFS, nil
}

func newRunner(cfg *config.Config, dictFS fs.FS, log *slog.Logger) *runner {
	if log == nil {
		log = slog.Default()
	}
	return &runner{cfg: cfg, dictFS: dictFS, stdout: os.Stdout, stderr: os.Stderr, now: time.Now, log: log}
}

// newChecker builds a checker with every configured dictionary and ignored word.
func (r *runner) newChecker() (*spell.Checker, error) {
	cfg := r.cfg
	echo := cfg.Report.Echo.Enabled()

	checker := spell.NewChecker(spell.Options{
		CaseInsensitive:         cfg.Checker.CaseInsensitive,
		IgnoreMixedCase:         cfg.Checker.IgnoreMixedCase,
		IgnoreUpperCase:         cfg.Checker.IgnoreUpperCase,
		IgnoreDigitWords:        cfg.Checker.IgnoreDigitWords,
		IgnoreInternetAddresses: cfg.Checker.IgnoreInternetAddresses,
		Suggestions:             cfg.Report.WithSuggestions,
		MaxSuggestions:          cfg.Checker.MaxSuggestions,
		MaxDistance:             cfg.Checker.MaxDistance,
	})

	for _, path := range cfg.Dictionaries {
		dict, err := spell.LoadDictionary(r.dictFS, path)
		if err != nil {
			return nil, err
		}
		checker.AddDictionary(dict)
		if echo {
			r.log.Info("Dictionary", logfields.File(path), logfields.Count(dict.Len()))
		}
	}

	for _, word := range cfg.Checker.DefaultIgnores {
		checker.IgnoreAll(word)
	}
	for _, word := range cfg.Ignore.Words {
		checker.IgnoreAll(word)
		if echo {
			r.log.Info("Ignore", logfields.Word(word))
		}
	}
	for _, path := range cfg.Ignore.Files {
		words, err := spell.LoadWordList(path)
		if err != nil {
			return nil, err
		}
		for _, word := range words {
			checker.IgnoreAll(word)
		}
		if echo {
			r.log.Info("Ignore file", logfields.File(path), logfields.Count(len(words)))
		}
	}
	if echo {
		for _, s := range cfg.Ignore.Containing {
			r.log.Info("Ignore containing", slog.String("substring", s))
		}
	}
	return checker, nil
}

// check performs one full run: load the sources, write the report and the
// unknown words list, then print the summary and the metrics textfile.
func (r *runner) check() (*spellcheck.Result, error) {
	cfg := r.cfg

	checker, err := r.newChecker()
	if err != nil {
		return nil, err
	}

	tree, err := gosource.Load(cfg.Source.Root, gosource.Options{
		IncludeUnexported: cfg.Source.IncludeUnexported,
		PackageScope:      cfg.Source.PackageScope,
		ExcludeDirs:       cfg.Source.ExcludeDirs,
		IndexFiles:        cfg.Markup.IndexFiles,
		ModulePath:        cfg.Source.ModulePath,
	})
	if err != nil {
		return nil, err
	}

	report, closeReport, err := openOutput(cfg.Report.File, r.stdout)
	if err != nil {
		return nil, err
	}

	var unknown io.Writer
	closeUnknown := func() error { return nil }
	if cfg.Report.UnknownWordsFile != "" {
		unknown, closeUnknown, err = openOutput(cfg.Report.UnknownWordsFile, nil)
		if err != nil {
			_ = closeReport()
			return nil, err
		}
	}

	var reg *prom.Registry
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics.Textfile != "" {
		reg = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
	}

	order, err := spellcheck.ParseOrder(string(cfg.Report.UnknownWordsOrder))
	if err != nil {
		_ = closeReport()
		_ = closeUnknown()
		return nil, err
	}

	result, runErr := spellcheck.Run(tree, spellcheck.Options{
		Checker:          checker,
		Report:           report,
		UnknownWords:     unknown,
		Order:            order,
		IgnoreContaining: cfg.Ignore.Containing,
		WithSuggestions:  cfg.Report.WithSuggestions,
		Markup: spellcheck.MarkupOptions{
			Enabled:     cfg.Markup.Enabled,
			Extensions:  cfg.Markup.Extensions,
			DocFilesDir: cfg.Markup.DocFilesDir,
			StripTags:   cfg.Markup.StripTags,
		},
		Now:      r.now,
		Recorder: recorder,
	})

	if err := closeUnknown(); err != nil && runErr == nil {
		runErr = errors.ReportError("failed to close unknown words file").WithCause(err).
			WithContext("file", cfg.Report.UnknownWordsFile).
			Build()
	}
	if err := closeReport(); err != nil && runErr == nil {
		runErr = errors.ReportError("failed to close report file").WithCause(err).
			WithContext("file", cfg.Report.File).
			Build()
	}

	if reg != nil {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			r.log.Warn("Failed to write metrics textfile", logfields.File(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}

	if runErr != nil {
		return result, runErr
	}

	if cfg.Report.Summary != config.SummaryNone {
		// The report owns stdout when it has no file of its own.
		out := r.stdout
		if cfg.Report.File == "" {
			out = r.stderr
		}
		if err := spellcheck.NewFormatter(string(cfg.Report.Summary)).Format(out, result); err != nil {
			r.log.Warn("Failed to print summary", logfields.Error(err))
		}
	}
	return result, nil
}

// openOutput opens path for writing, or returns fallback when path is empty.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, errors.WrapError(err, errors.CategoryReport, "failed to create output directory").
				WithContext("file", path).
				Build()
		}
	}
	// #nosec G304 -- path comes from the user's configuration
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.WrapError(err, errors.CategoryReport, "failed to create output file").
			WithContext("file", path).
			Build()
	}
	return f, f.Close, nil
}
