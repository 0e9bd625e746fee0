package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docspell/internal/config"
)

// Global context passed to subcommands. Logger is replaced once the
// configuration's logging section has been applied.
type Global struct {
	Logger *slog.Logger
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docspell.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check CheckCmd `cmd:"" default:"withargs" help:"Spell-check the documentation of a Go source tree"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	Watch WatchCmd `cmd:"" help:"Re-run the check whenever sources or word lists change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	setupLogging(os.Stderr, level, config.LogFormatText)
	return nil
}

// SpellFlags are the options shared by check and watch. Each one overrides
// or extends the matching configuration setting.
type SpellFlags struct {
	Root             string   `arg:"" optional:"" help:"Source root (default: source.root from the configuration)"`
	Dictionary       []string `name:"dictionary" short:"d" help:"Dictionary word list file (repeatable)"`
	Ignore           []string `name:"ignore" help:"Word accepted everywhere (repeatable)"`
	IgnoreFile       []string `name:"ignorefile" help:"File of words accepted everywhere (repeatable)"`
	IgnoreContaining []string `name:"ignorecontaining" help:"Drop reported words containing this string (repeatable)"`
	ReportFile       string   `name:"reportfile" help:"Write the report to this file instead of stdout"`
	UnknownWords     string   `name:"unknownwords" help:"Write the distinct unknown words to this file"`
	WithSuggestions  bool     `name:"withsuggestions" help:"Write suggested corrections after each word"`
	CheckHTMLFiles   bool     `name:"checkhtmlfiles" help:"Also check each package's markup files"`
	Echo             string   `name:"echo" help:"Log the configured inputs (on|off)"`
	LogLevel         string   `name:"log-level" help:"Log level: debug, info, warn or error (default: logging.level)"`
}

func (f SpellFlags) overrides() config.Overrides {
	return config.Overrides{
		Dictionaries:     f.Dictionary,
		Ignore:           f.Ignore,
		IgnoreFiles:      f.IgnoreFile,
		IgnoreContaining: f.IgnoreContaining,
		ReportFile:       f.ReportFile,
		UnknownWordsFile: f.UnknownWords,
		Echo:             f.Echo,
		Root:             f.Root,
		WithSuggestions:  f.WithSuggestions,
		CheckMarkup:      f.CheckHTMLFiles,
		LogLevel:         f.LogLevel,
	}
}

func setupLogging(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
