package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docspell/internal/config"
	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
)

const serverSource = `package srv

// Servr handles requests.
type Server struct{}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// newProject lays out a module with one misspelled type doc and a dictionary.
func newProject(t *testing.T) (root, dict string) {
	t.Helper()
	root = t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/demo\n\ngo 1.24\n")
	writeFile(t, filepath.Join(root, "srv", "srv.go"), serverSource)
	dict = filepath.Join(root, "words.txt")
	writeFile(t, dict, "handles\nrequests\n")
	return root, dict
}

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("docspell"), kong.Vars{"version": "test"}, kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseCheckFlags(t *testing.T) {
	cli, ctx := parse(t, "check",
		"--dictionary", "en.txt", "-d", "go.txt",
		"--ignore", "goroutine",
		"--ignorecontaining", "http",
		"--reportfile", "report.txt",
		"--unknownwords", "unknown.txt",
		"--withsuggestions", "--checkhtmlfiles", "--echo", "off",
		"--fail-on-errors",
		"--log-level", "warn",
		"./src")

	assert.Equal(t, "check <root>", ctx.Command())
	assert.Equal(t, []string{"en.txt", "go.txt"}, cli.Check.Dictionary)
	assert.Equal(t, "./src", cli.Check.Root)
	assert.True(t, cli.Check.FailOnErrors)

	o := cli.Check.overrides()
	assert.Equal(t, []string{"goroutine"}, o.Ignore)
	assert.Equal(t, []string{"http"}, o.IgnoreContaining)
	assert.Equal(t, "report.txt", o.ReportFile)
	assert.Equal(t, "unknown.txt", o.UnknownWordsFile)
	assert.Equal(t, "off", o.Echo)
	assert.True(t, o.WithSuggestions)
	assert.True(t, o.CheckMarkup)
	assert.Equal(t, "warn", o.LogLevel)
}

func TestParseDefaults(t *testing.T) {
	cli, ctx := parse(t, "check")
	assert.Equal(t, "check", ctx.Command())
	assert.Equal(t, config.DefaultPath, cli.Config)

	cli, ctx = parse(t, "watch", "--interval", "10m")
	assert.Equal(t, "watch", ctx.Command())
	assert.Equal(t, "10m", cli.Watch.Interval)
}

func TestLoadConfig(t *testing.T) {
	t.Run("default file is optional", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cfg, dictFS, err := loadConfig(&Global{}, &CLI{Config: config.DefaultPath}, SpellFlags{Dictionary: []string{"en.txt"}})
		require.NoError(t, err)
		assert.Nil(t, dictFS)
		assert.Equal(t, []string{"en.txt"}, cfg.Dictionaries)
		assert.Equal(t, ".", cfg.Source.Root)
	})

	t.Run("no dictionary", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, _, err := loadConfig(&Global{}, &CLI{Config: config.DefaultPath}, SpellFlags{})
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		_, _, err := loadConfig(&Global{}, &CLI{Config: filepath.Join(t.TempDir(), "missing.yaml")}, SpellFlags{})
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
	})

	t.Run("log level flag", func(t *testing.T) {
		t.Chdir(t.TempDir())
		g := &Global{}
		cfg, _, err := loadConfig(g, &CLI{Config: config.DefaultPath}, SpellFlags{Dictionary: []string{"en.txt"}, LogLevel: "debug"})
		require.NoError(t, err)
		assert.Equal(t, config.LogLevelDebug, cfg.Logging.Level)
		require.NotNil(t, g.Logger)
		assert.True(t, g.Logger.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, _, err := loadConfig(&Global{}, &CLI{Config: config.DefaultPath}, SpellFlags{Dictionary: []string{"en.txt"}, LogLevel: "trace"})
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})

	t.Run("flags extend the file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "spell.yaml")
		writeFile(t, path, "dictionaries: [en.txt]\nreport:\n  echo: \"off\"\n")

		cfg, dictFS, err := loadConfig(&Global{}, &CLI{Config: path}, SpellFlags{Dictionary: []string{"go.txt"}, Root: "src"})
		require.NoError(t, err)
		assert.NotNil(t, dictFS)
		assert.Equal(t, []string{"en.txt", "go.txt"}, cfg.Dictionaries)
		assert.Equal(t, "src", cfg.Source.Root)
		assert.False(t, cfg.Report.Echo.Enabled())
	})
}

func newTestRunner(t *testing.T, cfg *config.Config) (*runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	require.NoError(t, config.Validate(cfg))
	var stdout, stderr bytes.Buffer
	r := newRunner(cfg, nil, nil)
	r.stdout = &stdout
	r.stderr = &stderr
	r.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return r, &stdout, &stderr
}

func TestRunnerCheck(t *testing.T) {
	root, dict := newProject(t)
	out := filepath.Join(t.TempDir(), "out")

	cfg := config.Default()
	cfg.Dictionaries = []string{dict}
	cfg.Source.Root = root
	cfg.Report.File = filepath.Join(out, "report.txt")
	cfg.Report.UnknownWordsFile = filepath.Join(out, "unknown.txt")
	cfg.Metrics.Textfile = filepath.Join(out, "docspell.prom")

	r, stdout, _ := newTestRunner(t, cfg)
	result, err := r.check()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Errors)
	assert.Equal(t, []string{"Servr"}, result.UnknownWords)

	report, err := os.ReadFile(cfg.Report.File)
	require.NoError(t, err)
	assert.Contains(t, string(report), "Package: example.com/demo/srv")
	assert.Contains(t, string(report), "  Type: srv.Server")
	assert.Contains(t, string(report), "Servr\n")
	assert.Contains(t, string(report), "Error Count: 1")

	unknown, err := os.ReadFile(cfg.Report.UnknownWordsFile)
	require.NoError(t, err)
	assert.Equal(t, "Servr\n", string(unknown))

	prom, err := os.ReadFile(cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "docspell_unknown_words_total 1")

	assert.Contains(t, stdout.String(), "1 unknown word reported (1 unique)")
}

func TestRunnerReportOnStdout(t *testing.T) {
	root, dict := newProject(t)

	cfg := config.Default()
	cfg.Dictionaries = []string{dict}
	cfg.Source.Root = root
	cfg.Ignore.Words = []string{"Servr"}

	r, stdout, stderr := newTestRunner(t, cfg)
	result, err := r.check()
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	assert.Contains(t, stdout.String(), "SpellCheck Results Complete")
	assert.NotContains(t, stdout.String(), "Results:")
	assert.Contains(t, stderr.String(), "No spelling errors found!")
}

func TestRunnerSummaryNone(t *testing.T) {
	root, dict := newProject(t)

	cfg := config.Default()
	cfg.Dictionaries = []string{dict}
	cfg.Source.Root = root
	cfg.Report.File = filepath.Join(t.TempDir(), "report.txt")
	cfg.Report.Summary = config.SummaryNone

	r, stdout, stderr := newTestRunner(t, cfg)
	_, err := r.check()
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunnerIgnoreFile(t *testing.T) {
	root, dict := newProject(t)
	ignore := filepath.Join(root, "ignore.txt")
	writeFile(t, ignore, "Servr\n")

	cfg := config.Default()
	cfg.Dictionaries = []string{dict}
	cfg.Source.Root = root
	cfg.Ignore.Files = []string{ignore}
	cfg.Report.File = filepath.Join(t.TempDir(), "report.txt")

	r, _, _ := newTestRunner(t, cfg)
	result, err := r.check()
	require.NoError(t, err)
	assert.Zero(t, result.Errors)
}

func TestRunnerErrors(t *testing.T) {
	root, dict := newProject(t)

	t.Run("missing dictionary", func(t *testing.T) {
		cfg := config.Default()
		cfg.Dictionaries = []string{filepath.Join(root, "nope.txt")}
		cfg.Source.Root = root
		r, _, _ := newTestRunner(t, cfg)
		_, err := r.check()
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryDictionary))
	})

	t.Run("missing ignore file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Dictionaries = []string{dict}
		cfg.Ignore.Files = []string{filepath.Join(root, "nope.txt")}
		cfg.Source.Root = root
		r, _, _ := newTestRunner(t, cfg)
		_, err := r.check()
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
	})

	t.Run("missing source root", func(t *testing.T) {
		cfg := config.Default()
		cfg.Dictionaries = []string{dict}
		cfg.Source.Root = filepath.Join(root, "nope")
		r, _, _ := newTestRunner(t, cfg)
		_, err := r.check()
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
	})
}

func TestCheckCmdFailOnErrors(t *testing.T) {
	root, dict := newProject(t)
	t.Chdir(t.TempDir())

	cmd := &CheckCmd{
		SpellFlags:   SpellFlags{Root: root, Dictionary: []string{dict}, ReportFile: filepath.Join(t.TempDir(), "report.txt")},
		FailOnErrors: true,
	}
	err := cmd.Run(&Global{}, &CLI{Config: config.DefaultPath, Verbose: true})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategorySpelling))
	assert.Equal(t, errors.ExitSpellErrors, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	cmd.FailOnErrors = false
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: config.DefaultPath, Verbose: true}))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	require.NoError(t, RunInit(path, false))
	require.FileExists(t, path)
	require.Error(t, RunInit(path, false))
	require.NoError(t, RunInit(path, true))
}

func TestWatchOptions(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "spell.yaml")
	writeFile(t, configPath, "dictionaries: [words.txt]\n")
	writeFile(t, filepath.Join(dir, "words.txt"), "word\n")

	cfg := config.Default()
	cfg.Dictionaries = []string{"words.txt", "/abs/en.txt"}
	cfg.Ignore.Files = []string{"ignore.txt"}
	cfg.Markup.Enabled = true
	cfg.Watch.Interval = "1m"
	require.NoError(t, config.Validate(cfg))

	opts, err := watchOptions(cfg, configPath)
	require.NoError(t, err)
	assert.Equal(t, []string{".go", ".html"}, opts.Extensions)
	assert.Equal(t, []string{configPath, filepath.Join(dir, "words.txt"), "/abs/en.txt", "ignore.txt"}, opts.Files)
	assert.Equal(t, 500*time.Millisecond, opts.Debounce)
	assert.Equal(t, time.Minute, opts.Interval)

	cfg.Markup.Enabled = false
	opts, err = watchOptions(cfg, filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{".go"}, opts.Extensions)
	assert.Equal(t, []string{"words.txt", "/abs/en.txt", "ignore.txt"}, opts.Files)
}
