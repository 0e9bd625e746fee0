package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/docspell/internal/config"
	"git.home.luguber.info/inful/docspell/internal/logfields"
	"git.home.luguber.info/inful/docspell/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	SpellFlags
	Debounce string `name:"debounce" help:"Quiet period before a change triggers a run (default: watch.debounce)"`
	Interval string `name:"interval" help:"Also re-run periodically, e.g. 10m (default: watch.interval)"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, dictFS, err := loadConfig(g, root, w.SpellFlags)
	if err != nil {
		return err
	}
	if w.Debounce != "" {
		cfg.Watch.Debounce = w.Debounce
	}
	if w.Interval != "" {
		cfg.Watch.Interval = w.Interval
	}

	opts, err := watchOptions(cfg, root.Config)
	if err != nil {
		return err
	}

	log := g.logger()
	r := newRunner(cfg, dictFS, log)
	watcher, err := watch.New(opts, func(_ context.Context, trigger watch.Trigger) error {
		log.Info("Running spell check", slog.String("trigger", string(trigger)))
		_, err := r.check()
		return err
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Watching for changes", logfields.Path(cfg.Source.Root))
	return watcher.Run(ctx)
}

// watchOptions derives what to watch from cfg: Go and markup files under the
// source root plus the configuration file and every word list.
func watchOptions(cfg *config.Config, configPath string) (watch.Options, error) {
	debounce, err := cfg.Watch.DebounceDuration()
	if err != nil {
		return watch.Options{}, err
	}
	interval, err := cfg.Watch.IntervalDuration()
	if err != nil {
		return watch.Options{}, err
	}

	extensions := []string{".go"}
	if cfg.Markup.Enabled {
		extensions = append(extensions, cfg.Markup.Extensions...)
	}

	var files []string
	if _, err := os.Stat(configPath); err == nil {
		files = append(files, configPath)
	}
	for _, dict := range cfg.Dictionaries {
		files = append(files, dictionaryPath(dict, configPath))
	}
	files = append(files, cfg.Ignore.Files...)

	return watch.Options{
		Root:        cfg.Source.Root,
		ExcludeDirs: cfg.Source.ExcludeDirs,
		Extensions:  extensions,
		Files:       files,
		Debounce:    debounce,
		Interval:    interval,
	}, nil
}

// dictionaryPath returns the file a dictionary is loaded from: relative to
// the configuration file when it exists there, as given otherwise.
func dictionaryPath(dict, configPath string) string {
	if filepath.IsAbs(dict) {
		return dict
	}
	candidate := filepath.Join(filepath.Dir(configPath), dict)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return dict
}
