// Package watch re-runs a check when the watched sources change and,
// optionally, on a fixed interval.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
	"git.home.luguber.info/inful/docspell/internal/logfields"
	"git.home.luguber.info/inful/docspell/internal/util/sets"
)

// Trigger names what caused a run.
type Trigger string

const (
	TriggerStartup  Trigger = "startup"
	TriggerChange   Trigger = "change"
	TriggerInterval Trigger = "interval"
)

// RunFunc performs one check. Runs never overlap.
type RunFunc func(ctx context.Context, trigger Trigger) error

// Options configures a Watcher.
type Options struct {
	// Root is watched recursively.
	Root string
	// ExcludeDirs are directory names not descended into, in addition to
	// hidden and underscore-prefixed ones.
	ExcludeDirs []string
	// Extensions limits change events below Root to these file extensions;
	// every file counts when empty.
	Extensions []string
	// Files are watched individually (configuration, dictionaries, ...).
	Files []string
	// Debounce delays a run until changes have settled.
	Debounce time.Duration
	// Interval re-runs the check periodically when positive.
	Interval time.Duration
}

// Watcher drives a RunFunc from file system events and a schedule.
type Watcher struct {
	opts    Options
	run     RunFunc
	fsw     *fsnotify.Watcher
	files   sets.Set[string]
	changes chan struct{}
	pending chan Trigger
}

// New creates a watcher for opts. Call Run to start it.
func New(opts Options, run RunFunc) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRuntime, "failed to create file watcher").Fatal().Build()
	}
	return &Watcher{
		opts:    opts,
		run:     run,
		fsw:     fsw,
		files:   sets.New[string](),
		changes: make(chan struct{}, 1),
		pending: make(chan Trigger, 1),
	}, nil
}

// Run performs a first check, then re-runs it on changes and on the
// interval until ctx is done. Failed runs are logged and do not stop the
// watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	if err := w.addTree(w.opts.Root); err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "failed to watch source root").
			Fatal().
			WithContext("path", w.opts.Root).
			Build()
	}
	for _, f := range w.opts.Files {
		if err := w.addFile(f); err != nil {
			return errors.WrapError(err, errors.CategoryRuntime, "failed to watch file").
				Fatal().
				WithContext("file", f).
				Build()
		}
	}

	if w.opts.Interval > 0 {
		s, err := w.schedule()
		if err != nil {
			return errors.WrapError(err, errors.CategoryRuntime, "failed to schedule periodic checks").
				Fatal().
				WithContext("interval", w.opts.Interval.String()).
				Build()
		}
		defer func() {
			if err := s.Shutdown(); err != nil {
				slog.Error("Error stopping scheduler", logfields.Error(err))
			}
		}()
	}

	go w.watchLoop(ctx)
	go w.debounceLoop(ctx)

	slog.Info("Watching for changes",
		logfields.Path(w.opts.Root),
		slog.Duration("debounce", w.opts.Debounce),
		slog.Duration("interval", w.opts.Interval))

	w.enqueue(TriggerStartup)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watcher")
			return nil
		case trigger := <-w.pending:
			w.runOnce(ctx, trigger)
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context, trigger Trigger) {
	start := time.Now()
	slog.Info("Running check", slog.String("trigger", string(trigger)))
	if err := w.run(ctx, trigger); err != nil {
		slog.Error("Check failed", slog.String("trigger", string(trigger)), logfields.Error(err))
		return
	}
	slog.Debug("Check finished", logfields.DurationMS(float64(time.Since(start).Milliseconds())))
}

func (w *Watcher) schedule() (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	_, err = s.NewJob(
		gocron.DurationJob(w.opts.Interval),
		gocron.NewTask(w.enqueue, TriggerInterval),
		gocron.WithName("periodic-check"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to create periodic check job: %w", err)
	}
	s.Start()
	return s, nil
}

// enqueue requests a run; requests made while one is pending are dropped.
func (w *Watcher) enqueue(trigger Trigger) {
	select {
	case w.pending <- trigger:
	default:
	}
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				slog.Warn("Cannot watch new directory", logfields.Directory(event.Name), logfields.Error(err))
			}
			w.notify()
			return
		}
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.relevant(event.Name) {
		return
	}
	slog.Debug("Change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
	w.notify()
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// debounceLoop turns bursts of changes into one run.
func (w *Watcher) debounceLoop(ctx context.Context) {
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.changes:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.opts.Debounce, func() { w.enqueue(TriggerChange) })
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	abs, err := filepath.Abs(name)
	if err == nil && w.files.Has(abs) {
		return true
	}
	if len(w.opts.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	return slices.ContainsFunc(w.opts.Extensions, func(e string) bool { return strings.EqualFold(e, ext) })
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if p != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || slices.Contains(w.opts.ExcludeDirs, name)) {
			return fs.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", p, err)
		}
		return nil
	})
}

// addFile watches the directory containing path, which survives editors
// that replace files on save.
func (w *Watcher) addFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	w.files.Add(abs)
	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch directory of %s: %w", path, err)
	}
	return nil
}
