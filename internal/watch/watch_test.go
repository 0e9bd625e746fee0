package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
)

type runLog struct {
	mu       sync.Mutex
	triggers []Trigger
}

func (r *runLog) run(_ context.Context, trigger Trigger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.triggers = append(r.triggers, trigger)
	return nil
}

func (r *runLog) count(trigger Trigger) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.triggers {
		if t == trigger {
			n++
		}
	}
	return n
}

func startWatcher(t *testing.T, opts Options, log *runLog) {
	t.Helper()
	w, err := New(opts, log.run)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	})
	require.Eventually(t, func() bool { return log.count(TriggerStartup) == 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherRunsOnChange(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0o755))
	log := &runLog{}
	startWatcher(t, Options{Root: root, Extensions: []string{".go"}, Debounce: 50 * time.Millisecond}, log)

	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "a.go"), []byte("package pkg\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "b.go"), []byte("package pkg\n"), 0o600))

	require.Eventually(t, func() bool { return log.count(TriggerChange) >= 1 }, 5*time.Second, 20*time.Millisecond)
}

func TestWatcherIgnoresIrrelevantFiles(t *testing.T) {
	root := t.TempDir()
	log := &runLog{}
	startWatcher(t, Options{Root: root, Extensions: []string{".go"}, Debounce: 20 * time.Millisecond}, log)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, log.count(TriggerChange))
}

func TestWatcherWatchesExtraFiles(t *testing.T) {
	root := t.TempDir()
	dictDir := t.TempDir()
	dict := filepath.Join(dictDir, "words.txt")
	require.NoError(t, os.WriteFile(dict, []byte("hello\n"), 0o600))

	log := &runLog{}
	startWatcher(t, Options{Root: root, Extensions: []string{".go"}, Files: []string{dict}, Debounce: 20 * time.Millisecond}, log)

	require.NoError(t, os.WriteFile(dict, []byte("hello\nworld\n"), 0o600))
	require.Eventually(t, func() bool { return log.count(TriggerChange) >= 1 }, 5*time.Second, 20*time.Millisecond)
}

func TestWatcherInterval(t *testing.T) {
	log := &runLog{}
	startWatcher(t, Options{Root: t.TempDir(), Interval: 100 * time.Millisecond}, log)

	require.Eventually(t, func() bool { return log.count(TriggerInterval) >= 2 }, 5*time.Second, 20*time.Millisecond)
}

func TestWatcherMissingRoot(t *testing.T) {
	w, err := New(Options{Root: filepath.Join(t.TempDir(), "missing")}, (&runLog{}).run)
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryRuntime))
	assert.Equal(t, errors.ExitRuntime, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}
