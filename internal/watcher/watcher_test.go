package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MrLemur/commitwatch/internal/watcher"
)

const debounce = 100 * time.Millisecond

func startWatcher(t *testing.T, dir string) *watcher.Watcher {
	t.Helper()

	w, err := watcher.New(dir, debounce)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go w.Run(ctx)
	return w
}

func expectTrigger(t *testing.T, w *watcher.Watcher) {
	t.Helper()
	select {
	case <-w.Triggers:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a trigger, got none")
	}
}

func expectNoTrigger(t *testing.T, w *watcher.Watcher, within time.Duration) {
	t.Helper()
	select {
	case <-w.Triggers:
		t.Fatal("expected no trigger")
	case <-time.After(within):
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcher(t *testing.T) {
	t.Parallel()

	t.Run("should coalesce a burst of file saves into one trigger", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := startWatcher(t, dir)

		for i := 0; i < 5; i++ {
			writeFile(t, filepath.Join(dir, "file"+string(rune('a'+i))+".go"), "package main\n")
			time.Sleep(10 * time.Millisecond)
		}

		expectTrigger(t, w)
		expectNoTrigger(t, w, 4*debounce)
	})

	t.Run("should ignore events under the .git directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
		w := startWatcher(t, dir)

		writeFile(t, filepath.Join(dir, ".git", "index"), "ref: refs/heads/main\n")

		expectNoTrigger(t, w, 5*debounce)
	})

	t.Run("should watch directories created after start", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := startWatcher(t, dir)

		sub := filepath.Join(dir, "pkg")
		require.NoError(t, os.Mkdir(sub, 0o755))
		expectTrigger(t, w)

		writeFile(t, filepath.Join(sub, "pkg.go"), "package pkg\n")
		expectTrigger(t, w)
	})

	t.Run("should queue at most one trigger while none are consumed", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := startWatcher(t, dir)

		writeFile(t, filepath.Join(dir, "one.go"), "package main\n")
		time.Sleep(3 * debounce)
		writeFile(t, filepath.Join(dir, "two.go"), "package main\n")
		time.Sleep(3 * debounce)

		expectTrigger(t, w)
		expectNoTrigger(t, w, 2*debounce)
	})
}
