package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWatcherDeliversMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(func(p string) bool { return strings.HasSuffix(p, ".json") }, dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := filepath.Join(dir, "level01.json")
	if err := os.WriteFile(want, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != want {
			t.Fatalf("expected event for %s, got %s", want, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(nil, t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("expected Events to be closed")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Events was not closed")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(nil, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error watching a missing directory")
	}
}
