package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsSpecFile(t *testing.T) {
	for path, want := range map[string]bool{
		"prefabs/hud.yaml":  true,
		"arena.YML":         true,
		"notes.txt":         false,
		"prefabs/hud.yaml~": false,
	} {
		if got := isSpecFile(path); got != want {
			t.Errorf("isSpecFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsChangedSpec(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if _, ok := w.Poll(); ok {
		t.Fatal("nothing has changed yet")
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, HUDFile), []byte("loading:\n  label: hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if BaseName(name) != HUDFile {
			t.Errorf("changed file = %s, want %s", name, HUDFile)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	// Closing twice is harmless.
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
