package save

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBackends(t *testing.T) {
	fileBackend, err := NewFileBackend(filepath.Join(t.TempDir(), "saves"))
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	backends := []struct {
		name string
		b    Backend
	}{
		{"memory", NewMemoryBackend()},
		{"memory_zero_value", &MemoryBackend{}},
		{"file", fileBackend},
	}

	for _, c := range backends {
		t.Run(c.name, func(t *testing.T) {
			if _, ok := c.b.Get("missing"); ok {
				t.Fatalf("missing key should not be found")
			}
			if err := c.b.Set("k", "v1"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := c.b.Set("k", "v2"); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			if v, ok := c.b.Get("k"); !ok || v != "v2" {
				t.Fatalf("Get = %q, %v", v, ok)
			}
			if err := c.b.Remove("k"); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if _, ok := c.b.Get("k"); ok {
				t.Fatalf("key should be gone after Remove")
			}
			if err := c.b.Remove("k"); err != nil {
				t.Fatalf("Remove of missing key: %v", err)
			}
		})
	}
}

func TestFileBackendLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	if err := b.Set("../escape", "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != ".._escape.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected directory contents: %v", names)
	}
}

func TestStoreOnFileBackend(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	if _, err := NewStore(b).CompleteLevel(1, 1); err != nil {
		t.Fatalf("CompleteLevel: %v", err)
	}

	reopened, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	st := NewStore(reopened).Load()
	if st.XP != 20 || st.StarsFor(1) != 2 || st.LevelsUnlocked != 2 {
		t.Fatalf("unexpected reloaded state %+v", st)
	}
}
