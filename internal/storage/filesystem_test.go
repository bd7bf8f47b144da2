package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputDirSave(t *testing.T) {
	dir, err := NewOutputDir(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("NewOutputDir: %v", err)
	}

	path, err := dir.Save(context.Background(), "ramadan/classic.png", []byte("png"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir.Root(), "ramadan", "classic.png"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "png" {
		t.Fatalf("read back = %q, %v", got, err)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestOutputDirRejectsEscapes(t *testing.T) {
	dir, err := NewOutputDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewOutputDir: %v", err)
	}
	for _, name := range []string{"", "  ", "../x.png", "a/../../x.png", "."} {
		if _, err := dir.Save(context.Background(), name, nil); err == nil {
			t.Errorf("Save(%q) succeeded, want error", name)
		}
	}
	if _, err := NewOutputDir(" "); err == nil {
		t.Error("NewOutputDir(blank) succeeded")
	}
}

func TestOutputDirHonoursContext(t *testing.T) {
	dir, err := NewOutputDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewOutputDir: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dir.Save(ctx, "x.png", nil); err == nil {
		t.Fatal("Save with cancelled context succeeded")
	}
}
