package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteReadRemove(t *testing.T) {
	fs := New()
	dir := t.TempDir()

	path := filepath.Join(dir, "exports", "quote-square-1.png")
	if err := fs.WriteFile(path, []byte("png")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "png" {
		t.Errorf("expected %q, got %q", "png", data)
	}

	if exists, err := fs.Exists(path); err != nil || !exists {
		t.Fatalf("expected file to exist, got %v %v", exists, err)
	}

	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if exists, _ := fs.Exists(path); exists {
		t.Error("expected file to be removed")
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "debug", "square")

	if err := fs.MkdirAll(path); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if exists, _ := fs.Exists(path); !exists {
		t.Error("expected directory to exist")
	}
}

func TestFileSystem_ListFiles(t *testing.T) {
	fs := New()
	dir := t.TempDir()

	for _, name := range []string{"b.ttf", "a.TTF", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.ttf"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := fs.ListFiles(dir, ".ttf")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}

	expected := []string{filepath.Join(dir, "a.TTF"), filepath.Join(dir, "b.ttf")}
	if len(files) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, files)
	}
	for i := range expected {
		if files[i] != expected[i] {
			t.Errorf("file %d: expected %s, got %s", i, expected[i], files[i])
		}
	}

	all, _ := fs.ListFiles(dir, "")
	if len(all) != 3 {
		t.Errorf("expected 3 files without a filter, got %v", all)
	}

	if _, err := fs.ListFiles(filepath.Join(dir, "missing"), ""); err == nil {
		t.Error("expected error for a missing directory")
	}
}
