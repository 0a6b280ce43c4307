package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveFile_CreatesParents(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "accepted", "talks", "intro.md")

	if err := s.SaveFile(path, []byte("first")); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}
	if err := s.SaveFile(path, []byte("second")); err != nil {
		t.Fatalf("SaveFile() overwrite failed: %v", err)
	}

	got, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
}

func TestSaveFileAtomic(t *testing.T) {
	s := &Storage{}
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "submissions.xlsx")

	if err := s.SaveFileAtomic(path, []byte("workbook")); err != nil {
		t.Fatalf("SaveFileAtomic() failed: %v", err)
	}
	if !s.HasFile(path) {
		t.Fatal("file not written")
	}

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory entries = %v, want only submissions.xlsx", names)
	}
}

func TestEnsureDir(t *testing.T) {
	s := &Storage{}
	dir := filepath.Join(t.TempDir(), "site", "waitlist")

	if err := s.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() failed: %v", err)
	}
	// Idempotent
	if err := s.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() second call failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("%s is not a directory: %v", dir, err)
	}
	if s.HasFile(filepath.Join(dir, "missing.md")) {
		t.Error("HasFile() = true for missing file")
	}
}
