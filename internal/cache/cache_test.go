package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(
		filepath.Join(dir, ".last_search"),
		filepath.Join(dir, ".search_position"),
	)
}

func TestLoadLastSearchMissingFile(t *testing.T) {
	s := newTestStore(t)
	if got := s.LoadLastSearch(); got != "" {
		t.Fatalf("missing cache file should load as empty, got %q", got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	s.SaveLastSearch("error")
	if got := s.LoadLastSearch(); got != "error" {
		t.Fatalf("LoadLastSearch = %q, want %q", got, "error")
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.SearchPath, []byte("term\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := s.LoadLastSearch(); got != "term" {
		t.Fatalf("LoadLastSearch = %q, want trimmed %q", got, "term")
	}
}

func TestSaveNonEmptyResetsPosition(t *testing.T) {
	s := newTestStore(t)
	s.SavePosition(7)
	s.SaveLastSearch("query")

	data, err := os.ReadFile(s.PositionPath)
	if err != nil {
		t.Fatalf("position file should exist: %v", err)
	}
	if string(data) != "0" {
		t.Fatalf("position = %q, want reset to 0", data)
	}
}

func TestSaveEmptyClearsPosition(t *testing.T) {
	s := newTestStore(t)
	s.SavePosition(3)
	s.SaveLastSearch("")

	if _, err := os.Stat(s.PositionPath); !os.IsNotExist(err) {
		t.Fatalf("position file should be removed, stat err = %v", err)
	}
}

func TestClearPositionMissingFileIsSilent(t *testing.T) {
	s := newTestStore(t)
	s.ClearPosition()
	s.ClearPosition()
}

func TestWriteFailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(
		filepath.Join(dir, "missing", ".last_search"),
		filepath.Join(dir, "missing", ".search_position"),
	)
	s.SaveLastSearch("query")
	s.SavePosition(1)
	if got := s.LoadLastSearch(); got != "" {
		t.Fatalf("nothing should have been persisted, got %q", got)
	}
}
