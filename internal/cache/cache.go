// Package cache persists the last search term and match position between
// sessions. Persistence is best-effort: reads degrade to empty values and
// write failures are logged, never surfaced.
package cache

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// FileStore keeps the search state in two small files at injected paths, so
// callers (and tests) decide where state lives.
type FileStore struct {
	SearchPath   string
	PositionPath string
}

// NewFileStore returns a store backed by the given paths.
func NewFileStore(searchPath, positionPath string) *FileStore {
	return &FileStore{SearchPath: searchPath, PositionPath: positionPath}
}

// LoadLastSearch returns the previously saved search term, or "" when the
// file is missing or unreadable.
func (s *FileStore) LoadLastSearch() string {
	data, err := os.ReadFile(s.SearchPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("cache: read %s: %v", s.SearchPath, err)
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveLastSearch writes the term for the next session. A non-empty term
// resets the remembered position to the first match; an empty term removes
// it entirely.
func (s *FileStore) SaveLastSearch(text string) {
	if err := os.WriteFile(s.SearchPath, []byte(text), 0o600); err != nil {
		log.Printf("cache: write %s: %v", s.SearchPath, err)
		return
	}
	if text != "" {
		s.SavePosition(0)
	} else {
		s.ClearPosition()
	}
}

// SavePosition records the current match index. Write-only from the
// session's perspective.
func (s *FileStore) SavePosition(pos int) {
	if err := os.WriteFile(s.PositionPath, []byte(strconv.Itoa(pos)), 0o600); err != nil {
		log.Printf("cache: write %s: %v", s.PositionPath, err)
	}
}

// ClearPosition removes the remembered position; a missing file is fine.
func (s *FileStore) ClearPosition() {
	if err := os.Remove(s.PositionPath); err != nil && !os.IsNotExist(err) {
		log.Printf("cache: remove %s: %v", s.PositionPath, err)
	}
}
