// Package search compiles the live search text into a case-insensitive
// matcher and counts occurrences in the target window's scrollback.
package search

import (
	"fmt"
	"regexp"
)

// Matcher counts non-overlapping matches of a compiled pattern.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a case-insensitive matcher. In literal mode every regexp
// metacharacter in pattern is escaped; in regex mode the pattern is used as
// written.
func Compile(pattern string, regexEnabled bool) (*Matcher, error) {
	expr := pattern
	if !regexEnabled {
		expr = regexp.QuoteMeta(pattern)
	}
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &Matcher{re: re}, nil
}

// Count returns the number of non-overlapping matches across the whole
// corpus, without per-line deduplication.
func (m *Matcher) Count(corpus string) int {
	return len(m.re.FindAllStringIndex(corpus, -1))
}

// CountMatches is the recovering form used by the session loop: an empty
// pattern or a pattern that fails to compile yields zero rather than an
// error, so an in-progress regex never aborts the interaction.
func CountMatches(corpus, pattern string, regexEnabled bool) int {
	if pattern == "" {
		return 0
	}
	m, err := Compile(pattern, regexEnabled)
	if err != nil {
		return 0
	}
	return m.Count(corpus)
}
