package search

import "strings"

// Category is the highlight group chosen for a search term. Error-like terms
// get the alert color, warning-like terms the warning color, everything else
// the default.
type Category int

const (
	CategoryDefault Category = iota
	CategoryWarning
	CategoryAlert
)

// Default severity word lists; overridable via WordLists.
var (
	defaultAlertWords   = []string{"error", "fail", "failed", "fatal", "critical"}
	defaultWarningWords = []string{"warn", "warning", "caution"}
)

// WordLists carries the substrings that classify a search term. Zero-value
// fields fall back to the defaults.
type WordLists struct {
	Alert   []string
	Warning []string
}

// CategoryFor classifies pattern using the default word lists.
func CategoryFor(pattern string, regexEnabled bool) Category {
	return WordLists{}.CategoryFor(pattern, regexEnabled)
}

// CategoryFor classifies pattern by substring containment, case-insensitive.
// A regex pattern containing an alternation always classifies as default: a
// multi-term pattern like "foo|error" is not a single semantic word.
func (w WordLists) CategoryFor(pattern string, regexEnabled bool) Category {
	if regexEnabled && strings.Contains(pattern, "|") {
		return CategoryDefault
	}

	lower := strings.ToLower(pattern)
	for _, word := range w.alertWords() {
		if strings.Contains(lower, word) {
			return CategoryAlert
		}
	}
	for _, word := range w.warningWords() {
		if strings.Contains(lower, word) {
			return CategoryWarning
		}
	}
	return CategoryDefault
}

func (w WordLists) alertWords() []string {
	if len(w.Alert) > 0 {
		return w.Alert
	}
	return defaultAlertWords
}

func (w WordLists) warningWords() []string {
	if len(w.Warning) > 0 {
		return w.Warning
	}
	return defaultWarningWords
}

// MarkGroup maps the category to the kitty marker group it highlights with:
// mark1 yellow, mark2 orange, mark3 red.
func (c Category) MarkGroup() string {
	switch c {
	case CategoryAlert:
		return "3"
	case CategoryWarning:
		return "2"
	default:
		return "1"
	}
}
