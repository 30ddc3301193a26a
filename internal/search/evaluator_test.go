package search

import "testing"

func TestCountMatches(t *testing.T) {
	tests := []struct {
		name    string
		corpus  string
		pattern string
		regex   bool
		want    int
	}{
		{"case insensitive literal", "Error: fail", "error", false, 1},
		{"non-overlapping", "aaa", "a", false, 3},
		{"invalid regex recovers to zero", "anything", "(", true, 0},
		{"empty pattern", "anything", "", false, 0},
		{"literal escapes metacharacters", "a.c abc", "a.c", false, 1},
		{"regex mode uses raw pattern", "a.c abc", "a.c", true, 2},
		{"regex alternation", "cat dog", "cat|dog", true, 2},
		{"multi line corpus", "error\nERROR\nerrorless", "error", false, 3},
		{"no matches", "quiet", "loud", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountMatches(tt.corpus, tt.pattern, tt.regex)
			if got != tt.want {
				t.Fatalf("CountMatches(%q, %q, regex=%v) = %d, want %d",
					tt.corpus, tt.pattern, tt.regex, got, tt.want)
			}
		})
	}
}

func TestCompileErrorSurfacesOnlyFromCompile(t *testing.T) {
	if _, err := Compile("(", true); err == nil {
		t.Fatalf("expected compile error for unbalanced paren")
	}
	if _, err := Compile("(", false); err != nil {
		t.Fatalf("literal mode must escape metacharacters: %v", err)
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		regex   bool
		want    Category
	}{
		{"failed is alert", "Connection FAILED", false, CategoryAlert},
		{"warning term", "Warning: low disk", false, CategoryWarning},
		{"plain term", "hello", false, CategoryDefault},
		{"alternation forces default", "foo|bar", true, CategoryDefault},
		{"alternation beats alert words", "error|warn", true, CategoryDefault},
		{"pipe in literal mode still classifies", "error|", false, CategoryAlert},
		{"fatal substring", "a fatality", false, CategoryAlert},
		{"caution", "CAUTION tape", false, CategoryWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryFor(tt.pattern, tt.regex); got != tt.want {
				t.Fatalf("CategoryFor(%q, regex=%v) = %v, want %v",
					tt.pattern, tt.regex, got, tt.want)
			}
		})
	}
}

func TestCategoryForCustomWordLists(t *testing.T) {
	lists := WordLists{Alert: []string{"panic"}, Warning: []string{"hmm"}}
	if got := lists.CategoryFor("kernel PANIC", false); got != CategoryAlert {
		t.Fatalf("custom alert list ignored: %v", got)
	}
	if got := lists.CategoryFor("error", false); got != CategoryDefault {
		t.Fatalf("custom list should replace defaults, got %v", got)
	}
}

func TestMarkGroup(t *testing.T) {
	if g := CategoryAlert.MarkGroup(); g != "3" {
		t.Fatalf("alert group = %q, want 3", g)
	}
	if g := CategoryWarning.MarkGroup(); g != "2" {
		t.Fatalf("warning group = %q, want 2", g)
	}
	if g := CategoryDefault.MarkGroup(); g != "1" {
		t.Fatalf("default group = %q, want 1", g)
	}
}
