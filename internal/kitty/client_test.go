package kitty

import (
	"errors"
	"strings"
	"testing"
)

const lsTopology = `[
  {
    "tabs": [
      {
        "windows": [
          {"id": 1, "is_focused": false, "is_self": false, "lines": 40, "scrolled_by": 0},
          {"id": 2, "is_focused": true, "is_self": false, "lines": 40, "scrolled_by": 12}
        ]
      },
      {
        "windows": [
          {"id": 3, "is_focused": false, "is_self": true, "lines": 50, "scrolled_by": 0}
        ]
      }
    ]
  }
]`

// fakeRunner records every command and replies from canned outputs.
type fakeRunner struct {
	calls   [][]string
	outputs map[string][]byte
	err     error
}

func (f *fakeRunner) Run(args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return nil, f.err
	}
	if out, ok := f.outputs[args[1]]; ok {
		return out, nil
	}
	return nil, nil
}

func (f *fakeRunner) lastCall() []string {
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

func newTestClient(runner *fakeRunner) *Client {
	return NewClient(runner, "/tmp/scroll_mark.py")
}

func TestResolveWindowExplicitArgument(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestClient(runner)

	id, err := c.ResolveWindow("7")
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("explicit id must not hit kitty, calls = %v", runner.calls)
	}
}

func TestResolveWindowEnvFallback(t *testing.T) {
	t.Setenv("KITTY_WINDOW_ID", "9")
	c := newTestClient(&fakeRunner{})

	id, err := c.ResolveWindow("")
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}
	if id != 9 {
		t.Fatalf("id = %d, want 9", id)
	}
}

func TestResolveWindowFocusedFallback(t *testing.T) {
	t.Setenv("KITTY_WINDOW_ID", "")
	runner := &fakeRunner{outputs: map[string][]byte{"ls": []byte(lsTopology)}}
	c := newTestClient(runner)

	id, err := c.ResolveWindow("")
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}
	if id != 2 {
		t.Fatalf("id = %d, want focused window 2", id)
	}
}

func TestResolveWindowNoneFound(t *testing.T) {
	t.Setenv("KITTY_WINDOW_ID", "")
	runner := &fakeRunner{outputs: map[string][]byte{"ls": []byte(`[]`)}}
	c := newTestClient(runner)

	if _, err := c.ResolveWindow(""); !errors.Is(err, ErrNoWindow) {
		t.Fatalf("err = %v, want ErrNoWindow", err)
	}
}

func TestShrinkSelfIssuesResize(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{"ls": []byte(lsTopology)}}
	c := newTestClient(runner)

	c.ShrinkSelf()

	last := runner.lastCall()
	want := []string{"@", "resize-window", "--self", "--axis=vertical", "--increment", "-49"}
	if strings.Join(last, " ") != strings.Join(want, " ") {
		t.Fatalf("resize call = %v, want %v", last, want)
	}
}

func TestWindowScrolledBy(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{"ls": []byte(lsTopology)}}
	c := newTestClient(runner)

	scrolled, err := c.WindowScrolledBy(2)
	if err != nil {
		t.Fatalf("WindowScrolledBy: %v", err)
	}
	if scrolled != 12 {
		t.Fatalf("scrolled = %d, want 12", scrolled)
	}

	if _, err := c.WindowScrolledBy(99); err == nil {
		t.Fatalf("expected error for unknown window")
	}
}

func TestCreateMarkerArguments(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		regex bool
		group string
		want  []string
	}{
		{"literal", "error", false, "3",
			[]string{"@", "create-marker", "--match=id:2", "itext", "3", "error"}},
		{"regex", "foo|bar", true, "1",
			[]string{"@", "create-marker", "--match=id:2", "iregex", "1", "foo|bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			c := newTestClient(runner)
			if err := c.CreateMarker(2, tt.text, tt.regex, tt.group); err != nil {
				t.Fatalf("CreateMarker: %v", err)
			}
			if strings.Join(runner.lastCall(), " ") != strings.Join(tt.want, " ") {
				t.Fatalf("call = %v, want %v", runner.lastCall(), tt.want)
			}
		})
	}
}

func TestCreateMarkerEmptyTextClears(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestClient(runner)

	if err := c.CreateMarker(4, "", false, "1"); err != nil {
		t.Fatalf("CreateMarker: %v", err)
	}
	want := []string{"@", "remove-marker", "--match=id:4"}
	if strings.Join(runner.lastCall(), " ") != strings.Join(want, " ") {
		t.Fatalf("call = %v, want %v", runner.lastCall(), want)
	}
}

func TestScrollToMarkDirections(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestClient(runner)

	if err := c.ScrollToMark(2, false); err != nil {
		t.Fatalf("ScrollToMark: %v", err)
	}
	prev := []string{"@", "kitten", "--match=id:2", "/tmp/scroll_mark.py"}
	if strings.Join(runner.lastCall(), " ") != strings.Join(prev, " ") {
		t.Fatalf("prev call = %v, want %v", runner.lastCall(), prev)
	}

	if err := c.ScrollToMark(2, true); err != nil {
		t.Fatalf("ScrollToMark next: %v", err)
	}
	next := append(prev, "next")
	if strings.Join(runner.lastCall(), " ") != strings.Join(next, " ") {
		t.Fatalf("next call = %v, want %v", runner.lastCall(), next)
	}
}

func TestWindowAdapterRoutesToClient(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{
		"ls":       []byte(lsTopology),
		"get-text": []byte("line one\nline two\n"),
	}}
	w := newTestClient(runner).Window(2)

	text, err := w.ScrollbackText()
	if err != nil {
		t.Fatalf("ScrollbackText: %v", err)
	}
	if !strings.Contains(text, "line two") {
		t.Fatalf("unexpected scrollback %q", text)
	}

	scrolled, err := w.ScrolledBy()
	if err != nil || scrolled != 12 {
		t.Fatalf("ScrolledBy = %d, %v", scrolled, err)
	}
}
