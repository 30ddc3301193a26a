// Package kitty talks to the kitty terminal over its remote-control
// interface. Every operation shells out to `kitty @ ...`; the command runner
// is injectable so the package tests without a running terminal.
package kitty

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrNoWindow reports that no target window could be resolved. This is the
// one fatal startup condition: without a target there is nothing to search.
var ErrNoWindow = errors.New("no kitty window to search")

// Runner executes one kitty command and returns its stdout.
type Runner interface {
	Run(args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(args ...string) ([]byte, error) {
	out, err := exec.Command("kitty", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("kitty %v: %w", args, err)
	}
	return out, nil
}

// Client issues remote-control commands against a kitty instance.
type Client struct {
	run        Runner
	scrollMark string // path of the scroll_mark kitten used for jumps
}

// NewClient builds a client. A nil runner uses the real kitty binary.
func NewClient(runner Runner, scrollMarkPath string) *Client {
	if runner == nil {
		runner = execRunner{}
	}
	return &Client{run: runner, scrollMark: scrollMarkPath}
}

// ResolveWindow determines the window to search: an explicit numeric
// argument wins, then the KITTY_WINDOW_ID environment, then the currently
// focused window from the session topology.
func (c *Client) ResolveWindow(explicit string) (int, error) {
	if explicit != "" {
		if id, err := strconv.Atoi(explicit); err == nil && id >= 0 {
			return id, nil
		}
	}
	if env := os.Getenv("KITTY_WINDOW_ID"); env != "" {
		if id, err := strconv.Atoi(env); err == nil {
			return id, nil
		}
	}

	out, err := c.run.Run("@", "ls")
	if err != nil {
		return 0, fmt.Errorf("resolve window: %w", err)
	}
	id, ok := findWindowID(out, func(win gjson.Result) bool {
		return win.Get("is_focused").Bool()
	})
	if !ok {
		return 0, ErrNoWindow
	}
	return id, nil
}

// ShrinkSelf collapses the window running this program down to a single
// prompt line. Best effort: a kitty without remote resizing just leaves the
// window as-is.
func (c *Client) ShrinkSelf() {
	out, err := c.run.Run("@", "ls")
	if err != nil {
		return
	}
	lines := 0
	_, ok := findWindowID(out, func(win gjson.Result) bool {
		if win.Get("is_self").Bool() {
			lines = int(win.Get("lines").Int())
			return true
		}
		return false
	})
	if !ok || lines <= 1 {
		return
	}
	_, _ = c.run.Run("@", "resize-window", "--self", "--axis=vertical",
		"--increment", strconv.Itoa(-(lines - 1)))
}

// WindowScrolledBy reports how many lines the window is scrolled back.
func (c *Client) WindowScrolledBy(id int) (int, error) {
	out, err := c.run.Run("@", "ls")
	if err != nil {
		return 0, err
	}
	scrolled := 0
	_, ok := findWindowID(out, func(win gjson.Result) bool {
		if int(win.Get("id").Int()) == id {
			scrolled = int(win.Get("scrolled_by").Int())
			return true
		}
		return false
	})
	if !ok {
		return 0, fmt.Errorf("window %d not found", id)
	}
	return scrolled, nil
}

// ScrollbackText fetches the full scrollable text of the window.
func (c *Client) ScrollbackText(id int) (string, error) {
	out, err := c.run.Run("@", "get-text", matchArg(id), "--extent=all")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// CreateMarker highlights all occurrences of text in the window using the
// given marker group. An empty text clears instead, matching the highlight
// port contract. Regex patterns use kitty's case-insensitive regex marker.
func (c *Client) CreateMarker(id int, text string, isRegex bool, group string) error {
	if text == "" {
		return c.RemoveMarker(id)
	}
	markerType := "itext"
	if isRegex {
		markerType = "iregex"
	}
	_, err := c.run.Run("@", "create-marker", matchArg(id), markerType, group, text)
	return err
}

// RemoveMarker clears all highlighting from the window.
func (c *Client) RemoveMarker(id int) error {
	_, err := c.run.Run("@", "remove-marker", matchArg(id))
	return err
}

// ScrollToMark runs the scroll_mark kitten in the window, moving the view to
// the previous mark, or the next one when next is set.
func (c *Client) ScrollToMark(id int, next bool) error {
	args := []string{"@", "kitten", matchArg(id), c.scrollMark}
	if next {
		args = append(args, "next")
	}
	_, err := c.run.Run(args...)
	return err
}

func matchArg(id int) string {
	return fmt.Sprintf("--match=id:%d", id)
}

// findWindowID walks the `kitty @ ls` topology (OS windows > tabs > windows)
// and returns the id of the first window accepted by pick.
func findWindowID(lsOutput []byte, pick func(gjson.Result) bool) (int, bool) {
	var id int
	var found bool
	gjson.ParseBytes(lsOutput).ForEach(func(_, osWin gjson.Result) bool {
		osWin.Get("tabs").ForEach(func(_, tab gjson.Result) bool {
			tab.Get("windows").ForEach(func(_, win gjson.Result) bool {
				if pick(win) {
					id = int(win.Get("id").Int())
					found = true
				}
				return !found
			})
			return !found
		})
		return !found
	})
	return id, found
}
