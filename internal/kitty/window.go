package kitty

// Window binds a client to one resolved window id, giving the session a
// target it can search, highlight, and scroll without carrying the id
// around.
type Window struct {
	client *Client
	id     int
}

// Window returns the per-window view used as the session's search target.
func (c *Client) Window(id int) *Window {
	return &Window{client: c, id: id}
}

// ID returns the kitty window id.
func (w *Window) ID() int {
	return w.id
}

// ScrollbackText fetches the window's full scrollable text.
func (w *Window) ScrollbackText() (string, error) {
	return w.client.ScrollbackText(w.id)
}

// SetHighlight marks all occurrences of pattern in the window.
func (w *Window) SetHighlight(pattern string, isRegex bool, group string) error {
	return w.client.CreateMarker(w.id, pattern, isRegex, group)
}

// ClearHighlight removes all marks from the window.
func (w *Window) ClearHighlight() error {
	return w.client.RemoveMarker(w.id)
}

// ScrollToMark moves the window's view to the previous mark, or the next
// when next is set.
func (w *Window) ScrollToMark(next bool) error {
	return w.client.ScrollToMark(w.id, next)
}

// ScrolledBy reports the window's current scrollback offset in lines.
func (w *Window) ScrolledBy() (int, error) {
	return w.client.WindowScrolledBy(w.id)
}
