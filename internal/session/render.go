package session

import (
	"fmt"

	"github.com/hadarshamir/kitty-live-search/internal/textutil"
)

// render redraws the prompt line in place and repositions the cursor.
// Output is flushed once per event to avoid flicker.
func (s *Session) render() {
	runes := []rune(s.buf.Text())
	left := textutil.SanitizePromptText(string(runes[:s.buf.Cursor()]))
	right := textutil.SanitizePromptText(string(runes[s.buf.Cursor():]))

	s.out.WriteString("\r\x1b[K")
	s.out.WriteString(s.prompt)
	s.out.WriteString(left)
	s.out.WriteString(right)

	back := textutil.DisplayWidth(right)
	if s.hasCount && !s.buf.Empty() {
		counter := fmt.Sprintf(" (%d)", s.count)
		s.out.WriteString(counter)
		back += len(counter)
	}
	if back > 0 {
		fmt.Fprintf(s.out, "\x1b[%dD", back)
	}
	s.out.Flush()
}
