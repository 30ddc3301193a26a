// Package key decodes raw terminal input bytes into discrete key events.
//
// The decoder owns the byte-level escape-sequence state machine: single-byte
// controls, CSI sequences, modifier-qualified arrows, and bracketed-paste
// bursts all arrive interleaved on one blocking stream and must be
// disambiguated without ever desynchronizing the session loop.
package key

// Kind identifies the decoded key event.
type Kind int

const (
	KindNone Kind = iota
	KindChar
	KindPaste
	KindBackspace
	KindWordBackspace
	KindEnter
	KindInterrupt
	KindEscapeCancel
	KindCursorLeft
	KindCursorRight
	KindWordLeft
	KindWordRight
	KindToggleRegex
	KindToggleAutoJump
	KindScrollPrev
	KindScrollNext
)

// String returns a short name for logging.
func (k Kind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindPaste:
		return "paste"
	case KindBackspace:
		return "backspace"
	case KindWordBackspace:
		return "word-backspace"
	case KindEnter:
		return "enter"
	case KindInterrupt:
		return "interrupt"
	case KindEscapeCancel:
		return "escape"
	case KindCursorLeft:
		return "left"
	case KindCursorRight:
		return "right"
	case KindWordLeft:
		return "word-left"
	case KindWordRight:
		return "word-right"
	case KindToggleRegex:
		return "toggle-regex"
	case KindToggleAutoJump:
		return "toggle-autojump"
	case KindScrollPrev:
		return "scroll-prev"
	case KindScrollNext:
		return "scroll-next"
	default:
		return "none"
	}
}

// Event is one decoded key event. Text carries the inserted characters for
// KindChar (possibly several, when a burst of printable bytes was available
// at once) and the captured block for KindPaste.
type Event struct {
	Kind Kind
	Text string
}
