package key

import (
	"bufio"
	"io"
	"os"
)

// Decoder turns a blocking stream of raw terminal bytes into Events.
//
// Reads block with no timeout: once an escape introducer has been seen the
// decoder commits to reading its continuation. The only non-blocking probe is
// the availability check used to coalesce printable bursts (unbracketed
// pastes) into a single Char event.
type Decoder struct {
	reader *bufio.Reader
	fd     int // -1 when the source has no file descriptor to poll
}

// NewDecoder wraps r for byte-at-a-time decoding. When r is an *os.File the
// underlying descriptor is polled for pending input during burst coalescing.
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{reader: bufio.NewReader(r), fd: -1}
	if f, ok := r.(*os.File); ok {
		d.fd = int(f.Fd())
	}
	return d
}

// Next blocks until one complete key event has been decoded and returns it.
// Malformed or unrecognized escape sequences are consumed silently and
// decoding resynchronizes; Next never returns a partial event. The only
// errors are read failures from the underlying source.
func (d *Decoder) Next() (Event, error) {
	for {
		b, err := d.reader.ReadByte()
		if err != nil {
			return Event{}, err
		}

		switch {
		case b == 0x03:
			return Event{Kind: KindInterrupt}, nil
		case b == '\r':
			return Event{Kind: KindEnter}, nil
		case b == '\n':
			// Raw mode: Enter arrives as 0x0d, so a bare 0x0a is Ctrl+J.
			return Event{Kind: KindToggleAutoJump}, nil
		case b == 0x7f || b == 0x08:
			return Event{Kind: KindBackspace}, nil
		case b == '\t':
			return Event{Kind: KindToggleRegex}, nil
		case b == 0x1b:
			ev, ok, err := d.afterEscape()
			if err != nil {
				return Event{}, err
			}
			if ok {
				return ev, nil
			}
			// Unrecognized sequence was dropped; keep decoding.
		case b >= 0x20 && b <= 0x7e:
			return d.charBurst(b), nil
		default:
			// Unhandled control byte, ignore.
		}
	}
}

// charBurst coalesces already-available printable bytes into one Char event
// so an unbracketed paste does not trigger a redraw per character.
func (d *Decoder) charBurst(first byte) Event {
	buf := []byte{first}
	for d.available() {
		b, err := d.reader.ReadByte()
		if err != nil {
			break
		}
		if b < 0x20 || b > 0x7e {
			_ = d.reader.UnreadByte()
			break
		}
		buf = append(buf, b)
	}
	return Event{Kind: KindChar, Text: string(buf)}
}

// available reports whether at least one byte can be read without blocking.
func (d *Decoder) available() bool {
	if d.reader.Buffered() > 0 {
		return true
	}
	return d.pendingInput()
}

func (d *Decoder) afterEscape() (Event, bool, error) {
	b, err := d.reader.ReadByte()
	if err != nil {
		return Event{}, false, err
	}
	switch b {
	case 0x7f:
		// Option/Cmd+Backspace sends ESC DEL.
		return Event{Kind: KindWordBackspace}, true, nil
	case '[':
		return d.afterCSI()
	default:
		return Event{Kind: KindEscapeCancel}, true, nil
	}
}

func (d *Decoder) afterCSI() (Event, bool, error) {
	b, err := d.reader.ReadByte()
	if err != nil {
		return Event{}, false, err
	}
	switch b {
	case 'A':
		return Event{Kind: KindScrollPrev}, true, nil
	case 'B':
		return Event{Kind: KindScrollNext}, true, nil
	case 'C':
		return Event{Kind: KindCursorRight}, true, nil
	case 'D':
		return Event{Kind: KindCursorLeft}, true, nil
	case '2':
		ok, err := d.expect("00~")
		if err != nil {
			return Event{}, false, err
		}
		if !ok {
			return Event{}, false, nil
		}
		return d.capturePaste()
	case '1':
		return d.modifiedArrow()
	default:
		return Event{}, false, nil
	}
}

// expect consumes bytes while they match literal; the first mismatching byte
// is consumed and discarded along with the rest of the broken sequence.
func (d *Decoder) expect(literal string) (bool, error) {
	for i := 0; i < len(literal); i++ {
		b, err := d.reader.ReadByte()
		if err != nil {
			return false, err
		}
		if b != literal[i] {
			return false, nil
		}
	}
	return true, nil
}

// modifiedArrow decodes CSI 1 ; <modifier> <letter>. Modifier 3 is Alt/
// Option, 9 is Cmd/Super; both map word-wise. Anything else is dropped.
func (d *Decoder) modifiedArrow() (Event, bool, error) {
	b, err := d.reader.ReadByte()
	if err != nil {
		return Event{}, false, err
	}
	if b != ';' {
		return Event{}, false, nil
	}
	mod, err := d.reader.ReadByte()
	if err != nil {
		return Event{}, false, err
	}
	fin, err := d.reader.ReadByte()
	if err != nil {
		return Event{}, false, err
	}
	if mod != '3' && mod != '9' {
		return Event{}, false, nil
	}
	switch fin {
	case 'C':
		return Event{Kind: KindWordRight}, true, nil
	case 'D':
		return Event{Kind: KindWordLeft}, true, nil
	default:
		return Event{}, false, nil
	}
}

// capturePaste accumulates bytes verbatim until the bracketed-paste end
// marker ESC [ 2 0 1 ~. On seeing ESC it reads exactly five bytes; a
// mismatch is recovered best-effort by appending the consumed bytes to the
// captured content rather than pushing them back.
func (d *Decoder) capturePaste() (Event, bool, error) {
	var content []byte
	marker := make([]byte, 5)
	for {
		b, err := d.reader.ReadByte()
		if err != nil {
			return Event{}, false, err
		}
		if b != 0x1b {
			content = append(content, b)
			continue
		}
		if _, err := io.ReadFull(d.reader, marker); err != nil {
			return Event{}, false, err
		}
		if string(marker) == "[201~" {
			return Event{Kind: KindPaste, Text: string(content)}, true, nil
		}
		content = append(content, 0x1b)
		content = append(content, marker...)
	}
}
