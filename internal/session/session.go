// Package session runs the interactive search prompt. It owns the line
// buffer and mode flags, decodes keystrokes into edits, and drives the
// highlight, count, and scroll side effects against the target window.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/hadarshamir/kitty-live-search/internal/key"
	"github.com/hadarshamir/kitty-live-search/internal/linebuf"
	"github.com/hadarshamir/kitty-live-search/internal/search"
)

// Target is the window the search operates on.
type Target interface {
	ScrollbackText() (string, error)
	SetHighlight(pattern string, isRegex bool, group string) error
	ClearHighlight() error
	ScrollToMark(next bool) error
	ScrolledBy() (int, error)
}

// Store persists the last search term between sessions. Both operations are
// best-effort; failures never reach the session.
type Store interface {
	LoadLastSearch() string
	SaveLastSearch(text string)
}

// Options tune prompt text and word-jump behavior.
type Options struct {
	Prompt         string
	WordJumpPolicy linebuf.Policy
	Markers        search.WordLists
}

// Session is the single-threaded prompt loop. The only suspension points
// are the blocking keystroke read and synchronous collaborator calls.
type Session struct {
	in     io.Reader
	keys   *key.Decoder
	out    *bufio.Writer
	target Target
	store  Store

	prompt string
	policy linebuf.Policy
	words  search.WordLists

	buf         *linebuf.Buffer
	regexMode   bool
	autoJump    bool
	count       int
	hasCount    bool
	clearOnExit bool
}

func New(in io.Reader, out io.Writer, target Target, store Store, opts Options) *Session {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "Search: "
	}
	return &Session{
		in:     in,
		keys:   key.NewDecoder(in),
		out:    bufio.NewWriter(out),
		target: target,
		store:  store,
		prompt: prompt,
		policy: opts.WordJumpPolicy,
		words:  opts.Markers,
		buf:    linebuf.New(""),
	}
}

// Run owns the terminal until a terminating keystroke. Raw mode and
// bracketed paste are restored on every exit path.
func Run(in io.Reader, out io.Writer, target Target, store Store, opts Options) error {
	return New(in, out, target, store, opts).Run()
}

func (s *Session) Run() error {
	restore, err := s.enterRawMode()
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer restore()

	s.out.WriteString("\x1b[?2004h")
	defer func() {
		s.out.WriteString("\x1b[?2004l\r\n")
		s.out.Flush()
	}()

	s.buf.SetText(s.store.LoadLastSearch())
	if s.buf.Empty() {
		s.render()
	} else {
		s.refresh()
	}

	for {
		ev, err := s.keys.Next()
		if err != nil {
			s.finish(true)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		switch ev.Kind {
		case key.KindChar:
			s.buf.Insert(ev.Text)
			s.clearOnExit = false
			s.hasCount = false
			s.render()

		case key.KindPaste:
			if ev.Text == "" {
				continue
			}
			s.buf.Insert(ev.Text)
			s.clearOnExit = false
			s.refresh()

		case key.KindBackspace:
			if !s.buf.DeleteBackwardChar() {
				continue
			}
			if s.buf.Empty() {
				s.clearOnExit = true
			}
			s.refresh()

		case key.KindWordBackspace:
			if s.buf.Empty() {
				continue
			}
			s.buf.DeleteBackwardWord(linebuf.PolicySmart)
			if s.buf.Empty() {
				s.clearOnExit = true
			}
			s.refresh()

		case key.KindCursorLeft:
			if s.buf.MoveLeft() {
				s.render()
			}
		case key.KindCursorRight:
			if s.buf.MoveRight() {
				s.render()
			}
		case key.KindWordLeft:
			s.buf.MoveWordLeft(s.policy)
			s.render()
		case key.KindWordRight:
			s.buf.MoveWordRight(s.policy)
			s.render()

		case key.KindToggleRegex:
			s.regexMode = !s.regexMode
			s.refresh()

		case key.KindToggleAutoJump:
			s.autoJump = !s.autoJump
			s.render()

		case key.KindScrollPrev:
			if !s.buf.Empty() {
				s.scrollToMark(false)
			}
		case key.KindScrollNext:
			if !s.buf.Empty() {
				s.scrollToMark(true)
			}

		case key.KindEnter:
			s.refresh()
			s.finish(s.clearOnExit)
			return nil

		case key.KindInterrupt, key.KindEscapeCancel:
			s.finish(true)
			return nil
		}
	}
}

// refresh is the synchronous re-count pass: fetch corpus, recompile,
// recount, reissue the highlight, redraw, then maybe auto-jump.
func (s *Session) refresh() {
	text := s.buf.Text()
	if text == "" {
		s.count = 0
		s.hasCount = false
		if err := s.target.ClearHighlight(); err != nil {
			log.Printf("clear highlight: %v", err)
		}
		s.render()
		return
	}

	corpus, err := s.target.ScrollbackText()
	if err != nil {
		log.Printf("fetch scrollback: %v", err)
		corpus = ""
	}
	s.count = search.CountMatches(corpus, text, s.regexMode)
	s.hasCount = true

	group := s.words.CategoryFor(text, s.regexMode).MarkGroup()
	if err := s.target.SetHighlight(text, s.regexMode, group); err != nil {
		log.Printf("set highlight: %v", err)
	}

	s.render()
	s.autoJumpIfWanted()
}

// autoJumpIfWanted tries scrolling to the previous mark and falls back to
// the next one when the scroll position did not move.
func (s *Session) autoJumpIfWanted() {
	if !s.autoJump || s.count <= 0 {
		return
	}
	before, err := s.target.ScrolledBy()
	if err != nil {
		log.Printf("read scroll position: %v", err)
		return
	}
	if err := s.target.ScrollToMark(false); err != nil {
		log.Printf("scroll to previous mark: %v", err)
		return
	}
	after, err := s.target.ScrolledBy()
	if err != nil {
		log.Printf("read scroll position: %v", err)
		return
	}
	if after == before {
		s.scrollToMark(true)
	}
}

func (s *Session) scrollToMark(next bool) {
	if err := s.target.ScrollToMark(next); err != nil {
		log.Printf("scroll to mark: %v", err)
	}
}

// finish persists the attempted text and optionally clears highlights.
// The text is saved even on cancel.
func (s *Session) finish(clear bool) {
	s.store.SaveLastSearch(s.buf.Text())
	if clear {
		if err := s.target.ClearHighlight(); err != nil {
			log.Printf("clear highlight: %v", err)
		}
	}
}

func (s *Session) enterRawMode() (func(), error) {
	f, ok := s.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}, nil
	}
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := term.Restore(fd, state); err != nil {
			log.Printf("restore terminal: %v", err)
		}
	}, nil
}
