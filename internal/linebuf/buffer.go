// Package linebuf implements the editable single-line text model: a rune
// buffer with a cursor offset and word-boundary navigation policies.
package linebuf

import (
	"golang.org/x/text/unicode/norm"
)

// Buffer holds the line being edited. All operations keep the invariant
// 0 <= cursor <= len(text); boundary decisions work on runes, never bytes.
type Buffer struct {
	text   []rune
	cursor int
}

// New returns a buffer pre-filled with text, cursor at the end.
func New(text string) *Buffer {
	b := &Buffer{}
	b.SetText(text)
	return b
}

// Text returns the current line content.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Cursor returns the rune offset of the cursor.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the line length in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Empty reports whether the line has no content.
func (b *Buffer) Empty() bool {
	return len(b.text) == 0
}

// SetText replaces the content and moves the cursor to the end.
func (b *Buffer) SetText(text string) {
	b.text = []rune(norm.NFC.String(text))
	b.cursor = len(b.text)
}

// Insert splices fragment at the cursor and advances the cursor past it.
// The fragment is NFC-normalized so pasted text compares consistently.
func (b *Buffer) Insert(fragment string) {
	if fragment == "" {
		return
	}
	runes := []rune(norm.NFC.String(fragment))
	b.text = append(b.text[:b.cursor], append(runes, b.text[b.cursor:]...)...)
	b.cursor += len(runes)
}

// DeleteBackwardChar removes the rune left of the cursor. Reports whether
// anything was removed.
func (b *Buffer) DeleteBackwardChar() bool {
	if b.cursor == 0 {
		return false
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	return true
}

// DeleteBackwardWord removes from the policy's left boundary up to the
// cursor and places the cursor at the boundary.
func (b *Buffer) DeleteBackwardWord(p Policy) {
	boundary := boundaryLeft(b.text, b.cursor, p, true)
	if boundary >= b.cursor {
		return
	}
	b.text = append(b.text[:boundary], b.text[b.cursor:]...)
	b.cursor = boundary
}

// MoveLeft moves the cursor one rune left. Reports whether it moved.
func (b *Buffer) MoveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// MoveRight moves the cursor one rune right. Reports whether it moved.
func (b *Buffer) MoveRight() bool {
	if b.cursor >= len(b.text) {
		return false
	}
	b.cursor++
	return true
}

// WordBoundaryLeft returns the offset the cursor would land on moving one
// word left under p. Pure: the buffer is not mutated.
func (b *Buffer) WordBoundaryLeft(p Policy) int {
	return boundaryLeft(b.text, b.cursor, p, false)
}

// WordBoundaryRight returns the offset the cursor would land on moving one
// word right under p. Pure: the buffer is not mutated.
func (b *Buffer) WordBoundaryRight(p Policy) int {
	return boundaryRight(b.text, b.cursor, p)
}

// MoveWordLeft moves the cursor to the left word boundary under p.
func (b *Buffer) MoveWordLeft(p Policy) {
	b.cursor = b.WordBoundaryLeft(p)
}

// MoveWordRight moves the cursor to the right word boundary under p.
func (b *Buffer) MoveWordRight(p Policy) {
	b.cursor = b.WordBoundaryRight(p)
}
