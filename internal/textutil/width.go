// Package textutil measures and sanitizes text destined for the one-line
// search prompt.
package textutil

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth reports the number of terminal columns text occupies.
// Width is computed per grapheme cluster so combining marks and emoji
// sequences count as one glyph rather than several.
func DisplayWidth(text string) int {
	width := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		width += clusterWidth(gr.Str())
	}
	return width
}

// TruncateToWidth trims text so it fits in at most columns terminal cells,
// never splitting a grapheme cluster. Text that already fits is returned
// unchanged.
func TruncateToWidth(text string, columns int) string {
	if columns <= 0 {
		return ""
	}
	width := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := clusterWidth(gr.Str())
		if width+w > columns {
			_, to := gr.Positions()
			cut := to - len(gr.Str())
			return text[:cut]
		}
		width += w
	}
	return text
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		w = 1
	}
	return w
}
