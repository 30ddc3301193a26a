package textutil

import "strings"

// SanitizePromptText rewrites text so it can be echoed on the prompt line
// without disturbing the terminal. Newlines and tabs become single spaces,
// other control bytes become '?', and zero-width or bidi formatting runes
// are dropped so the rendered width matches the cursor arithmetic.
func SanitizePromptText(text string) string {
	clean := true
	for _, r := range text {
		if requiresSanitization(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case isFormattingRune(r):
			// dropped
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func requiresSanitization(r rune) bool {
	if r < 0x20 || r == 0x7f {
		return true
	}
	return isFormattingRune(r)
}

func isFormattingRune(r rune) bool {
	switch r {
	case 0x00AD, 0x061C, 0x180E, 0xFEFF:
		return true
	}
	if r >= 0x200B && r <= 0x200F {
		return true
	}
	if r >= 0x202A && r <= 0x202E {
		return true
	}
	if r >= 0x2060 && r <= 0x206F {
		return true
	}
	return r == 0x2028 || r == 0x2029
}
