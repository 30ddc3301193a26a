package linebuf

import "unicode"

// Policy selects the word-boundary rule used for word-wise deletion and
// navigation.
type Policy int

const (
	// PolicySmart stops at snake_case underscores, camelCase transitions,
	// digit-run edges, and whitespace.
	PolicySmart Policy = iota

	// PolicyAlphanum treats any run of letters and digits as one word and
	// everything else as separator.
	PolicyAlphanum
)

func isHorizSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundaryLeft computes the offset one word left of from. With deleting set,
// a stopping underscore is consumed as part of the word; when navigating the
// underscore itself is the stop point and stays put.
func boundaryLeft(text []rune, from int, p Policy, deleting bool) int {
	switch p {
	case PolicyAlphanum:
		return alphanumLeft(text, from)
	default:
		return smartLeft(text, from, deleting)
	}
}

// boundaryRight computes the offset one word right of from.
func boundaryRight(text []rune, from int, p Policy) int {
	switch p {
	case PolicyAlphanum:
		return alphanumRight(text, from)
	default:
		return smartRight(text, from)
	}
}

func smartLeft(text []rune, from int, deleting bool) int {
	i := from
	for i > 0 && isHorizSpace(text[i-1]) {
		i--
	}
	if i == 0 {
		return 0
	}

	i--
	cur := text[i]
	for i > 0 {
		if cur == '_' {
			// A crossed underscore is a boundary of its own.
			break
		}
		left := text[i-1]
		if isHorizSpace(left) {
			break
		}
		if left == '_' {
			if deleting {
				i--
			}
			break
		}
		if unicode.IsUpper(cur) && unicode.IsLower(left) {
			break
		}
		if unicode.IsDigit(cur) != unicode.IsDigit(left) {
			break
		}
		i--
		cur = left
	}
	return i
}

func smartRight(text []rune, from int) int {
	i := from
	n := len(text)
	for i < n && isHorizSpace(text[i]) {
		i++
	}
	if i == n {
		return n
	}

	cur := text[i]
	i++
	for i < n {
		if cur == '_' {
			break
		}
		right := text[i]
		if isHorizSpace(right) || right == '_' {
			break
		}
		if unicode.IsLower(cur) && unicode.IsUpper(right) {
			break
		}
		if unicode.IsDigit(cur) != unicode.IsDigit(right) {
			break
		}
		i++
		cur = right
	}
	return i
}

func alphanumLeft(text []rune, from int) int {
	i := from
	for i > 0 && !isAlnum(text[i-1]) {
		i--
	}
	for i > 0 && isAlnum(text[i-1]) {
		i--
	}
	return i
}

func alphanumRight(text []rune, from int) int {
	i := from
	n := len(text)
	for i < n && !isAlnum(text[i]) {
		i++
	}
	for i < n && isAlnum(text[i]) {
		i++
	}
	return i
}
