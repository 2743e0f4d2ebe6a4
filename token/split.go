package token

import (
	"iter"
	"unicode/utf8"
)

// Split returns an iterator over the substrings of s separated by sep,
// ignoring occurrences of sep enclosed in curly braces. The nesting
// level is counted from the start of s and may go negative; a
// separator qualifies whenever the level at its position is zero.
//
// An empty s yields no items. A non-empty s with no qualifying
// separator yields exactly one item, s itself.
func Split(s string, sep rune) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == "" {
			return
		}
		level := 0
		start := 0
		for i, c := range s {
			if c == sep && level == 0 {
				if !yield(s[start:i]) {
					return
				}
				start = i + utf8.RuneLen(sep)
				continue
			}
			switch c {
			case '{':
				level++
			case '}':
				level--
			}
		}
		yield(s[start:])
	}
}

// SplitAll is the eager form of [Split].
func SplitAll(s string, sep rune) []string {
	var parts []string
	for part := range Split(s, sep) {
		parts = append(parts, part)
	}
	return parts
}

// SplitOnce splits s at the first occurrence of sep not enclosed in
// curly braces and returns the substrings before and after it. It
// returns [ErrSeparatorNotFound] if no such occurrence exists,
// including when s is empty.
func SplitOnce(s string, sep rune) (string, string, error) {
	if s == "" {
		return "", "", ErrSeparatorNotFound
	}
	level := 0
	for i, c := range s {
		if c == sep && level == 0 {
			return s[:i], s[i+utf8.RuneLen(sep):], nil
		}
		switch c {
		case '{':
			level++
		case '}':
			level--
		}
	}
	return "", "", ErrSeparatorNotFound
}
