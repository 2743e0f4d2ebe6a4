package token

// IsBalanced reports whether the curly brace nesting level of s,
// scanned left to right, never goes below zero and ends at zero.
func IsBalanced(s string) bool {
	level := 0
	for _, c := range s {
		switch c {
		case '{':
			level++
		case '}':
			level--
			if level < 0 {
				return false
			}
		}
	}
	return level == 0
}
