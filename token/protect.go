package token

import "strings"

// leftBalancerEnd returns the index i for which s[:i] is a left
// balancer marker ("<" followed by zero or more '{' and a '>'), or -1
// if s does not start with one.
func leftBalancerEnd(s string) int {
	if len(s) == 0 || s[0] != '<' {
		return -1
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '{':
		case '>':
			return i + 1
		default:
			return -1
		}
	}
	return -1
}

// rightBalancerStart returns the index i for which s[i:] is a right
// balancer marker ("<" followed by zero or more '}' and a '>'), or -1
// if s does not end with one.
func rightBalancerStart(s string) int {
	if len(s) == 0 || s[len(s)-1] != '>' {
		return -1
	}
	for i := len(s) - 2; i >= 0; i-- {
		switch s[i] {
		case '}':
		case '<':
			return i
		default:
			return -1
		}
	}
	return -1
}

// Protect conditionally encloses s in curly braces so that it becomes
// a single atomic token under [Split] for any of the given runes.
//
// The result is wrapped iff s already starts with '{' and ends with
// '}' (which [Unprotect] would otherwise strip), or s contains one of
// chars at brace level zero, or s is unbalanced. With no chars, only
// brace shaped or unbalanced strings are wrapped. When no wrapping is
// needed s is returned unchanged.
//
// Wrapping makes the token self balancing: the left and right brace
// deficits are recorded as balancer markers immediately inside the
// enclosing braces. A marker is emitted only when the deficit is
// nonzero or when s itself begins or ends with text parseable as a
// marker, which would otherwise be stripped by [Unprotect].
func Protect(s string, chars ...rune) string {
	return protect(s, false, chars)
}

// ProtectAlways encloses s in curly braces unconditionally.
// ProtectAlways("") is "{}".
func ProtectAlways(s string) string {
	return protect(s, true, nil)
}

func protect(s string, always bool, chars []rune) string {
	// l is the number of '{' that would have to be prepended to keep
	// the level non-negative, r the number of '}' to append to end at
	// zero.
	needs := always || (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"))
	level, l := 0, 0
	for _, c := range s {
		switch c {
		case '{':
			level++
		case '}':
			level--
			if -level > l {
				l = -level
			}
		default:
			if !always && !needs && level == 0 && runeIn(chars, c) {
				needs = true
			}
		}
	}
	r := level + l
	if !needs && l == 0 && r == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + l + r + 8)
	b.WriteByte('{')
	if l > 0 || leftBalancerEnd(s) != -1 {
		b.WriteByte('<')
		for range l {
			b.WriteByte('{')
		}
		b.WriteByte('>')
	}
	b.WriteString(s)
	if r > 0 || rightBalancerStart(s) != -1 {
		b.WriteByte('<')
		for range r {
			b.WriteByte('}')
		}
		b.WriteByte('>')
	}
	b.WriteByte('}')
	return b.String()
}

func runeIn(chars []rune, c rune) bool {
	for _, ch := range chars {
		if ch == c {
			return true
		}
	}
	return false
}

// Unprotect is the inverse of [Protect] and [ProtectAlways]. If s does
// not start with '{' and end with '}' it is returned unchanged;
// otherwise the enclosing braces and any balancer markers immediately
// inside them are stripped. The result is a subslice of s.
func Unprotect(s string) string {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return s
	}
	in := s[1 : len(s)-1]
	if i := rightBalancerStart(in); i != -1 {
		in = in[:i]
	}
	if i := leftBalancerEnd(in); i != -1 {
		in = in[i:]
	}
	return in
}
