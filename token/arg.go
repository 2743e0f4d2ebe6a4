package token

import (
	"fmt"
	"strings"
)

// SplitTag splits a tagged value of the form TAG or TAG{PAYLOAD} into
// its tag and payload, where the braced part, if present, was produced
// by [ProtectAlways]. It returns [ErrNotAnEnum] if s is unbalanced, if
// the first '{' is at position 0 (empty tag), or if s contains a '{'
// but does not end with '}'.
func SplitTag(s string) (string, string, error) {
	if !IsBalanced(s) {
		return "", "", fmt.Errorf("%w: unbalanced %q", ErrNotAnEnum, s)
	}
	i := strings.IndexByte(s, '{')
	if i < 0 {
		return s, "", nil
	}
	if i == 0 || !strings.HasSuffix(s, "}") {
		return "", "", fmt.Errorf("%w: %q", ErrNotAnEnum, s)
	}
	return s[:i], Unprotect(s[i:]), nil
}
