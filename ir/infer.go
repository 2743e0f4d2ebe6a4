package ir

import (
	"strings"
	"unicode"

	"github.com/stringly-format/go-stringly/token"
)

// Infer decodes flat text into a node tree by structural shape
// inference. The flat encoding is not self-describing, so Infer picks
// the most structured reading:
//
//   - if every top level item carries a level-0 '=', the text is a
//     mapping;
//   - otherwise, two or more items form a sequence;
//   - a single item of the form TAG{PAYLOAD} with an identifier tag is
//     a tagged value;
//   - anything else is a scalar, kept verbatim.
//
// Bare tags (no braces) are indistinguishable from scalars and decode
// as scalars. Infer(Encode(n)) reproduces n for trees that do not hit
// these ambiguities; typed decoding lives in package gomap.
func Infer(flat string) *Node {
	parts := token.SplitAll(flat, ',')
	if len(parts) == 0 {
		return String("")
	}
	if mapLike(parts) {
		fields := make([]Field, len(parts))
		for i, p := range parts {
			k, v, _ := token.SplitOnce(p, '=')
			fields[i] = Field{
				Key:   token.Unprotect(k),
				Value: Infer(token.Unprotect(v)),
			}
		}
		return Map(fields...)
	}
	if len(parts) > 1 {
		items := make([]*Node, len(parts))
		for i, p := range parts {
			items[i] = Infer(token.Unprotect(p))
		}
		return Seq(items...)
	}
	return inferScalar(parts[0])
}

func mapLike(parts []string) bool {
	for _, p := range parts {
		if _, _, err := token.SplitOnce(p, '='); err != nil {
			return false
		}
	}
	return true
}

func inferScalar(part string) *Node {
	if !strings.ContainsRune(part, '{') {
		return String(part)
	}
	tag, payload, err := token.SplitTag(part)
	if err != nil || !identLike(tag) {
		return String(part)
	}
	if payload == "" {
		return Tagged(tag, nil)
	}
	return Tagged(tag, Infer(payload))
}

func identLike(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-'):
		default:
			return false
		}
	}
	return true
}
