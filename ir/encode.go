package ir

import (
	"strings"

	"github.com/stringly-format/go-stringly/token"
)

// Encode emits the flat encoding of n. Scalars are emitted verbatim;
// protection is applied by the enclosing composite: sequence items and
// mapping values for ',', mapping keys for ',' and '=', tagged
// payloads unconditionally. An empty sequence item becomes "{}" so it
// survives splitting.
func (n *Node) Encode() string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case StringType:
		return n.String
	case SeqType:
		var b strings.Builder
		for i, v := range n.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(protectItem(v.Encode()))
		}
		return b.String()
	case MapType:
		var b strings.Builder
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(token.Protect(f.Key, ',', '='))
			b.WriteByte('=')
			b.WriteString(token.Protect(f.Value.Encode(), ','))
		}
		return b.String()
	case TagType:
		payload := n.Elem.Encode()
		if payload == "" {
			return n.Tag
		}
		return n.Tag + token.ProtectAlways(payload)
	default:
		return ""
	}
}

func protectItem(s string) string {
	if s == "" {
		return "{}"
	}
	return token.Protect(s, ',')
}
