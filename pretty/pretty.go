package pretty

import (
	"strings"

	"github.com/stringly-format/go-stringly/token"
)

const (
	escapeMarker = ">|"
	contMarker   = " |"
)

// frame is one open scope during prettification: the scope's items and
// the position of the next one to emit.
type frame struct {
	parts  []string
	next   int
	indent string
}

// Prettify converts a flat stringly encoding into its indented
// multi-line form. It is total: any input produces some output, but
// the [Deprettify] inverse is only guaranteed for encodings producible
// by the serialization layer.
func Prettify(s string, opts ...Option) string {
	if s == "" {
		return ""
	}
	o := newOptions(opts)
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	// explicit stack, nesting depth is input controlled
	stack := []*frame{{parts: token.SplitAll(s, ',')}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next == len(f.parts) {
			stack = stack[:len(stack)-1]
			continue
		}
		part := f.parts[f.next]
		f.next++
		lit, scope, hasScope := splitScope(part)
		writeLiteral(&b, o, f.indent, lit)
		b.WriteByte('\n')
		if !hasScope {
			continue
		}
		inner := f.indent + "  "
		if scope == "" {
			// an empty scope is a bare escape marker, with no
			// trailing newline
			b.WriteString(inner)
			b.WriteString(o.marker(escapeMarker))
			continue
		}
		stack = append(stack, &frame{parts: token.SplitAll(scope, ','), indent: inner})
	}
	return b.String()
}

// splitScope looks for the first '{' of part such that it is not at
// position 0, part ends with '}', and the text between them is
// balanced. If found, the prefix is the item's literal text and the
// interior its nested scope.
func splitScope(part string) (lit, scope string, ok bool) {
	i := strings.IndexByte(part, '{')
	if i <= 0 || !strings.HasSuffix(part, "}") {
		return part, "", false
	}
	inner := part[i+1 : len(part)-1]
	if !token.IsBalanced(inner) {
		return part, "", false
	}
	return part[:i], inner, true
}

func writeLiteral(b *strings.Builder, o *options, indent, lit string) {
	b.WriteString(indent)
	if lit != "" && !strings.HasPrefix(lit, " ") &&
		!strings.HasPrefix(lit, escapeMarker) && !strings.ContainsRune(lit, '\n') {
		b.WriteString(o.text(lit))
		return
	}
	b.WriteString(o.marker(escapeMarker))
	l := 0
	for {
		r := strings.IndexByte(lit[l:], '\n')
		if r < 0 {
			break
		}
		b.WriteString(o.text(lit[l : l+r]))
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(o.marker(contMarker))
		l += r + 1
	}
	b.WriteString(o.text(lit[l:]))
}
