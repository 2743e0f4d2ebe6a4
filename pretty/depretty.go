package pretty

import "strings"

// Deprettify converts the indented multi-line form back into the flat
// encoding. It is the exact inverse of [Prettify] on Prettify-produced
// text. The outermost scope's closing brace is implicit: at end of
// input one '}' is emitted per open level beyond the first, mirroring
// that the pretty form never closes the top-level scope visibly.
//
// Failures carry the 1-based line number via [*LineError], wrapping
// [ErrIndentTooSmall] or [ErrUnmatchedUnindent].
func Deprettify(pretty string) (string, error) {
	var b strings.Builder
	b.Grow(len(pretty))
	lines := strings.Split(pretty, "\n")
	var indents []int
	i := 0
	for i < len(lines) {
		line := lines[i]
		lineno := i + 1
		i++
		if line == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if len(indents) == 0 {
			// first non-empty line sets the base level
			indents = append(indents, indent)
		} else if last := indents[len(indents)-1]; indent > last {
			if indent-last == 1 {
				return "", &LineError{Line: lineno, Err: ErrIndentTooSmall}
			}
			b.WriteByte('{')
			indents = append(indents, indent)
		} else {
			for {
				if len(indents) == 0 {
					return "", &LineError{Line: lineno, Err: ErrUnmatchedUnindent}
				}
				if indents[len(indents)-1] == indent {
					break
				}
				b.WriteByte('}')
				indents = indents[:len(indents)-1]
			}
			b.WriteByte(',')
		}
		rest := line[indent:]
		if !strings.HasPrefix(rest, escapeMarker) {
			b.WriteString(rest)
			continue
		}
		// escaped block: join continuation lines at the same indent
		b.WriteString(rest[len(escapeMarker):])
		for i < len(lines) {
			next := lines[i]
			if len(next) < indent+len(contMarker) ||
				strings.TrimLeft(next[:indent], " ") != "" ||
				next[indent:indent+len(contMarker)] != contMarker {
				break
			}
			b.WriteByte('\n')
			b.WriteString(next[indent+len(contMarker):])
			i++
		}
	}
	for range len(indents) - 1 {
		b.WriteByte('}')
	}
	return b.String(), nil
}
