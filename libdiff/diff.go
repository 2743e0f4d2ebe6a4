// Package libdiff renders line oriented diffs between stringly
// documents. Inputs are flat encodings; they are prettified first so
// the diff follows document structure rather than raw characters.
package libdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/stringly-format/go-stringly/debug"
	"github.com/stringly-format/go-stringly/pretty"
)

const (
	equalPrefix  = "  "
	deletePrefix = "- "
	insertPrefix = "+ "
)

// Diff compares two flat encodings and returns a prettified line diff,
// with unchanged, removed, and added lines prefixed by "  ", "- ", and
// "+ ". It returns "" when the inputs are equal.
func Diff(from, to string) string {
	if from == to {
		return ""
	}
	dmp := diffmatchpatch.New()
	fromPretty := pretty.Prettify(from)
	toPretty := pretty.Prettify(to)
	fromRunes, toRunes, lines := dmp.DiffLinesToChars(fromPretty, toPretty)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromRunes, toRunes, false), lines)
	if debug.Diff() {
		debug.Logf("diff: %d segments for %d/%d pretty bytes\n",
			len(diffs), len(fromPretty), len(toPretty))
	}
	var b strings.Builder
	for _, d := range diffs {
		prefix := equalPrefix
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = deletePrefix
		case diffmatchpatch.DiffInsert:
			prefix = insertPrefix
		}
		for _, line := range splitLines(d.Text) {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
