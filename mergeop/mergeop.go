// Package mergeop applies RFC 6902 JSON patches and RFC 7386 merge
// patches to stringly documents. The document is round tripped through
// JSON, so mapping field order in the result is sorted.
package mergeop

import (
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/stringly-format/go-stringly/convert"
	"github.com/stringly-format/go-stringly/debug"
)

// ApplyPatch applies a JSON patch document to the flat encoding and
// returns the patched flat encoding.
func ApplyPatch(flat string, patch []byte) (string, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return "", err
	}
	doc, err := convert.ToJSON(flat)
	if err != nil {
		return "", err
	}
	if debug.Patch() {
		debug.Logf("json patch: %d ops on %s\n", len(ops), string(doc))
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return "", err
	}
	return convert.FromJSON(out)
}

// ApplyMerge applies a JSON merge patch document to the flat encoding
// and returns the merged flat encoding.
func ApplyMerge(flat string, merge []byte) (string, error) {
	doc, err := convert.ToJSON(flat)
	if err != nil {
		return "", err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", string(merge), string(doc))
	}
	out, err := jsonpatch.MergePatch(doc, merge)
	if err != nil {
		return "", err
	}
	return convert.FromJSON(out)
}
