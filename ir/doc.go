// Package ir provides a generic node tree for stringly documents.
//
// A Node is a scalar string, a sequence, an ordered mapping, or a
// tagged value (TAG or TAG{PAYLOAD}). Encode emits the flat encoding
// exactly per the grammar; Infer decodes flat text back into a tree
// using structural shape inference, since the format is not
// self-describing.
//
// # Related Packages
//
//   - github.com/stringly-format/go-stringly/token - protection primitives
//   - github.com/stringly-format/go-stringly/convert - JSON/YAML bridge
//   - github.com/stringly-format/go-stringly/gomap - typed Go conversion
package ir
