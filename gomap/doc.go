// Package gomap provides reflection based conversion between Go
// values and the flat stringly encoding.
//
// Scalars map to their usual text (booleans to "True"/"False"),
// pointers to optional values (nil is the empty string), slices and
// arrays to comma joined sequences, and maps and structs to
// "KEY=VALUE" mappings. Protection is applied just in time: an item is
// wrapped in braces only when its own serialization would confuse the
// enclosing context.
//
// Field visibility follows encoding/json: only exported struct fields
// are processed, names can be overridden with the `stringly:"name"`
// tag, and `stringly:"-"` skips a field. Types implementing
// encoding.TextMarshaler / encoding.TextUnmarshaler are honored.
//
// # Usage
//
//	type Example struct {
//	    A int    `stringly:"a"`
//	    B string `stringly:"b"`
//	}
//
//	s, err := gomap.Marshal(Example{A: 1, B: "2"}) // "a=1,b=2"
//
//	var v Example
//	err = gomap.Unmarshal("a=1,b=2", &v)
//
// # Related Packages
//
//   - github.com/stringly-format/go-stringly/token - protection primitives
//   - github.com/stringly-format/go-stringly/ir - untyped node trees
package gomap
