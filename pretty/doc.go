// Package pretty converts between the flat stringly encoding and an
// indented, multi-line human form.
//
// Commas at the current scope become newlines, nested scopes are
// indented by two spaces, and literal text that would be ambiguous in
// the line form (empty, leading space, leading ">|", or containing
// newlines) is rendered as an escaped block prefixed with ">|" and
// continuation lines prefixed with " |".
//
//	pretty.Prettify("a=1,b={c=2,d=3},e=4")
//	// a=1
//	// b=
//	//   c=2
//	//   d=3
//	// e=4
//
// Deprettify is the exact inverse on any Prettify-produced text.
//
// # Related Packages
//
//   - github.com/stringly-format/go-stringly/token - splitting and balance
package pretty
