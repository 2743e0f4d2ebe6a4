// Package token provides the low level primitives of the stringly
// encoding: nesting aware splitting, brace balance checking and the
// protect/unprotect pair.
//
// The stringly encoding is flat text with four delimiters (',', '=',
// '{', '}') and no escape character. A string that would confuse the
// splitter is made atomic by enclosing it in curly braces; unbalanced
// brace runs inside it are marked with literal balancer markers of the
// form "<{{>" (left) and "<}}>" (right) so that every protected token
// is self balancing under pure brace counting.
//
// # Usage
//
//	for part := range token.Split("a,b{c,d}", ',') {
//	    // "a", "b{c,d}"
//	}
//
//	p := token.Protect("a,b,c", ',') // "{a,b,c}"
//	token.Unprotect(p)               // "a,b,c"
//
// # Related Packages
//
//   - github.com/stringly-format/go-stringly/pretty - flat <-> indented form
//   - github.com/stringly-format/go-stringly/ir - generic node tree
package token
