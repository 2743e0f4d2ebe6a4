// Package eval runs expressions against stringly documents.
//
// Expressions use the expr language (github.com/expr-lang/expr). The
// document is inferred from its flat encoding and exposed to the
// expression as the environment: top level mapping fields become
// identifiers, any other document shape is bound to "doc".
package eval

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/stringly-format/go-stringly/convert"
	"github.com/stringly-format/go-stringly/debug"
	"github.com/stringly-format/go-stringly/ir"
)

// Query evaluates expression against the flat encoding and returns the
// result as a generic Go value.
//
// Besides the environment identifiers, expressions can call:
//
//	get(path)    look up a dotted path in the document, nil when absent
//	getenv(name) read a process environment variable
func Query(flat, expression string) (any, error) {
	doc := ir.Infer(flat)
	env, ok := convert.ToAny(doc).(map[string]any)
	if !ok {
		env = map[string]any{"doc": convert.ToAny(doc)}
	}
	opts := []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			return getPath(doc, params[0].(string)), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
	prog, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q with env %v\n", expression, env)
	}
	return expr.Run(prog, env)
}

// getPath walks a dotted path. Mapping steps match field keys,
// sequence steps are decimal indices.
func getPath(doc *ir.Node, path string) any {
	n := doc
	if path != "" {
		for _, step := range strings.Split(path, ".") {
			switch n.Type {
			case ir.MapType:
				n = n.Get(step)
			case ir.SeqType:
				i, err := strconv.Atoi(step)
				if err != nil || i < 0 || i >= len(n.Values) {
					return nil
				}
				n = n.Values[i]
			case ir.TagType:
				if step != n.Tag {
					return nil
				}
				n = n.Elem
			default:
				return nil
			}
			if n == nil {
				return nil
			}
		}
	}
	return convert.ToAny(n)
}
