// Package convert bridges stringly documents and generic Go values,
// JSON, and YAML. The flat encoding is the pivot: every conversion
// first reduces its input to flat text, then renders the target form.
//
// # Related Packages
//
//   - [github.com/stringly-format/go-stringly/ir] supplies the node
//     structure and shape inference.
//   - [github.com/stringly-format/go-stringly/format] names the
//     supported forms.
package convert

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/stringly-format/go-stringly/ir"
)

// ToAny converts a node to a generic Go value made of strings, []any,
// and map[string]any. Mapping field order is not preserved; a tagged
// node becomes a single entry map keyed by its tag.
func ToAny(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.SeqType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	case ir.MapType:
		res := make(map[string]any, len(n.Fields))
		for _, f := range n.Fields {
			res[f.Key] = ToAny(f.Value)
		}
		return res
	case ir.TagType:
		return map[string]any{n.Tag: ToAny(n.Elem)}
	default:
		return n.String
	}
}

// FromAny converts a generic Go value to a node. Scalars are rendered
// the way gomap renders them, so FromAny composes with Unmarshal.
// Unordered map keys are sorted; [yaml.MapSlice] keeps its order.
func FromAny(v any) *ir.Node {
	switch v := v.(type) {
	case nil:
		return ir.String("")
	case *ir.Node:
		return v.Clone()
	case string:
		return ir.String(v)
	case bool:
		if v {
			return ir.String("True")
		}
		return ir.String("False")
	case int:
		return ir.String(strconv.Itoa(v))
	case int64:
		return ir.String(strconv.FormatInt(v, 10))
	case uint64:
		return ir.String(strconv.FormatUint(v, 10))
	case float32:
		return ir.String(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return ir.String(strconv.FormatFloat(v, 'g', -1, 64))
	case []any:
		items := make([]*ir.Node, len(v))
		for i, item := range v {
			items[i] = FromAny(item)
		}
		return ir.Seq(items...)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]ir.Field, len(keys))
		for i, k := range keys {
			fields[i] = ir.Field{Key: k, Value: FromAny(v[k])}
		}
		return ir.Map(fields...)
	case yaml.MapSlice:
		fields := make([]ir.Field, len(v))
		for i, item := range v {
			fields[i] = ir.Field{Key: fmt.Sprint(item.Key), Value: FromAny(item.Value)}
		}
		return ir.Map(fields...)
	default:
		return ir.String(fmt.Sprint(v))
	}
}
