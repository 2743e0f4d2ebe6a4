package convert

import (
	"github.com/goccy/go-yaml"

	"github.com/stringly-format/go-stringly/ir"
)

// ToYAML renders the flat encoding as YAML. Unlike [ToJSON], mapping
// field order survives: maps are emitted as [yaml.MapSlice].
func ToYAML(flat string) ([]byte, error) {
	return yaml.Marshal(toYAMLValue(ir.Infer(flat)))
}

func toYAMLValue(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.SeqType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = toYAMLValue(v)
		}
		return res
	case ir.MapType:
		res := make(yaml.MapSlice, len(n.Fields))
		for i, f := range n.Fields {
			res[i] = yaml.MapItem{Key: f.Key, Value: toYAMLValue(f.Value)}
		}
		return res
	case ir.TagType:
		return yaml.MapSlice{{Key: n.Tag, Value: toYAMLValue(n.Elem)}}
	default:
		return n.String
	}
}

// FromYAML reduces a YAML document to the flat encoding, preserving
// mapping field order.
func FromYAML(d []byte) (string, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return "", err
	}
	return FromAny(v).Encode(), nil
}
