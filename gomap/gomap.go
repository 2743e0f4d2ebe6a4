package gomap

import (
	"reflect"

	"github.com/stringly-format/go-stringly/ir"
)

// Variant is a tagged value, serialized as TAG or TAG{PAYLOAD}. On
// unmarshal, Value holds the raw payload text: the flat encoding is
// not self-describing, so the caller decodes it against the type the
// tag implies, typically with another Unmarshal call.
type Variant struct {
	Tag   string
	Value any
}

var (
	variantType = reflect.TypeOf(Variant{})
	nodeType    = reflect.TypeOf((*ir.Node)(nil))
)

// Marshal converts a Go value to its flat stringly encoding.
func Marshal(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	return marshalValue(reflect.ValueOf(v), "")
}

// Unmarshal parses the flat stringly encoding s into the value pointed
// to by v.
func Unmarshal(s string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnmarshalError{Message: "target must be a non-nil pointer"}
	}
	return unmarshalValue(s, rv.Elem(), "")
}
