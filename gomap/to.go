package gomap

import (
	"encoding"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/stringly-format/go-stringly/ir"
	"github.com/stringly-format/go-stringly/token"
)

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

func marshalValue(val reflect.Value, path string) (string, error) {
	if !val.IsValid() {
		return "", nil
	}
	switch val.Type() {
	case variantType:
		return marshalVariant(val.Interface().(Variant), path)
	case nodeType:
		node := val.Interface().(*ir.Node)
		return node.Encode(), nil
	}
	switch val.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			return "", nil
		}
		s, err := marshalValue(val.Elem(), path)
		if err != nil {
			return "", err
		}
		// a present optional whose serialization is empty or brace
		// shaped must be protected, or absence and presence would
		// read back the same
		if s == "" || (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) {
			return token.ProtectAlways(s), nil
		}
		return s, nil
	case reflect.Interface:
		if val.IsNil() {
			return "", nil
		}
		return marshalValue(val.Elem(), path)
	}
	if val.Type().Implements(textMarshalerType) {
		d, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", &MarshalError{FieldPath: path, Err: err}
		}
		return string(d), nil
	}
	switch val.Kind() {
	case reflect.Bool:
		if val.Bool() {
			return "True", nil
		}
		return "False", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(val.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(val.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(val.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(val.Float(), 'g', -1, 64), nil
	case reflect.String:
		return val.String(), nil
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.Type().Elem().Kind() == reflect.Uint8 {
			return string(val.Bytes()), nil
		}
		return marshalSeq(val, path)
	case reflect.Map:
		return marshalMap(val, path)
	case reflect.Struct:
		return marshalStruct(val, path)
	default:
		return "", &MarshalError{
			FieldPath: path,
			Message:   "unsupported type " + val.Type().String(),
		}
	}
}

func marshalSeq(val reflect.Value, path string) (string, error) {
	var b strings.Builder
	for i := 0; i < val.Len(); i++ {
		s, err := marshalValue(val.Index(i), path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(protectItem(s))
	}
	return b.String(), nil
}

// protectItem protects a serialized sequence element for ','. An empty
// element becomes "{}" so it survives splitting.
func protectItem(s string) string {
	if s == "" {
		return "{}"
	}
	return token.Protect(s, ',')
}

func marshalMap(val reflect.Value, path string) (string, error) {
	type entry struct{ key, value string }
	entries := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		k, err := marshalValue(iter.Key(), path)
		if err != nil {
			return "", err
		}
		v, err := marshalValue(iter.Value(), joinPath(path, k))
		if err != nil {
			return "", err
		}
		entries = append(entries, entry{key: k, value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(token.Protect(e.key, ',', '='))
		b.WriteByte('=')
		b.WriteString(token.Protect(e.value, ','))
	}
	return b.String(), nil
}

func marshalStruct(val reflect.Value, path string) (string, error) {
	var b strings.Builder
	n := 0
	for _, fi := range typeFields(val.Type()) {
		fv, ok := fieldByIndex(val, fi.index)
		if !ok {
			// nil embedded pointer
			continue
		}
		s, err := marshalValue(fv, joinPath(path, fi.name))
		if err != nil {
			return "", err
		}
		if n > 0 {
			b.WriteByte(',')
		}
		n++
		b.WriteString(token.Protect(fi.name, ',', '='))
		b.WriteByte('=')
		b.WriteString(token.Protect(s, ','))
	}
	return b.String(), nil
}

func marshalVariant(v Variant, path string) (string, error) {
	if strings.ContainsAny(v.Tag, "{}") {
		return "", &MarshalError{
			FieldPath: path,
			Message:   "variant tag must not contain braces: " + strconv.Quote(v.Tag),
		}
	}
	payload, err := Marshal(v.Value)
	if err != nil {
		return "", err
	}
	if payload == "" {
		return v.Tag, nil
	}
	return v.Tag + token.ProtectAlways(payload), nil
}

func fieldByIndex(val reflect.Value, index []int) (reflect.Value, bool) {
	for _, i := range index {
		if val.Kind() == reflect.Pointer {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}
		val = val.Field(i)
	}
	return val, true
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
