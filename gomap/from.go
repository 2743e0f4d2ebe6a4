package gomap

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"

	"github.com/stringly-format/go-stringly/ir"
	"github.com/stringly-format/go-stringly/token"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

func unmarshalValue(s string, val reflect.Value, path string) error {
	switch val.Type() {
	case variantType:
		return unmarshalVariant(s, val, path)
	case nodeType:
		val.Set(reflect.ValueOf(ir.Infer(s)))
		return nil
	}
	if val.Kind() != reflect.Pointer && val.CanAddr() &&
		reflect.PointerTo(val.Type()).Implements(textUnmarshalerType) {
		err := val.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
		if err != nil {
			return &UnmarshalError{FieldPath: path, Err: err}
		}
		return nil
	}
	switch val.Kind() {
	case reflect.String:
		val.SetString(s)
		return nil
	case reflect.Bool:
		switch strings.ToLower(s) {
		case "true", "yes":
			val.SetBool(true)
		case "false", "no":
			val.SetBool(false)
		default:
			return &UnmarshalError{FieldPath: path, Err: ErrNotABoolean}
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, val.Type().Bits())
		if err != nil {
			return &UnmarshalError{FieldPath: path, Err: ErrNotAnInteger}
		}
		val.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, val.Type().Bits())
		if err != nil {
			return &UnmarshalError{FieldPath: path, Err: ErrNotAnUnsignedInteger}
		}
		val.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, val.Type().Bits())
		if err != nil {
			return &UnmarshalError{FieldPath: path, Err: ErrNotAFloatingPointNumber}
		}
		val.SetFloat(f)
		return nil
	case reflect.Pointer:
		if s == "" {
			val.SetZero()
			return nil
		}
		elem := reflect.New(val.Type().Elem())
		if err := unmarshalValue(token.Unprotect(s), elem.Elem(), path); err != nil {
			return err
		}
		val.Set(elem)
		return nil
	case reflect.Interface:
		if val.NumMethod() != 0 {
			return &UnmarshalError{
				FieldPath: path,
				Message:   "cannot unmarshal into non-empty interface " + val.Type().String(),
			}
		}
		if s == "" {
			val.SetZero()
			return nil
		}
		val.Set(reflect.ValueOf(s))
		return nil
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			val.SetBytes([]byte(s))
			return nil
		}
		parts := token.SplitAll(s, ',')
		out := reflect.MakeSlice(val.Type(), len(parts), len(parts))
		for i, p := range parts {
			ep := path + "[" + strconv.Itoa(i) + "]"
			if err := unmarshalValue(token.Unprotect(p), out.Index(i), ep); err != nil {
				return err
			}
		}
		val.Set(out)
		return nil
	case reflect.Array:
		parts := token.SplitAll(s, ',')
		if len(parts) > val.Len() {
			return &UnmarshalError{FieldPath: path, Err: ErrTooManyElements}
		}
		for i, p := range parts {
			ep := path + "[" + strconv.Itoa(i) + "]"
			if err := unmarshalValue(token.Unprotect(p), val.Index(i), ep); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return unmarshalMap(s, val, path)
	case reflect.Struct:
		return unmarshalStruct(s, val, path)
	default:
		return &UnmarshalError{
			FieldPath: path,
			Message:   "unsupported type " + val.Type().String(),
		}
	}
}

func unmarshalMap(s string, val reflect.Value, path string) error {
	t := val.Type()
	out := reflect.MakeMap(t)
	for part := range token.Split(s, ',') {
		ks, vs, err := token.SplitOnce(part, '=')
		if err != nil {
			return &UnmarshalError{FieldPath: path, Err: ErrNotAKeyValuePair}
		}
		key := reflect.New(t.Key()).Elem()
		if err := unmarshalValue(token.Unprotect(ks), key, path); err != nil {
			return err
		}
		value := reflect.New(t.Elem()).Elem()
		ep := joinPath(path, token.Unprotect(ks))
		if err := unmarshalValue(token.Unprotect(vs), value, ep); err != nil {
			return err
		}
		out.SetMapIndex(key, value)
	}
	val.Set(out)
	return nil
}

func unmarshalStruct(s string, val reflect.Value, path string) error {
	byName := map[string][]int{}
	for _, fi := range typeFields(val.Type()) {
		byName[fi.name] = fi.index
	}
	for part := range token.Split(s, ',') {
		ks, vs, err := token.SplitOnce(part, '=')
		if err != nil {
			return &UnmarshalError{FieldPath: path, Err: ErrNotAKeyValuePair}
		}
		name := token.Unprotect(ks)
		index, ok := byName[name]
		if !ok {
			// unknown fields are ignored
			continue
		}
		fv := fieldByIndexAlloc(val, index)
		if err := unmarshalValue(token.Unprotect(vs), fv, joinPath(path, name)); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalVariant(s string, val reflect.Value, path string) error {
	tag, payload, err := token.SplitTag(s)
	if err != nil {
		return &UnmarshalError{FieldPath: path, Err: err}
	}
	v := Variant{Tag: tag}
	if payload != "" {
		v.Value = payload
	}
	val.Set(reflect.ValueOf(v))
	return nil
}

// fieldByIndexAlloc walks index into val, allocating nil embedded
// pointers on the way.
func fieldByIndexAlloc(val reflect.Value, index []int) reflect.Value {
	for _, i := range index {
		if val.Kind() == reflect.Pointer {
			if val.IsNil() {
				val.Set(reflect.New(val.Type().Elem()))
			}
			val = val.Elem()
		}
		val = val.Field(i)
	}
	return val
}
