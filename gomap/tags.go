package gomap

import (
	"reflect"
	"strings"
	"sync"
)

const tagName = "stringly"

type fieldInfo struct {
	name  string
	index []int
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// typeFields returns the marshaled fields of a struct type in
// declaration order, flattening anonymous embedded structs.
func typeFields(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}
	fields := appendTypeFields(nil, t, nil)
	fieldCache.Store(t, fields)
	return fields
}

func appendTypeFields(dst []fieldInfo, t reflect.Type, index []int) []fieldInfo {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, skip := parseFieldTag(sf)
		if skip {
			continue
		}
		fi := make([]int, 0, len(index)+1)
		fi = append(fi, index...)
		fi = append(fi, i)
		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				dst = appendTypeFields(dst, ft, fi)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		dst = append(dst, fieldInfo{name: name, index: fi})
	}
	return dst
}

// parseFieldTag returns the override name from the stringly struct tag
// and whether the field is skipped. An anonymous field with no tag
// reports an empty name so it can be flattened.
func parseFieldTag(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup(tagName)
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}
