package dto

import (
	"reflect"
	"strings"
)

// TrimText strips surrounding whitespace from every exported string reachable
// from v, which must be a pointer. Pretty-printed responses wrap element text
// in newlines and indentation.
func TrimText(v any) {
	trimValue(reflect.ValueOf(v))
}

func trimValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			trimValue(v.Elem())
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if t.Field(i).IsExported() {
				trimValue(v.Field(i))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			trimValue(v.Index(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(strings.TrimSpace(v.String()))
		}
	}
}
