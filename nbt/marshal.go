/*
Copyright 2024 The goanvil Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package nbt

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses data and assigns the root Compound's fields into v,
// which must be a non-nil pointer to a struct, map, or interface{}.
// Numeric widening is permitted where lossless; narrowing validates
// range (§4.3).
func Unmarshal(data []byte, v any) error {
	root, err := Decode(data)
	if err != nil {
		return err
	}
	return root.Unmarshal(v)
}

// Unmarshal assigns c's fields into v, as Unmarshal does for a whole
// document's root Compound.
func (c Compound) Unmarshal(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return &MessageError{Msg: "Unmarshal target must be a non-nil pointer"}
	}
	return assignValue(rv.Elem(), c)
}

// fieldTag describes how a struct field maps to an NBT field name.
type fieldTag struct {
	name   string
	remain bool
	skip   bool
}

func parseFieldTag(f reflect.StructField) fieldTag {
	raw, ok := f.Tag.Lookup("nbt")
	if !ok {
		return fieldTag{name: f.Name}
	}
	if raw == "-" {
		return fieldTag{skip: true}
	}
	parts := strings.Split(raw, ",")
	ft := fieldTag{name: parts[0]}
	if ft.name == "" {
		ft.name = f.Name
	}
	for _, opt := range parts[1:] {
		if opt == "remain" {
			ft.remain = true
		}
	}
	return ft
}

func assignValue(dst reflect.Value, val Value) error {
	if val == nil {
		return nil
	}
	switch dst.Kind() {
	case reflect.Ptr:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assignValue(dst.Elem(), val)
	case reflect.Interface:
		if dst.NumMethod() != 0 {
			return &MessageError{Msg: fmt.Sprintf("cannot decode into non-empty interface %s", dst.Type())}
		}
		dst.Set(reflect.ValueOf(toGoDynamic(val)))
		return nil
	case reflect.Struct:
		comp, ok := val.(Compound)
		if !ok {
			return &MessageError{Msg: fmt.Sprintf("expected Compound for struct %s, got %s", dst.Type(), val.Tag())}
		}
		return assignStruct(dst, comp)
	case reflect.Map:
		comp, ok := val.(Compound)
		if !ok {
			return &MessageError{Msg: fmt.Sprintf("expected Compound for map, got %s", val.Tag())}
		}
		return assignMap(dst, comp)
	case reflect.Slice:
		return assignSlice(dst, val)
	case reflect.String:
		s, ok := val.(String)
		if !ok {
			return &MessageError{Msg: fmt.Sprintf("expected String, got %s", val.Tag())}
		}
		dst.SetString(string(s))
		return nil
	case reflect.Bool:
		n, ok := integralOf(val)
		if !ok {
			return &MessageError{Msg: fmt.Sprintf("expected integral for bool, got %s", val.Tag())}
		}
		dst.SetBool(n != 0)
		return nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		return assignInt(dst, val)
	case reflect.Float32, reflect.Float64:
		return assignFloat(dst, val)
	default:
		return &MessageError{Msg: fmt.Sprintf("unsupported destination kind %s", dst.Kind())}
	}
}

func assignStruct(dst reflect.Value, comp Compound) error {
	t := dst.Type()
	consumed := make(map[string]bool, len(comp))
	var remainField *reflect.Value
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		ft := parseFieldTag(f)
		if ft.skip {
			continue
		}
		if ft.remain {
			fv := dst.Field(i)
			remainField = &fv
			continue
		}
		v, ok := comp[ft.name]
		if !ok {
			continue
		}
		consumed[ft.name] = true
		if err := assignValue(dst.Field(i), v); err != nil {
			return fmt.Errorf("field %q: %w", ft.name, err)
		}
	}
	if remainField != nil {
		extra := make(Compound)
		for k, v := range comp {
			if !consumed[k] {
				extra[k] = v
			}
		}
		if remainField.IsNil() {
			remainField.Set(reflect.MakeMap(remainField.Type()))
		}
		for k, v := range extra {
			remainField.SetMapIndex(reflect.ValueOf(k), reflect.ValueOf(v))
		}
	}
	return nil
}

func assignMap(dst reflect.Value, comp Compound) error {
	if dst.IsNil() {
		dst.Set(reflect.MakeMapWithSize(dst.Type(), len(comp)))
	}
	elemType := dst.Type().Elem()
	for k, v := range comp {
		ev := reflect.New(elemType).Elem()
		if err := assignValue(ev, v); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		dst.SetMapIndex(reflect.ValueOf(k), ev)
	}
	return nil
}

func assignSlice(dst reflect.Value, val Value) error {
	elemKind := dst.Type().Elem().Kind()
	switch v := val.(type) {
	case ByteArray:
		if elemKind != reflect.Int8 && elemKind != reflect.Uint8 {
			return &MessageError{Msg: "ByteArray does not fit declared slice element type"}
		}
		out := reflect.MakeSlice(dst.Type(), len(v), len(v))
		for i, b := range v {
			out.Index(i).SetInt(int64(b))
		}
		dst.Set(out)
		return nil
	case IntArray:
		if elemKind != reflect.Int32 && elemKind != reflect.Int {
			return &MessageError{Msg: "IntArray does not fit declared slice element type"}
		}
		out := reflect.MakeSlice(dst.Type(), len(v), len(v))
		for i, n := range v {
			out.Index(i).SetInt(int64(n))
		}
		dst.Set(out)
		return nil
	case LongArray:
		if elemKind != reflect.Int64 && elemKind != reflect.Int {
			return &MessageError{Msg: "LongArray does not fit declared slice element type"}
		}
		out := reflect.MakeSlice(dst.Type(), len(v), len(v))
		for i, n := range v {
			out.Index(i).SetInt(n)
		}
		dst.Set(out)
		return nil
	case List:
		out := reflect.MakeSlice(dst.Type(), len(v.Items), len(v.Items))
		for i, item := range v.Items {
			if err := assignValue(out.Index(i), item); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		dst.Set(out)
		return nil
	default:
		return &MessageError{Msg: fmt.Sprintf("expected a sequence, got %s", val.Tag())}
	}
}

func integralOf(val Value) (int64, bool) {
	switch v := val.(type) {
	case Byte:
		return int64(v), true
	case Short:
		return int64(v), true
	case Int:
		return int64(v), true
	case Long:
		return int64(v), true
	default:
		return 0, false
	}
}

func assignInt(dst reflect.Value, val Value) error {
	n, ok := integralOf(val)
	if !ok {
		return &MessageError{Msg: fmt.Sprintf("expected integral, got %s", val.Tag())}
	}
	if dst.OverflowInt(n) {
		return &IntegralOutOfRangeError{Value: n, DestTag: val.Tag()}
	}
	if err := checkIntWidth(dst.Kind(), n); err != nil {
		return err
	}
	dst.SetInt(n)
	return nil
}

func checkIntWidth(kind reflect.Kind, n int64) error {
	var lo, hi int64
	switch kind {
	case reflect.Int8:
		lo, hi = -128, 127
	case reflect.Int16:
		lo, hi = -32768, 32767
	case reflect.Int32:
		lo, hi = -1<<31, 1<<31-1
	default:
		return nil
	}
	if n < lo || n > hi {
		return &IntegralOutOfRangeError{Value: n}
	}
	return nil
}

func assignFloat(dst reflect.Value, val Value) error {
	switch v := val.(type) {
	case Float:
		dst.SetFloat(float64(v))
		return nil
	case Double:
		dst.SetFloat(float64(v))
		return nil
	default:
		return &MessageError{Msg: fmt.Sprintf("expected Float/Double, got %s", val.Tag())}
	}
}

// toGoDynamic converts val to the "opaque" Go representation used when
// the destination declares no static shape (an interface{} field, or
// the top level of a Compound.Unmarshal(any) call): scalars become
// native Go values, Compound becomes map[string]any, List becomes
// []any, and the three typed arrays become RawArray — the single-key
// sentinel representation described in §3.2 and §9.
func toGoDynamic(val Value) any {
	switch v := val.(type) {
	case Byte:
		return int8(v)
	case Short:
		return int16(v)
	case Int:
		return int32(v)
	case Long:
		return int64(v)
	case Float:
		return float32(v)
	case Double:
		return float64(v)
	case String:
		return string(v)
	case ByteArray:
		return rawArrayFromByteArray(v)
	case IntArray:
		return rawArrayFromIntArray(v)
	case LongArray:
		return rawArrayFromLongArray(v)
	case List:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = toGoDynamic(item)
		}
		return out
	case Compound:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = toGoDynamic(item)
		}
		return out
	default:
		return nil
	}
}
